package entities

// MediaMetadata is what can be read from a stock-media page before adding
// it to an image budget.
type MediaMetadata struct {
	URL            string          `json:"url"`
	Provider       string          `json:"provider,omitempty"`
	Title          string          `json:"title,omitempty"`
	MediaType      string          `json:"media_type,omitempty"`
	Duration       string          `json:"duration,omitempty"`
	Resolution     string          `json:"resolution,omitempty"`
	ThumbnailURL   string          `json:"thumbnail_url,omitempty"`
	LicenseOptions []LicenseOption `json:"license_options,omitempty"`
}
