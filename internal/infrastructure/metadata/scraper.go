package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/gosimple/slug"
	"golang.org/x/net/html"
)

var ErrFetchFailed = interfaces.ErrMetadataUnavailable

// knownProviders maps stock-media hosts to display names.
var knownProviders = map[string]string{
	"shutterstock.com":    "Shutterstock",
	"gettyimages.com":     "Getty Images",
	"istockphoto.com":     "iStock",
	"stock.adobe.com":     "Adobe Stock",
	"pond5.com":           "Pond5",
	"storyblocks.com":     "Storyblocks",
	"elements.envato.com": "Envato Elements",
	"artlist.io":          "Artlist",
}

// Scraper reads JSON-LD and OpenGraph markup from stock-media pages.
type Scraper struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

var _ interfaces.IMediaMetadataProvider = (*Scraper)(nil)

func NewScraper(cfg config.MetadataConfig) *Scraper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
	}
}

func (s *Scraper) Fetch(ctx context.Context, rawURL string) (entities.MediaMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return entities.MediaMetadata{}, err
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return entities.MediaMetadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.MediaMetadata{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	meta, err := Parse(io.LimitReader(resp.Body, s.maxBytes), rawURL)
	if err != nil {
		return entities.MediaMetadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return meta, nil
}

// Parse extracts metadata from an HTML document. JSON-LD wins over
// OpenGraph; OpenGraph fills whatever JSON-LD left empty.
func Parse(r io.Reader, pageURL string) (entities.MediaMetadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return entities.MediaMetadata{}, err
	}

	p := &pageData{og: map[string]string{}}
	p.walk(doc)

	meta := entities.MediaMetadata{URL: pageURL, Provider: providerFor(pageURL)}
	for _, obj := range p.ldObjects {
		applyLD(&meta, obj)
	}
	applyOpenGraph(&meta, p.og)
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(p.title)
	}
	return meta, nil
}

type pageData struct {
	title     string
	og        map[string]string
	ldObjects []map[string]any
}

func (p *pageData) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if p.title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				p.title = n.FirstChild.Data
			}
		case "meta":
			key := attr(n, "property")
			if key == "" {
				key = attr(n, "name")
			}
			key = strings.ToLower(key)
			if strings.HasPrefix(key, "og:") || strings.HasPrefix(key, "video:") || strings.HasPrefix(key, "twitter:") {
				if _, seen := p.og[key]; !seen {
					p.og[key] = strings.TrimSpace(attr(n, "content"))
				}
			}
		case "script":
			if strings.EqualFold(attr(n, "type"), "application/ld+json") && n.FirstChild != nil {
				p.ldObjects = append(p.ldObjects, decodeLD(n.FirstChild.Data)...)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// decodeLD accepts a single object, an array or an @graph container.
func decodeLD(raw string) []map[string]any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	var out []map[string]any
	var collect func(v any)
	collect = func(v any) {
		switch t := v.(type) {
		case []any:
			for _, e := range t {
				collect(e)
			}
		case map[string]any:
			if graph, ok := t["@graph"]; ok {
				collect(graph)
				return
			}
			out = append(out, t)
		}
	}
	collect(v)
	return out
}

var ldMediaTypes = map[string]string{
	"imageobject": "image",
	"videoobject": "video",
	"audioobject": "audio",
	"mediaobject": "media",
}

func applyLD(meta *entities.MediaMetadata, obj map[string]any) {
	mediaType, ok := ldMediaTypes[strings.ToLower(ldType(obj))]
	if !ok {
		return
	}
	if meta.MediaType == "" {
		meta.MediaType = mediaType
	}
	if meta.Title == "" {
		meta.Title = str(obj["name"])
	}
	if meta.Duration == "" {
		meta.Duration = str(obj["duration"])
	}
	if meta.ThumbnailURL == "" {
		meta.ThumbnailURL = firstString(obj["thumbnailUrl"])
	}
	if meta.Resolution == "" {
		meta.Resolution = resolution(str(obj["width"]), str(obj["height"]))
	}
	if meta.Provider == "" {
		if author, ok := obj["provider"].(map[string]any); ok {
			meta.Provider = str(author["name"])
		}
	}
	if len(meta.LicenseOptions) == 0 {
		meta.LicenseOptions = licenseOptions(obj["offers"])
	}
}

func applyOpenGraph(meta *entities.MediaMetadata, og map[string]string) {
	if meta.Title == "" {
		meta.Title = og["og:title"]
	}
	if meta.MediaType == "" {
		if t := og["og:type"]; t != "" {
			meta.MediaType, _, _ = strings.Cut(t, ".")
		}
	}
	if meta.ThumbnailURL == "" {
		meta.ThumbnailURL = og["og:image"]
	}
	if meta.Provider == "" {
		meta.Provider = og["og:site_name"]
	}
	if meta.Duration == "" {
		if d := og["video:duration"]; d != "" {
			if secs, err := strconv.Atoi(d); err == nil {
				meta.Duration = (time.Duration(secs) * time.Second).String()
			} else {
				meta.Duration = d
			}
		}
	}
	if meta.Resolution == "" {
		meta.Resolution = resolution(og["og:video:width"], og["og:video:height"])
	}
	if meta.Resolution == "" {
		meta.Resolution = resolution(og["og:image:width"], og["og:image:height"])
	}
}

// licenseOptions reads schema.org offers. Prices are major units.
func licenseOptions(v any) []entities.LicenseOption {
	var offers []map[string]any
	switch t := v.(type) {
	case map[string]any:
		if inner, ok := t["offers"]; ok && ldType(t) == "AggregateOffer" {
			return licenseOptions(inner)
		}
		offers = append(offers, t)
	case []any:
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				offers = append(offers, m)
			}
		}
	}

	var out []entities.LicenseOption
	seen := map[string]int{}
	for i, o := range offers {
		label := str(o["name"])
		if label == "" {
			label = str(o["description"])
		}
		if label == "" {
			label = fmt.Sprintf("Licença %d", i+1)
		}
		id := slug.Make(label)
		if n := seen[id]; n > 0 {
			id = fmt.Sprintf("%s-%d", id, n+1)
		}
		seen[slug.Make(label)]++

		out = append(out, entities.LicenseOption{
			ID:    id,
			Label: label,
			Price: money.ParseLenient(str(o["price"])),
		})
	}
	return out
}

func ldType(obj map[string]any) string {
	switch t := obj["@type"].(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			return str(t[0])
		}
	}
	return ""
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case map[string]any:
		if val, ok := t["value"]; ok {
			return str(val)
		}
	}
	return ""
}

func firstString(v any) string {
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		return str(list[0])
	}
	return str(v)
}

func resolution(w, h string) string {
	w, h = strings.TrimSuffix(w, "px"), strings.TrimSuffix(h, "px")
	if w == "" || h == "" {
		return ""
	}
	return w + "x" + h
}

func providerFor(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for domain, name := range knownProviders {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return name
		}
	}
	return ""
}
