package response

import "orcamentos_rtv/internal/domain/access"

type MeResponse struct {
	Email        string          `json:"email"`
	Name         string          `json:"name,omitempty"`
	Role         string          `json:"role"`
	Capabilities []string        `json:"capabilities"`
	Features     map[string]bool `json:"features"`
}

func FromCapabilities(caps []access.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}
