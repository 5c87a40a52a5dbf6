// Package access resolves what an authenticated user may do. Roles and
// per-user overrides are data loaded from configuration.
package access

import (
	"sort"
	"strings"
)

type Capability string

const (
	BudgetRead   Capability = "budget:read"
	BudgetWrite  Capability = "budget:write"
	RightsRead   Capability = "rights:read"
	RightsWrite  Capability = "rights:write"
	FinanceRead  Capability = "finance:read"
	FinanceEdit  Capability = "finance:edit"
	ClientsWrite Capability = "clients:write"
)

// AllCapabilities is what the admin role gets.
var AllCapabilities = []Capability{
	BudgetRead, BudgetWrite, RightsRead, RightsWrite, FinanceRead, FinanceEdit, ClientsWrite,
}

const (
	RoleAdmin      = "admin"
	RoleRTV        = "rtv"
	RoleFinanceiro = "financeiro"
	RoleViewer     = "viewer"
)

// DefaultRoles is the built-in table. Entries loaded from configuration
// replace the built-in entry for the same role.
func DefaultRoles() map[string][]Capability {
	return map[string][]Capability{
		RoleAdmin:      AllCapabilities,
		RoleRTV:        {BudgetRead, BudgetWrite, RightsRead, RightsWrite, ClientsWrite},
		RoleFinanceiro: {BudgetRead, RightsRead, FinanceRead, FinanceEdit},
		RoleViewer:     {BudgetRead, RightsRead},
	}
}

// Policy maps a user to a role and a capability set.
type Policy struct {
	roles       map[string]map[Capability]bool
	userRoles   map[string]string
	userGrants  map[string][]Capability
	defaultRole string
}

// Config mirrors config.AccessConfig without importing it.
type Config struct {
	RoleCapabilities map[string][]string
	UserRoles        map[string][]string
	UserGrants       map[string][]string
	DefaultRole      string
}

func NewPolicy(cfg Config) *Policy {
	p := &Policy{
		roles:       map[string]map[Capability]bool{},
		userRoles:   map[string]string{},
		userGrants:  map[string][]Capability{},
		defaultRole: normalize(cfg.DefaultRole),
	}
	if p.defaultRole == "" {
		p.defaultRole = RoleRTV
	}

	for role, caps := range DefaultRoles() {
		p.roles[role] = toSet(caps)
	}
	for role, raw := range cfg.RoleCapabilities {
		p.roles[normalize(role)] = toSet(parse(raw))
	}
	for email, roles := range cfg.UserRoles {
		if len(roles) > 0 {
			p.userRoles[normalize(email)] = normalize(roles[0])
		}
	}
	for email, raw := range cfg.UserGrants {
		p.userGrants[normalize(email)] = parse(raw)
	}
	return p
}

// RoleFor returns the configured role of email, or the default role.
func (p *Policy) RoleFor(email string) string {
	if role, ok := p.userRoles[normalize(email)]; ok {
		return role
	}
	return p.defaultRole
}

// Capabilities returns the sorted capability set of email: its role's
// capabilities plus any per-user grants.
func (p *Policy) Capabilities(email string) []Capability {
	set := map[Capability]bool{}
	for c := range p.roles[p.RoleFor(email)] {
		set[c] = true
	}
	for _, c := range p.userGrants[normalize(email)] {
		set[c] = true
	}
	out := make([]Capability, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (p *Policy) Can(email string, c Capability) bool {
	if p.roles[p.RoleFor(email)][c] {
		return true
	}
	for _, g := range p.userGrants[normalize(email)] {
		if g == c {
			return true
		}
	}
	return false
}

func toSet(caps []Capability) map[Capability]bool {
	set := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

func parse(raw []string) []Capability {
	out := make([]Capability, 0, len(raw))
	for _, r := range raw {
		if r = normalize(r); r != "" {
			out = append(out, Capability(r))
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
