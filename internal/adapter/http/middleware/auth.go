package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"orcamentos_rtv/internal/domain/access"
	"orcamentos_rtv/internal/infrastructure/auth"
	"orcamentos_rtv/pkg"
)

const ctxPrincipal = "principal"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to perform this action", http.StatusForbidden)
	errDomain       = pkg.NewDomainErrorSimple("DOMAIN_NOT_ALLOWED", "Account domain is not allowed", http.StatusForbidden)
)

// TokenVerifier validates a bearer token and returns who it belongs to.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Principal is the authenticated caller with its resolved permissions.
type Principal struct {
	Email        string              `json:"email"`
	Name         string              `json:"name,omitempty"`
	Role         string              `json:"role"`
	Capabilities []access.Capability `json:"capabilities"`
}

func (p Principal) Can(c access.Capability) bool {
	for _, have := range p.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

type AuthOptions struct {
	// Disabled skips token checks and authenticates every request as DevEmail.
	Disabled bool
	DevEmail string
}

// Authenticate resolves the caller from the Authorization header and stores
// its Principal in the gin context.
func Authenticate(verifier TokenVerifier, policy *access.Policy, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id auth.Identity
		if opts.Disabled {
			id = auth.Identity{Email: strings.ToLower(strings.TrimSpace(opts.DevEmail))}
		} else {
			token := bearerToken(c.GetHeader("Authorization"))
			verified, err := verifier.Verify(token)
			if err != nil {
				appErr := errUnauthorized
				if errors.Is(err, auth.ErrDomainNotAllowed) {
					appErr = errDomain
				}
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			id = verified
		}

		SetPrincipal(c, Principal{
			Email:        id.Email,
			Name:         id.Name,
			Role:         policy.RoleFor(id.Email),
			Capabilities: policy.Capabilities(id.Email),
		})
		c.Next()
	}
}

// RequireCapability rejects callers whose principal lacks capability.
func RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !p.Can(capability) {
			appErr := errForbidden.WithDetail("required", string(capability))
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(ctxPrincipal, p)
}

func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ctxPrincipal)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// UserEmail is the principal's email, empty for anonymous requests.
func UserEmail(c *gin.Context) string {
	p, _ := PrincipalFrom(c)
	return p.Email
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
