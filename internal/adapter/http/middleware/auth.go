package middleware

import (
	"net/http"
	"strings"

	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

var (
	errInternal     = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this role", http.StatusForbidden)
	errRateLimited  = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
)

// TokenValidator is satisfied by *auth.JWTValidator.
type TokenValidator interface {
	Validate(token string) (auth.Principal, error)
}

// RequireAuth rejects requests without a valid bearer token. A nil
// validator rejects everything.
func RequireAuth(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if v == nil || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		p, err := v.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok || !p.HasRole(roles...) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(principalKey, p)
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
