package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/pkg/tokens"
)

const ClaimsKey = "claims"

type Middleware struct {
	JWTSecret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{JWTSecret: secret}
}

// RequireRoles parses the bearer token and rejects callers whose role set
// does not intersect the required names: 401 without a valid token, 403
// without the role.
func (m *Middleware) RequireRoles(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
			if err != nil || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			if len(names) > 0 && !claims.HasAnyRole(names...) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims RequireRoles stored, or nil
// on an unauthenticated route.
func ClaimsFromContext(c echo.Context) *tokens.AccessClaims {
	if v, ok := c.Get(ClaimsKey).(*tokens.AccessClaims); ok {
		return v
	}
	return nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if ck, err := c.Cookie("accessToken"); err == nil {
		return ck.Value
	}
	return ""
}
