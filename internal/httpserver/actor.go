package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/catalog_admin/pkg/middleware/auth"
)

// withActor tags log entries on role-gated routes with the authenticated
// caller taken from the verified token claims.
func withActor(c echo.Context, l *slog.Logger) *slog.Logger {
	if claims := authmw.ClaimsFromContext(c); claims != nil {
		return l.With("actor", claims.Email)
	}
	return l
}
