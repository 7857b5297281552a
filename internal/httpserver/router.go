package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/seed"
	authmw "github.com/Skotchmaster/catalog_admin/pkg/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	ProductHandler  *ProductHTTP
	RoleHandler     *RoleHTTP
	UserRoleHandler *UserRoleHTTP
	JWTSecret       []byte
}

// Register wires the routes. Catalog reads are public; catalog mutation
// needs Manager; role and assignment administration needs Admin or Manager.
func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/login", d.AuthHandler.Login)

	mw := authmw.New(d.JWTSecret)

	products := e.Group("/catalog/products")
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("/:id/image", d.ProductHandler.GetProductImage)

	manager := products.Group("", mw.RequireRoles(seed.ManagerRole))
	manager.POST("", d.ProductHandler.CreateProduct)
	manager.PUT("/:id", d.ProductHandler.UpdateProduct)
	manager.DELETE("/:id", d.ProductHandler.DeleteProduct)
	manager.POST("/:id/image", d.ProductHandler.UploadProductImage)

	admin := e.Group("/admin", mw.RequireRoles(seed.AdminRole, seed.ManagerRole))
	admin.GET("/roles", d.RoleHandler.ListRoles)
	admin.GET("/roles/:name", d.RoleHandler.GetRole)
	admin.POST("/roles", d.RoleHandler.CreateRole)
	admin.DELETE("/roles/:name", d.RoleHandler.DeleteRole)

	admin.GET("/users", d.UserRoleHandler.ListUsers)
	admin.GET("/users/:email/roles", d.UserRoleHandler.GetUserRoles)
	admin.POST("/users/:email/roles", d.UserRoleHandler.AddUserRole)
	admin.DELETE("/users/:email/roles/:role", d.UserRoleHandler.RemoveUserRole)
}
