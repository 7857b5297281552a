package transport

import (
	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/status"
)

type CreateProductRequest struct {
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type UpdateProductRequest struct {
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type CreateRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

type AssignRoleRequest struct {
	RoleName string `json:"role_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type ProductView struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type RoleView struct {
	Name string `json:"name"`
}

type UserView struct {
	Email string `json:"email"`
}

type UserRolesView struct {
	Email string     `json:"email"`
	Roles []RoleView `json:"roles"`
}

// StatusResponse carries the tagged outcome plus its pipe-delimited
// rendering, which is the form the presentation layer consumes.
type StatusResponse struct {
	Kind    status.Kind `json:"kind"`
	Detail  string      `json:"detail"`
	Message string      `json:"message"`
}

func NewStatusResponse(s status.Status) StatusResponse {
	return StatusResponse{Kind: s.Kind, Detail: s.Detail, Message: s.String()}
}

func NewProductView(p *models.Product) ProductView {
	return ProductView{ID: p.ID, Description: p.Description, Price: p.Price}
}

func NewProductViews(products []models.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, NewProductView(&products[i]))
	}
	return out
}

func NewRoleViews(roles []models.Role) []RoleView {
	out := make([]RoleView, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleView{Name: r.Name})
	}
	return out
}

func NewUserViews(users []models.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, UserView{Email: u.Email})
	}
	return out
}
