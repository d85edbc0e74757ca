package api

import (
	"net/http"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/handlers"
)

// Handlers groups everything NewRouter mounts. Ready and Metrics are
// optional; a nil handler leaves the route unregistered.
type Handlers struct {
	Health      *handlers.HealthHandler
	Product     *handlers.ProductHandler
	Cart        *handlers.CartHandler
	User        *handlers.UserHandler
	Auth        *handlers.AuthHandler
	Contact     *handlers.ContactHandler
	CustomSalad *handlers.CustomSaladHandler
	Ready       http.Handler
	Metrics     http.Handler
}

// NewRouter mounts the API under /api; health, readiness, metrics and the
// root banner stay at the top level.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health())
	mux.HandleFunc("GET /{$}", h.Health.Root())

	if h.Ready != nil {
		mux.Handle("GET /health/ready", h.Ready)
	}

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("GET /api/products", h.Product.ListProducts())
	mux.HandleFunc("POST /api/products", h.Product.CreateProduct())
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetProduct())
	mux.HandleFunc("PATCH /api/products/{id}", h.Product.UpdateProduct())
	mux.HandleFunc("DELETE /api/products/{id}", h.Product.DeleteProduct())

	mux.HandleFunc("POST /api/cart/add", h.Cart.AddItem())
	mux.HandleFunc("GET /api/cart", h.Cart.GetCart())
	mux.HandleFunc("POST /api/cart/migrate", h.Cart.MigrateCart())
	mux.HandleFunc("DELETE /api/cart/clear/all", h.Cart.ClearCart())
	mux.HandleFunc("PATCH /api/cart/{id}", h.Cart.UpdateQuantity())
	mux.HandleFunc("DELETE /api/cart/{id}", h.Cart.RemoveItem())

	mux.HandleFunc("POST /api/users", h.User.CreateUser())
	mux.HandleFunc("GET /api/users", h.User.ListUsers())
	mux.HandleFunc("GET /api/users/session", h.User.GetBySession())
	mux.HandleFunc("GET /api/users/{id}", h.User.GetUser())
	mux.HandleFunc("PATCH /api/users/{id}", h.User.UpdateUser())
	mux.HandleFunc("DELETE /api/users/{id}", h.User.DeleteUser())

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register())
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login())
	mux.HandleFunc("GET /api/auth/users", h.Auth.ListUsers())

	mux.HandleFunc("POST /api/contact", h.Contact.CreateMessage())
	mux.HandleFunc("GET /api/contact", h.Contact.ListMessages())
	mux.HandleFunc("GET /api/contact/{id}", h.Contact.GetMessage())
	mux.HandleFunc("PATCH /api/contact/{id}/status/{status}", h.Contact.UpdateStatus())

	mux.HandleFunc("POST /api/custom-salads", h.CustomSalad.CreateCustomSalad())
	mux.HandleFunc("GET /api/custom-salads", h.CustomSalad.ListCustomSalads())
	mux.HandleFunc("GET /api/custom-salads/ingredients", h.CustomSalad.Ingredients())
	mux.HandleFunc("GET /api/custom-salads/{id}", h.CustomSalad.GetCustomSalad())

	return mux
}
