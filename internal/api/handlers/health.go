package handlers

import (
	"net/http"
	"time"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils/response"
)

const (
	ServiceName = "Ensaladazo Backend API"
	Version     = "1.0.0"

	// ISO 8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health is the liveness check; it never touches the database.
func (h *HealthHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.HealthResponse{
			Status:    "ok",
			Timestamp: h.now().UTC().Format(timestampLayout),
			Service:   ServiceName,
			Version:   Version,
		})
	}
}

func (h *HealthHandler) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.RootResponse{
			Message: "Bienvenido a Ensaladazo! API",
			Version: Version,
			Endpoints: map[string]string{
				"health":        "/health",
				"products":      "/api/products",
				"cart":          "/api/cart",
				"users":         "/api/users",
				"auth":          "/api/auth",
				"contact":       "/api/contact",
				"custom_salads": "/api/custom-salads",
			},
		})
	}
}
