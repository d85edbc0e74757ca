package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	service "github.com/ensaladazo/ensaladazo-backend/internal/services"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const MessageCustomSaladCreated = "Ensalada personalizada creada exitosamente"

type CustomSaladHandler struct {
	saladService service.CustomSaladService
	validator    *validator.Validate
}

func NewCustomSaladHandler(saladService service.CustomSaladService) *CustomSaladHandler {
	return &CustomSaladHandler{saladService: saladService, validator: utils.NewValidator()}
}

func (h *CustomSaladHandler) CreateCustomSalad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCustomSaladRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		salad, err := h.saladService.CreateCustomSalad(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create custom salad", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Custom salad created", slog.String("saladID", salad.ID.String()), slog.Int("ingredients", len(salad.Ingredients)))
		response.Success(w, http.StatusCreated, models.CustomSaladCreatedResponse{
			Message: MessageCustomSaladCreated,
			Salad:   salad,
		})
	}
}

func (h *CustomSaladHandler) Ingredients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.saladService.Ingredients())
	}
}

// ListCustomSalads filters by ?user_session= when present.
func (h *CustomSaladHandler) ListCustomSalads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		salads, err := h.saladService.ListCustomSalads(r.Context(), r.URL.Query().Get("user_session"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, salads)
	}
}

func (h *CustomSaladHandler) GetCustomSalad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.ParseUUIDParam(w, r, "id")
		if !ok {
			return
		}

		salad, err := h.saladService.GetCustomSalad(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, salad)
	}
}
