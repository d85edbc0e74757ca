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

const MessageContactReceived = "Mensaje enviado exitosamente. Te contactaremos pronto."

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: utils.NewValidator()}
}

func (h *ContactHandler) CreateMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateContactMessageRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		msg, err := h.contactService.CreateMessage(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to store contact message", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, models.ContactCreatedResponse{
			Message: MessageContactReceived,
			ID:      msg.ID,
		})
	}
}

func (h *ContactHandler) ListMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactService.ListMessages(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, messages)
	}
}

func (h *ContactHandler) GetMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.ParseUUIDParam(w, r, "id")
		if !ok {
			return
		}

		msg, err := h.contactService.GetMessage(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, msg)
	}
}

// for eg: PATCH /api/contact/{id}/status/read
func (h *ContactHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.ParseUUIDParam(w, r, "id")
		if !ok {
			return
		}

		msg, err := h.contactService.UpdateStatus(r.Context(), id, r.PathValue("status"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, msg)
	}
}
