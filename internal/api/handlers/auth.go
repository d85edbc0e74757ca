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

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: utils.NewValidator()}
}

func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.String("username", req.Username), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userID", resp.User.ID.String()))
		response.Success(w, http.StatusCreated, resp)
	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("username", req.Username), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("username", resp.Username))
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *AuthHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.authService.ListUsers(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, users)
	}
}
