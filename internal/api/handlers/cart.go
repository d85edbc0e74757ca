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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   utils.NewValidator(),
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.AddItem(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.String("product", req.ProductName), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("itemID", item.ID.String()), slog.Int("quantity", item.Quantity))
		response.Success(w, http.StatusCreated, item)
	}
}

// for eg: GET /api/cart?user_session=guest_abc
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.RequireQuery(w, r, "user_session")
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.ParseUUIDParam(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateQuantity(r.Context(), id, req.Quantity)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.ParseUUIDParam(w, r, "id")
		if !ok {
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.RequireQuery(w, r, "user_session")
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), session); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

// MigrateCart is called by the storefront right after login to fold the
// guest cart into the customer's cart.
func (h *CartHandler) MigrateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.MigrateCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.cartService.MigrateCart(r.Context(), &req)
		if err != nil {
			logger.Error("Cart migration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart migration finished", slog.Int("itemsMigrated", resp.ItemsMigrated))
		response.Success(w, http.StatusOK, resp)
	}
}
