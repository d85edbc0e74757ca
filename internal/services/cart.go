package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MessageNothingToMigrate = "No items to migrate"
	MessageCartMigrated     = "Cart migrated successfully"
)

type CartService interface {
	AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartItem, error)
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	ClearCart(ctx context.Context, sessionID string) error
	MigrateCart(ctx context.Context, req *models.MigrateCartRequest) (*models.MigrateCartResponse, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	users       UserService
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository, users UserService) CartService {
	return &cartService{
		repo:        repo,
		productRepo: productRepo,
		users:       users,
	}
}

// AddItem puts quantity units of the named product in the session's cart.
// A product already in the cart has its quantity increased and keeps its
// original unit price.
func (s *cartService) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartItem, error) {
	if err := checkQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if req.UnitPrice == nil || *req.UnitPrice < 0 {
		return nil, appErrors.AddValidationError("unit_price", "must be greater than or equal to 0")
	}

	user, err := s.users.ResolveSession(ctx, req.UserSession)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindAvailableByName(ctx, req.ProductName)
	if err != nil {
		return nil, notFoundOr(err, "Product not found: "+req.ProductName, "Failed to look up product")
	}

	existing, err := s.repo.GetItemByUserAndProduct(ctx, user.ID, product.ID)
	switch {
	case err == nil:
		if err := checkLineTotal(existing.Quantity, req.Quantity); err != nil {
			return nil, err
		}

		if err := s.repo.IncrementQuantity(ctx, existing, req.Quantity); err != nil {
			return nil, writeError(err, "Failed to update cart item")
		}

		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.DatabaseError("Failed to look up cart item").WithError(err)
	}

	item := &models.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		UnitPrice: *req.UnitPrice,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, writeError(err, "Failed to add item to cart")
	}

	return item, nil
}

// GetCart lists the cart newest first. Total is the sum of unit_price *
// quantity rounded to cents; Count is the number of units, not lines.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	user, err := s.users.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsWithProducts(ctx, user.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	total := decimal.Zero
	count := 0

	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}

	return &models.Cart{
		Items: items,
		Total: total.Round(2).InexactFloat64(),
		Count: count,
	}, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, notFoundOr(err, "Cart item not found", "Failed to fetch cart item")
	}

	item.Quantity = quantity

	if err := s.repo.UpdateQuantity(ctx, item); err != nil {
		return nil, notFoundOr(err, "Cart item not found", "Failed to update cart item")
	}

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return notFoundOr(err, "Cart item not found", "Failed to remove cart item")
	}

	return nil
}

// ClearCart empties the session's cart; an empty cart is not an error.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	user, err := s.users.ResolveSession(ctx, sessionID)
	if err != nil {
		return err
	}

	removed, err := s.repo.DeleteItemsByUser(ctx, user.ID)
	if err != nil {
		return appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Cart cleared", slog.String("userID", user.ID.String()), slog.Int64("removed", removed))

	return nil
}

// MigrateCart folds the guest cart of TempSession into the cart of
// NewSession in one transaction. Lines for a product the target already
// holds are merged into the target line (its unit price wins) and deleted;
// the rest change owner.
func (s *cartService) MigrateCart(ctx context.Context, req *models.MigrateCartRequest) (*models.MigrateCartResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if req.TempSession == "" || req.NewSession == "" {
		return nil, appErrors.ValidationError("Both temp_session and new_session are required")
	}

	tempUser, err := s.users.ResolveSession(ctx, req.TempSession)
	if err != nil {
		return nil, err
	}

	targetUser, err := s.users.ResolveSession(ctx, req.NewSession)
	if err != nil {
		return nil, err
	}

	if tempUser.ID == targetUser.ID {
		return &models.MigrateCartResponse{Success: true, Message: MessageNothingToMigrate}, nil
	}

	migrated := 0

	err = s.repo.WithinTx(ctx, func(tx repository.CartRepository) error {
		items, err := tx.ListItemsByUser(ctx, tempUser.ID)
		if err != nil {
			return err
		}

		for _, item := range items {
			existing, err := tx.GetItemByUserAndProduct(ctx, targetUser.ID, item.ProductID)

			switch {
			case err == nil:
				if err := checkLineTotal(existing.Quantity, item.Quantity); err != nil {
					return err
				}

				if err := tx.IncrementQuantity(ctx, existing, item.Quantity); err != nil {
					return err
				}

				if err := tx.DeleteItem(ctx, item.ID); err != nil {
					return err
				}
			case errors.Is(err, sql.ErrNoRows):
				if err := tx.ReassignItem(ctx, item, targetUser.ID); err != nil {
					return err
				}
			default:
				return err
			}

			migrated++
		}

		return nil
	})
	if appErr, ok := appErrors.IsAppError(err); ok {
		return nil, appErr
	}

	if err != nil {
		logger.Error("Cart migration failed", slog.String("tempUserID", tempUser.ID.String()), slog.String("targetUserID", targetUser.ID.String()), slog.Any("error", err))

		return nil, appErrors.InternalError("Failed to migrate cart: " + err.Error()).WithError(err)
	}

	if migrated == 0 {
		return &models.MigrateCartResponse{Success: true, Message: MessageNothingToMigrate}, nil
	}

	logger.Info("Cart migrated", slog.String("targetUserID", targetUser.ID.String()), slog.Int("itemsMigrated", migrated))

	return &models.MigrateCartResponse{
		Success:       true,
		Message:       MessageCartMigrated,
		ItemsMigrated: migrated,
	}, nil
}

func checkQuantity(quantity int) error {
	if quantity < 1 || quantity > models.MaxItemQuantity {
		return appErrors.AddValidationError("quantity", fmt.Sprintf("must be between 1 and %d", models.MaxItemQuantity))
	}

	return nil
}

// checkLineTotal rejects growing a line past MaxItemQuantity.
func checkLineTotal(current, delta int) error {
	if current+delta > models.MaxItemQuantity {
		return appErrors.AddValidationError("quantity", fmt.Sprintf("a cart line holds at most %d units", models.MaxItemQuantity))
	}

	return nil
}
