package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	CreateItem(ctx context.Context, item *models.CartItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	GetItemByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	ListItemsWithProducts(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	IncrementQuantity(ctx context.Context, item *models.CartItem, delta int) error
	UpdateQuantity(ctx context.Context, item *models.CartItem) error
	ReassignItem(ctx context.Context, item *models.CartItem, userID uuid.UUID) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteItemsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	WithinTx(ctx context.Context, fn func(repo CartRepository) error) error
}

type cartRepository struct {
	DB   DBTX
	conn *sql.DB
}

// NewCartRepo binds to db. Passing a *sql.DB enables WithinTx; a repository
// bound to a *sql.Tx runs the callback on itself.
func NewCartRepo(db DBTX) CartRepository {
	repo := &cartRepository{DB: db}

	if conn, ok := db.(*sql.DB); ok {
		repo.conn = conn
	}

	return repo
}

const cartItemColumns = `id, user_id, product_id, quantity, unit_price, created_at, updated_at`

func scanCartItem(row interface{ Scan(dest ...any) error }) (*models.CartItem, error) {
	item := &models.CartItem{}

	if err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}

	return item, nil
}

// CreateItem inserts a new cart line. If a concurrent request already
// inserted the same (user, product) pair the quantities are added instead,
// keeping one row per product.
func (r *cartRepository) CreateItem(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, quantity, unit_price, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, item.UserID, item.ProductID, item.Quantity, item.UnitPrice).
		Scan(&item.ID, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt)
}

func (r *cartRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1`

	return scanCartItem(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *cartRepository) GetItemByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = $1 AND product_id = $2`

	return scanCartItem(r.DB.QueryRowContext(dbCtx, query, userID, productID))
}

// ListItemsByUser returns the bare cart lines in insertion order.
func (r *cartRepository) ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	items := []*models.CartItem{}

	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ListItemsWithProducts returns the cart newest first with each product joined.
func (r *cartRepository) ListItemsWithProducts(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.unit_price, ci.created_at, ci.updated_at,
		       p.id, p.name, p.description, p.price, p.category, p.image_url, p.is_available, p.stock, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	items := []*models.CartItem{}

	for rows.Next() {
		item := &models.CartItem{}
		product := &models.Product{}

		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt,
			&product.ID, &product.Name, &product.Description, &product.Price, &product.Category, &product.ImageURL,
			&product.IsAvailable, &product.Stock, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		item.Product = product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// IncrementQuantity adds delta in a single statement so concurrent adds do
// not overwrite each other.
func (r *cartRepository) IncrementQuantity(ctx context.Context, item *models.CartItem, delta int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING quantity, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, delta, item.ID).Scan(&item.Quantity, &item.UpdatedAt)
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET quantity = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, item.Quantity, item.ID).Scan(&item.UpdatedAt)
}

func (r *cartRepository) ReassignItem(ctx context.Context, item *models.CartItem, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET user_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at`

	if err := r.DB.QueryRowContext(dbCtx, query, userID, item.ID).Scan(&item.UpdatedAt); err != nil {
		return err
	}

	item.UserID = userID

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return expectOneRow(result)
}

func (r *cartRepository) DeleteItemsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	return result.RowsAffected()
}

// WithinTx runs fn against a transaction-bound repository, committing when fn
// returns nil and rolling back otherwise.
func (r *cartRepository) WithinTx(ctx context.Context, fn func(repo CartRepository) error) error {
	if r.conn == nil {
		return fn(r)
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&cartRepository{DB: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
