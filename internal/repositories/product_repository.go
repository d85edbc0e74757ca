package repository

import (
	"context"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	FindAvailableByName(ctx context.Context, name string) (*models.Product, error)
	ListAvailableProducts(ctx context.Context, category string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	DB DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, price, category, image_url, is_available, stock, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Category,
		&product.ImageURL, &product.IsAvailable, &product.Stock, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (name, description, price, category, image_url, is_available, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.Category,
		product.ImageURL, product.IsAvailable, product.Stock).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

// GetProductByName is an exact, case-sensitive match used by catalog seeding.
func (r *productRepository) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 LIMIT 1`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, name))
}

// FindAvailableByName is the case-insensitive lookup behind "add to cart".
func (r *productRepository) FindAvailableByName(ctx context.Context, name string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE LOWER(name) = LOWER($1) AND is_available = TRUE
		ORDER BY created_at DESC
		LIMIT 1`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, name))
}

// ListAvailableProducts returns available products newest first; an empty
// category means every category.
func (r *productRepository) ListAvailableProducts(ctx context.Context, category string) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_available = TRUE AND ($1::text = '' OR category = $1::text)
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4, image_url = $5, is_available = $6, stock = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.Category,
		product.ImageURL, product.IsAvailable, product.Stock, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return expectOneRow(result)
}
