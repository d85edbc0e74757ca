package service

import (
	"context"
	"log/slog"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	"github.com/ensaladazo/ensaladazo-backend/internal/cache"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SeedCatalog(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

// NewProductService wires the catalog. A nil cache disables read-through
// caching.
func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}

	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, writeError(err, "Failed to create product")
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := cache.ProductKey(id)

	if s.cache != nil {
		var cached models.Product

		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("Product cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if found {
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, 0); err != nil {
			logger.Warn("Product cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return product, nil
}

// ListProducts returns available products; an empty category lists all.
func (s *productService) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	products, err := s.repo.ListAvailableProducts(ctx, category)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, notFoundOr(err, "Product not found", "Failed to update product")
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return appErrors.DuplicateEntryError("Product is still referenced by a cart").WithError(err)
		}

		return notFoundOr(err, "Product not found", "Failed to delete product")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.ProductKey(id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.String("productID", id.String()), slog.Any("error", err))
	}
}
