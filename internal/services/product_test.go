package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/ensaladazo/ensaladazo-backend/internal/cache"
	cachemocks "github.com/ensaladazo/ensaladazo-backend/internal/cache/mocks"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/repositories/mocks"
	service "github.com/ensaladazo/ensaladazo-backend/internal/services"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProductService(t *testing.T) (service.ProductService, *mocks.ProductRepository, *cachemocks.Cache) {
	t.Helper()

	repo := mocks.NewProductRepository(t)
	c := cachemocks.NewCache(t)

	return service.NewProductService(repo, c), repo, c
}

func TestProductService_CreateProduct(t *testing.T) {
	svc, repo, _ := setupProductService(t)
	p := 4.5

	repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(product *models.Product) bool {
		return product.Name == "Bowl" && product.Price == 4.5 && product.IsAvailable
	})).Return(nil).Once()

	product, err := svc.CreateProduct(t.Context(), &models.CreateProductRequest{Name: "Bowl", Description: "d", Price: &p, Category: "bowls"})

	require.NoError(t, err)
	assert.True(t, product.IsAvailable)
}

func TestProductService_GetProductByID(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()
	key := cache.ProductKey(id)
	product := &models.Product{ID: id, Name: "Ensalada César", Price: 3.25}

	t.Run("Cache hit skips the store", func(t *testing.T) {
		svc, _, c := setupProductService(t)

		c.On("Get", mock.Anything, key, mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
			*args.Get(2).(*models.Product) = *product
		}).Return(true, nil).Once()

		got, err := svc.GetProductByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, product.Name, got.Name)
	})

	t.Run("Cache miss reads through and fills", func(t *testing.T) {
		svc, repo, c := setupProductService(t)

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(product, nil).Once()
		c.On("Set", mock.Anything, key, product, mock.Anything).Return(nil).Once()

		got, err := svc.GetProductByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Cache failures are ignored", func(t *testing.T) {
		svc, repo, c := setupProductService(t)

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(product, nil).Once()
		c.On("Set", mock.Anything, key, product, mock.Anything).Return(errors.New("redis down")).Once()

		got, err := svc.GetProductByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, repo, c := setupProductService(t)

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetProductByID(ctx, id)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Nil cache", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		svc := service.NewProductService(repo, nil)

		repo.On("GetProductByID", mock.Anything, id).Return(product, nil).Once()

		got, err := svc.GetProductByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	svc, repo, _ := setupProductService(t)
	products := []*models.Product{{Name: "Ensalada César", Category: "ensaladas"}}

	repo.On("ListAvailableProducts", mock.Anything, "ensaladas").Return(products, nil).Once()

	got, err := svc.ListProducts(t.Context(), "ensaladas")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()

	t.Run("Partial update invalidates the cache", func(t *testing.T) {
		svc, repo, c := setupProductService(t)
		existing := &models.Product{ID: id, Name: "Old", Price: 1, IsAvailable: true}
		newPrice := 2.5
		unavailable := false

		repo.On("GetProductByID", mock.Anything, id).Return(existing, nil).Once()
		repo.On("UpdateProduct", mock.Anything, existing).Return(nil).Once()
		c.On("Delete", mock.Anything, []string{cache.ProductKey(id)}).Return(nil).Once()

		got, err := svc.UpdateProduct(ctx, id, &models.UpdateProductRequest{Price: &newPrice, IsAvailable: &unavailable})

		require.NoError(t, err)
		assert.Equal(t, "Old", got.Name)
		assert.Equal(t, 2.5, got.Price)
		assert.False(t, got.IsAvailable)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)

		repo.On("GetProductByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.UpdateProduct(ctx, id, &models.UpdateProductRequest{})

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, repo, c := setupProductService(t)

		repo.On("DeleteProduct", mock.Anything, id).Return(nil).Once()
		c.On("Delete", mock.Anything, []string{cache.ProductKey(id)}).Return(errors.New("redis down")).Once()

		require.NoError(t, svc.DeleteProduct(ctx, id))
	})

	t.Run("Still in a cart", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)

		repo.On("DeleteProduct", mock.Anything, id).Return(&pq.Error{Code: "23503"}).Once()

		requireAppError(t, svc.DeleteProduct(ctx, id), appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)

		repo.On("DeleteProduct", mock.Anything, id).Return(sql.ErrNoRows).Once()

		requireAppError(t, svc.DeleteProduct(ctx, id), appErrors.ErrCodeNotFound)
	})
}

func TestProductService_SeedCatalog(t *testing.T) {
	ctx := t.Context()

	t.Run("Only missing names are inserted", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)
		present := service.DefaultCatalog[0].Name

		repo.On("GetProductByName", mock.Anything, present).Return(&models.Product{Name: present}, nil).Once()
		repo.On("GetProductByName", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)
		repo.On("CreateProduct", mock.Anything, mock.Anything).Return(nil)

		inserted, err := svc.SeedCatalog(ctx)

		require.NoError(t, err)
		assert.Len(t, inserted, len(service.DefaultCatalog)-1)
		repo.AssertNumberOfCalls(t, "CreateProduct", len(service.DefaultCatalog)-1)

		for _, p := range inserted {
			assert.NotEqual(t, present, p.Name)
		}
	})

	t.Run("Fully seeded store inserts nothing", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)

		repo.On("GetProductByName", mock.Anything, mock.Anything).Return(&models.Product{}, nil)

		inserted, err := svc.SeedCatalog(ctx)

		require.NoError(t, err)
		assert.Empty(t, inserted)
		repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Lookup failure stops seeding", func(t *testing.T) {
		svc, repo, _ := setupProductService(t)

		repo.On("GetProductByName", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := svc.SeedCatalog(ctx)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}
