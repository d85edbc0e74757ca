package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
)

// DefaultCatalog is the storefront menu inserted at startup.
var DefaultCatalog = []models.Product{
	{
		Name:        "Ensalada CobbFit",
		Description: "Mezcla fresca de lechuga, tomate, cebolla morada, aguacate, queso mozzarella, tocino, pechuga de pollo, huevo duro y rodajas de pan tostado.",
		Price:       4.0,
		Category:    "ensaladas",
		IsAvailable: true,
		Stock:       50,
	},
	{
		Name:        "Ensalada César",
		Description: "Ensalada clásica con lechuga, pollo, huevo duro, tomate, queso mozzarella y pan tostado.",
		Price:       3.25,
		Category:    "ensaladas",
		IsAvailable: true,
		Stock:       50,
	},
	{
		Name:        "Ensalada Mediterránea",
		Description: "Lechuga, tomate, pepino, aceitunas, queso feta, cebolla morada y aderezo de limón.",
		Price:       3.5,
		Category:    "ensaladas",
		IsAvailable: true,
		Stock:       40,
	},
	{
		Name:        "Ensalada Tropical",
		Description: "Mix de lechugas, mango, piña, pollo, nueces y vinagreta de miel mostaza.",
		Price:       4.25,
		Category:    "ensaladas",
		IsAvailable: true,
		Stock:       35,
	},
	{
		Name:        "Smoothie Verde",
		Description: "Batido energizante de espinaca, manzana verde, jengibre y menta.",
		Price:       2.75,
		Category:    "bebidas",
		IsAvailable: true,
		Stock:       30,
	},
	{
		Name:        "Smoothie de Frutas",
		Description: "Batido refrescante de fresa, plátano, yogurt y miel.",
		Price:       2.75,
		Category:    "bebidas",
		IsAvailable: true,
		Stock:       30,
	},
	{
		Name:        "Jugo Natural",
		Description: "Jugo natural de naranja, zanahoria o piña recién exprimido.",
		Price:       2.5,
		Category:    "bebidas",
		IsAvailable: true,
		Stock:       40,
	},
	{
		Name:        "Aderezo Extra",
		Description: "Ranch, César, Balsámico o Miel Mostaza.",
		Price:       0.5,
		Category:    "extras",
		IsAvailable: true,
		Stock:       100,
	},
	{
		Name:        "Proteína Extra",
		Description: "Porción adicional de pollo, huevo o queso.",
		Price:       1.0,
		Category:    "extras",
		IsAvailable: true,
		Stock:       80,
	},
	{
		Name:        "Pan Tostado",
		Description: "Rebanadas de pan artesanal tostado.",
		Price:       0.75,
		Category:    "extras",
		IsAvailable: true,
		Stock:       60,
	},
}

// SeedCatalog inserts every DefaultCatalog entry whose exact name is not in
// the store yet and returns the rows it created. Safe to run on every start.
func (s *productService) SeedCatalog(ctx context.Context) ([]*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	inserted := []*models.Product{}

	for _, entry := range DefaultCatalog {
		_, err := s.repo.GetProductByName(ctx, entry.Name)
		if err == nil {
			continue
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return inserted, appErrors.DatabaseError("Failed to check catalog").WithError(err)
		}

		product := entry
		if err := s.repo.CreateProduct(ctx, &product); err != nil {
			return inserted, appErrors.DatabaseError("Failed to seed product " + entry.Name).WithError(err)
		}

		inserted = append(inserted, &product)
	}

	logger.Info("Catalog seeded", slog.Int("inserted", len(inserted)), slog.Int("catalogSize", len(DefaultCatalog)))

	return inserted, nil
}
