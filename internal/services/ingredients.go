package service

import "github.com/ensaladazo/ensaladazo-backend/internal/models"

func option(name string, price float64) models.IngredientOption {
	return models.IngredientOption{Name: name, Price: price, Available: true}
}

// IngredientMenu returns a fresh copy of the salad builder's ingredient list.
func IngredientMenu() *models.IngredientCatalog {
	return &models.IngredientCatalog{
		Bases: []models.IngredientOption{
			option("Lechuga Romana", 0),
			option("Espinaca", 0.5),
			option("Kale", 0.75),
			option("Mix de Lechugas", 0.5),
		},
		Vegetables: []models.IngredientOption{
			option("Tomate", 0.3),
			option("Pepino", 0.3),
			option("Zanahoria", 0.25),
			option("Cebolla Morada", 0.2),
			option("Pimiento", 0.4),
			option("Maíz", 0.3),
			option("Aguacate", 1.0),
			option("Aceitunas", 0.5),
		},
		Proteins: []models.IngredientOption{
			option("Pollo a la Parrilla", 1.5),
			option("Atún", 1.25),
			option("Huevo Duro", 0.75),
			option("Queso Mozzarella", 1.0),
			option("Tocino", 1.0),
			option("Garbanzos", 0.75),
		},
		Dressings: []models.IngredientOption{
			option("César", 0),
			option("Ranch", 0),
			option("Balsámico", 0),
			option("Miel Mostaza", 0),
			option("Vinagreta", 0),
			option("Limón y Aceite", 0),
		},
		Extras: []models.IngredientOption{
			option("Pan Tostado", 0.5),
			option("Queso Parmesano", 0.75),
			option("Nueces", 0.75),
			option("Cranberries", 0.5),
			option("Semillas de Girasol", 0.5),
		},
	}
}
