package models

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Category string   `json:"category" validate:"required,max=50"`
	Price    *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
}

type CustomSalad struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	TotalPrice  float64      `json:"total_price"`
	Notes       *string      `json:"notes"`
	// User is the owner, set on the list-all and get-by-id reads.
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCustomSaladRequest struct {
	UserSession string       `json:"user_session" validate:"required,max=255"`
	Name        string       `json:"name" validate:"required,max=100"`
	Ingredients []Ingredient `json:"ingredients" validate:"required,dive"`
	TotalPrice  *float64     `json:"total_price" validate:"required,gte=0,lte=99999999.99"`
	Notes       *string      `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type IngredientOption struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type IngredientCatalog struct {
	Bases      []IngredientOption `json:"bases"`
	Vegetables []IngredientOption `json:"vegetables"`
	Proteins   []IngredientOption `json:"proteins"`
	Dressings  []IngredientOption `json:"dressings"`
	Extras     []IngredientOption `json:"extras"`
}

type CustomSaladCreatedResponse struct {
	Message string       `json:"message"`
	Salad   *CustomSalad `json:"salad"`
}
