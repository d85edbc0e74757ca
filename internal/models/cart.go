package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product line in a user's cart. UnitPrice is the price
// captured when the product was first added, not the live catalog price.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxItemQuantity caps the units a single cart line can hold.
const MaxItemQuantity = 10000

type Cart struct {
	Items []*CartItem `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

type AddItemRequest struct {
	UserSession string   `json:"user_session" validate:"required,max=255"`
	ProductName string   `json:"product_name" validate:"required,max=100"`
	Quantity    int      `json:"quantity" validate:"required,min=1,max=10000"`
	UnitPrice   *float64 `json:"unit_price" validate:"required,gte=0,lte=99999999.99"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10000"`
}

type MigrateCartRequest struct {
	TempSession string `json:"temp_session" validate:"required"`
	NewSession  string `json:"new_session" validate:"required"`
}

type MigrateCartResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ItemsMigrated int    `json:"items_migrated"`
}
