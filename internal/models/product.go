package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
	Category    string   `json:"category" validate:"required,max=50"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=255"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0,lte=99999999.99"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=255"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}
