package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the storefront identity behind a session id. Guests get one the
// first time their browser token touches the cart; logged-in customers use
// a session id derived from their username.
type User struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	// CartItems is only loaded on user reads; it is null elsewhere.
	CartItems []*CartItem `json:"cart_items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CreateUserRequest struct {
	SessionID string  `json:"session_id" validate:"required,max=255"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// session_id is immutable, so it is not part of the patch.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}
