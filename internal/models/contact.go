package models

import (
	"time"

	"github.com/google/uuid"
)

const ContactStatusPending = "pending"

type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Phone     *string   `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateContactMessageRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Message string  `json:"message" validate:"required,max=1000"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type EmailRequest struct {
	To          string
	Subject     string
	Content     string
	HTMLContent string
}

type ContactCreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}
