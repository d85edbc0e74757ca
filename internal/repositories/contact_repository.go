package repository

import (
	"context"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/google/uuid"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) error
	GetMessageByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type contactRepository struct {
	DB DBTX
}

func NewContactRepo(db DBTX) ContactRepository {
	return &contactRepository{DB: db}
}

const contactColumns = `id, name, email, message, phone, status, created_at`

func scanContactMessage(row interface{ Scan(dest ...any) error }) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{}

	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Phone, &msg.Status, &msg.CreatedAt); err != nil {
		return nil, err
	}

	return msg, nil
}

func (r *contactRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO contact_messages (name, email, message, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, msg.Name, msg.Email, msg.Message, msg.Phone, msg.Status).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contactRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`

	return scanContactMessage(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *contactRepository) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	defer rows.Close()

	messages := []*models.ContactMessage{}

	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update contact message status: %w", err)
	}

	return expectOneRow(result)
}
