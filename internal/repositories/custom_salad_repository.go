package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/google/uuid"
)

type CustomSaladRepository interface {
	CreateCustomSalad(ctx context.Context, salad *models.CustomSalad) error
	GetCustomSaladByID(ctx context.Context, id uuid.UUID) (*models.CustomSalad, error)
	ListCustomSaladsByUser(ctx context.Context, userID uuid.UUID) ([]*models.CustomSalad, error)
	ListCustomSalads(ctx context.Context) ([]*models.CustomSalad, error)
}

type customSaladRepository struct {
	DB DBTX
}

func NewCustomSaladRepo(db DBTX) CustomSaladRepository {
	return &customSaladRepository{DB: db}
}

const customSaladColumns = `id, user_id, name, ingredients, total_price, notes, created_at`

// customSaladWithUser selects a salad followed by its owner's columns.
const customSaladWithUser = `
	SELECT cs.id, cs.user_id, cs.name, cs.ingredients, cs.total_price, cs.notes, cs.created_at,
		u.id, u.session_id, u.name, u.email, u.phone, u.created_at, u.updated_at
	FROM custom_salads cs
	JOIN users u ON u.id = cs.user_id`

type scanner interface{ Scan(dest ...any) error }

func scanCustomSalad(row scanner) (*models.CustomSalad, error) {
	salad := &models.CustomSalad{}

	var ingredients []byte

	if err := row.Scan(&salad.ID, &salad.UserID, &salad.Name, &ingredients, &salad.TotalPrice, &salad.Notes, &salad.CreatedAt); err != nil {
		return nil, err
	}

	if err := decodeIngredients(salad, ingredients); err != nil {
		return nil, err
	}

	return salad, nil
}

func scanCustomSaladWithUser(row scanner) (*models.CustomSalad, error) {
	salad := &models.CustomSalad{}
	user := &models.User{}

	var ingredients []byte

	err := row.Scan(&salad.ID, &salad.UserID, &salad.Name, &ingredients, &salad.TotalPrice, &salad.Notes, &salad.CreatedAt,
		&user.ID, &user.SessionID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	salad.User = user

	if err := decodeIngredients(salad, ingredients); err != nil {
		return nil, err
	}

	return salad, nil
}

func decodeIngredients(salad *models.CustomSalad, raw []byte) error {
	if err := json.Unmarshal(raw, &salad.Ingredients); err != nil {
		return fmt.Errorf("failed to unmarshal salad ingredients: %w", err)
	}

	return nil
}

func (r *customSaladRepository) CreateCustomSalad(ctx context.Context, salad *models.CustomSalad) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if salad.Ingredients == nil {
		salad.Ingredients = []models.Ingredient{}
	}

	ingredients, err := json.Marshal(salad.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal salad ingredients: %w", err)
	}

	query := `
		INSERT INTO custom_salads (user_id, name, ingredients, total_price, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, salad.UserID, salad.Name, string(ingredients), salad.TotalPrice, salad.Notes).
		Scan(&salad.ID, &salad.CreatedAt)
}

func (r *customSaladRepository) GetCustomSaladByID(ctx context.Context, id uuid.UUID) (*models.CustomSalad, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := customSaladWithUser + ` WHERE cs.id = $1`

	return scanCustomSaladWithUser(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *customSaladRepository) ListCustomSaladsByUser(ctx context.Context, userID uuid.UUID) ([]*models.CustomSalad, error) {
	query := `SELECT ` + customSaladColumns + ` FROM custom_salads WHERE user_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, scanCustomSalad, query, userID)
}

func (r *customSaladRepository) ListCustomSalads(ctx context.Context) ([]*models.CustomSalad, error) {
	query := customSaladWithUser + ` ORDER BY cs.created_at DESC`

	return r.list(ctx, scanCustomSaladWithUser, query)
}

func (r *customSaladRepository) list(ctx context.Context, scan func(scanner) (*models.CustomSalad, error), query string, args ...any) ([]*models.CustomSalad, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom salads: %w", err)
	}

	defer rows.Close()

	salads := []*models.CustomSalad{}

	for rows.Next() {
		salad, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom salad: %w", err)
		}

		salads = append(salads, salad)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return salads, nil
}
