package repository

import (
	"context"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
)

type AuthUserRepository interface {
	CreateAuthUser(ctx context.Context, user *models.AuthUser) error
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.AuthUser, error)
	ListAuthUsers(ctx context.Context) ([]*models.AuthUser, error)
}

type authUserRepository struct {
	DB DBTX
}

func NewAuthUserRepo(db DBTX) AuthUserRepository {
	return &authUserRepository{DB: db}
}

const authUserColumns = `id, username, email, password_hash, is_active, phone, created_at, updated_at`

func scanAuthUser(row interface{ Scan(dest ...any) error }) (*models.AuthUser, error) {
	user := &models.AuthUser{}

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive,
		&user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *authUserRepository) CreateAuthUser(ctx context.Context, user *models.AuthUser) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO auth_users (username, email, password_hash, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Username, user.Email, user.PasswordHash, user.Phone).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

// GetByUsernameOrEmail returns the first account whose username equals
// username or whose email equals email.
func (r *authUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.AuthUser, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + authUserColumns + ` FROM auth_users WHERE username = $1 OR email = $2 LIMIT 1`

	return scanAuthUser(r.DB.QueryRowContext(dbCtx, query, username, email))
}

func (r *authUserRepository) ListAuthUsers(ctx context.Context) ([]*models.AuthUser, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + authUserColumns + ` FROM auth_users ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list auth users: %w", err)
	}

	defer rows.Close()

	users := []*models.AuthUser{}

	for rows.Next() {
		user, err := scanAuthUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auth user: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
