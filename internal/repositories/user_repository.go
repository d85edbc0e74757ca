package repository

import (
	"context"
	"fmt"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateUserIfAbsent(ctx context.Context, sessionID string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserBySessionID(ctx context.Context, sessionID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListCartItemsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*models.CartItem, error)
}

type userRepository struct {
	DB DBTX
}

func NewUserRepo(db DBTX) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, session_id, name, email, phone, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}

	if err := row.Scan(&user.ID, &user.SessionID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (session_id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.SessionID, user.Name, user.Email, user.Phone).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// CreateUserIfAbsent inserts a bare user for sessionID. It returns
// sql.ErrNoRows when another request created the row first.
func (r *userRepository) CreateUserIfAbsent(ctx context.Context, sessionID string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (session_id)
		VALUES ($1)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING ` + userColumns

	return scanUser(r.DB.QueryRowContext(dbCtx, query, sessionID))
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *userRepository) GetUserBySessionID(ctx context.Context, sessionID string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE session_id = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, sessionID))
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	defer rows.Close()

	users := []*models.User{}

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users SET name = $1, email = $2, phone = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Name, user.Email, user.Phone, user.ID).Scan(&user.UpdatedAt)
}

func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return expectOneRow(result)
}

// ListCartItemsByUsers returns the bare cart lines of every user in userIDs,
// oldest first.
func (r *userRepository) ListCartItemsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*models.CartItem, error) {
	items := []*models.CartItem{}

	if len(userIDs) == 0 {
		return items, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = ANY($1::uuid[]) ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.StringArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
