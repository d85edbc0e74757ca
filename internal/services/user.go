package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/google/uuid"
)

type UserService interface {
	ResolveSession(ctx context.Context, sessionID string) (*models.User, error)
	GetUserBySession(ctx context.Context, sessionID string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ResolveSession returns the user owning sessionID, creating it on first
// sight. Concurrent first calls for the same session converge on one row.
func (s *userService) ResolveSession(ctx context.Context, sessionID string) (*models.User, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, appErrors.AddValidationError("session_id", "must not be empty")
	}

	user, err := s.repo.GetUserBySessionID(ctx, sessionID)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to resolve session").WithError(err)
	}

	user, err = s.repo.CreateUserIfAbsent(ctx, sessionID)
	if err == nil {
		middleware.LoggerFromContext(ctx).Info("Created user for new session", slog.String("userID", user.ID.String()))

		return user, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to create user for session").WithError(err)
	}

	// another request inserted the row between our read and write
	user, err = s.repo.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to resolve session").WithError(err)
	}

	return user, nil
}

// GetUserBySession is ResolveSession with the user's cart lines loaded.
func (s *userService) GetUserBySession(ctx context.Context, sessionID string) (*models.User, error) {
	user, err := s.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.loadCartItems(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// loadCartItems fills CartItems on every user with one query.
func (s *userService) loadCartItems(ctx context.Context, users ...*models.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(users))
	byUser := make(map[uuid.UUID]*models.User, len(users))

	for _, user := range users {
		user.CartItems = []*models.CartItem{}
		ids = append(ids, user.ID)
		byUser[user.ID] = user
	}

	items, err := s.repo.ListCartItemsByUsers(ctx, ids)
	if err != nil {
		return appErrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	for _, item := range items {
		if user, ok := byUser[item.UserID]; ok {
			user.CartItems = append(user.CartItems, item)
		}
	}

	return nil
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		SessionID: req.SessionID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CartItems: []*models.CartItem{},
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.DuplicateEntryError("Session id already registered").WithError(err)
		}

		return nil, writeError(err, "Failed to create user")
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch users").WithError(err)
	}

	if err := s.loadCartItems(ctx, users...); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "Failed to fetch user")
	}

	if err := s.loadCartItems(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = req.Name
	}

	if req.Email != nil {
		user.Email = req.Email
	}

	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, notFoundOr(err, "User not found", "Failed to update user")
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return notFoundOr(err, "User not found", "Failed to delete user")
	}

	return nil
}
