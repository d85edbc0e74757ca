package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const MessageUserRegistered = "Usuario registrado exitosamente"

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ListUsers(ctx context.Context) ([]*models.AuthUser, error)
}

type authService struct {
	repo    repository.AuthUserRepository
	limiter repository.RateLimitRepository
	tokens  TokenIssuer
}

// NewAuthService wires registration and login. A nil limiter disables login
// rate limiting.
func NewAuthService(repo repository.AuthUserRepository, limiter repository.RateLimitRepository, tokens TokenIssuer) AuthService {
	return &authService{
		repo:    repo,
		limiter: limiter,
		tokens:  tokens,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	existing, err := s.repo.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil && existing != nil {
		return nil, appErrors.DuplicateEntryError("Username or email already exists")
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to check existing users").WithError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.AuthUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateAuthUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.DuplicateEntryError("Username or email already exists").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return &models.RegisterResponse{
		Message: MessageUserRegistered,
		User: models.RegisteredUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// Login accepts either the username or the email in req.Username.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if s.limiter != nil {
		allowed, _, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, req.Username)
		if err != nil {
			logger.Error("Login rate limit check failed", slog.Any("error", err))

			return nil, appErrors.InternalError("Rate limit check failed").WithError(err)
		}

		if !allowed {
			return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
		}
	}

	user, err := s.repo.GetByUsernameOrEmail(ctx, req.Username, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Invalid credentials")
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed", slog.String("userID", user.ID.String()))

		return nil, appErrors.UnauthorizedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
		Email:       user.Email,
	}, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]*models.AuthUser, error) {
	users, err := s.repo.ListAuthUsers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, nil
}
