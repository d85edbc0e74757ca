package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/repositories/mocks"
	service "github.com/ensaladazo/ensaladazo-backend/internal/services"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func strPtr(s string) *string { return &s }

func TestUserService_ResolveSession(t *testing.T) {
	ctx := t.Context()

	t.Run("Existing session is returned unchanged", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		existing := &models.User{ID: uuid.New(), SessionID: "guest_1"}

		repo.On("GetUserBySessionID", mock.Anything, "guest_1").Return(existing, nil).Once()

		user, err := svc.ResolveSession(ctx, "guest_1")

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("New session creates a bare user", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		created := &models.User{ID: uuid.New(), SessionID: "guest_2", CreatedAt: time.Now()}

		repo.On("GetUserBySessionID", mock.Anything, "guest_2").Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateUserIfAbsent", mock.Anything, "guest_2").Return(created, nil).Once()

		user, err := svc.ResolveSession(ctx, "guest_2")

		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Nil(t, user.Name)
	})

	t.Run("Resolving twice yields the same id", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		created := &models.User{ID: uuid.New(), SessionID: "guest_3"}

		repo.On("GetUserBySessionID", mock.Anything, "guest_3").Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateUserIfAbsent", mock.Anything, "guest_3").Return(created, nil).Once()
		repo.On("GetUserBySessionID", mock.Anything, "guest_3").Return(created, nil).Once()

		first, err := svc.ResolveSession(ctx, "guest_3")
		require.NoError(t, err)

		second, err := svc.ResolveSession(ctx, "guest_3")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("Lost insert race re-reads the winner", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		winner := &models.User{ID: uuid.New(), SessionID: "guest_4"}

		repo.On("GetUserBySessionID", mock.Anything, "guest_4").Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateUserIfAbsent", mock.Anything, "guest_4").Return(nil, sql.ErrNoRows).Once()
		repo.On("GetUserBySessionID", mock.Anything, "guest_4").Return(winner, nil).Once()

		user, err := svc.ResolveSession(ctx, "guest_4")

		require.NoError(t, err)
		assert.Equal(t, winner.ID, user.ID)
	})

	t.Run("Empty session is rejected", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		_, err := svc.ResolveSession(ctx, "  ")

		requireAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		repo.On("GetUserBySessionID", mock.Anything, "guest_5").Return(nil, errors.New("conn reset")).Once()

		_, err := svc.ResolveSession(ctx, "guest_5")

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestUserService_CRUD(t *testing.T) {
	ctx := t.Context()

	t.Run("CreateUser duplicate session is a conflict", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(&pq.Error{Code: "23505"}).Once()

		_, err := svc.CreateUser(ctx, &models.CreateUserRequest{SessionID: "taken"})

		appErr := requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
		assert.Equal(t, 409, appErr.StatusCode)
	})

	t.Run("CreateUser copies profile fields", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		req := &models.CreateUserRequest{SessionID: "user_ana", Name: strPtr("Ana"), Email: strPtr("ana@example.com")}

		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.SessionID == "user_ana" && *u.Name == "Ana"
		})).Return(nil).Once()

		user, err := svc.CreateUser(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", *user.Email)
		assert.NotNil(t, user.CartItems)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		id := uuid.New()

		repo.On("GetUserByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetUserByID(ctx, id)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("UpdateUser applies only provided fields", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		id := uuid.New()
		current := &models.User{ID: id, SessionID: "s", Name: strPtr("Ana"), Email: strPtr("old@example.com")}

		repo.On("GetUserByID", mock.Anything, id).Return(current, nil).Once()
		repo.On("ListCartItemsByUsers", mock.Anything, []uuid.UUID{id}).Return([]*models.CartItem{}, nil).Once()
		repo.On("UpdateUser", mock.Anything, current).Return(nil).Once()

		user, err := svc.UpdateUser(ctx, id, &models.UpdateUserRequest{Email: strPtr("new@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "Ana", *user.Name)
		assert.Equal(t, "new@example.com", *user.Email)
		assert.Equal(t, "s", user.SessionID)
	})

	t.Run("DeleteUser missing", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		id := uuid.New()

		repo.On("DeleteUser", mock.Anything, id).Return(sql.ErrNoRows).Once()

		requireAppError(t, svc.DeleteUser(ctx, id), appErrors.ErrCodeNotFound)
	})

	t.Run("ListUsers attaches each user's cart lines", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		ana := &models.User{ID: uuid.New(), SessionID: "user_ana"}
		guest := &models.User{ID: uuid.New(), SessionID: "guest"}
		anaLines := []*models.CartItem{
			{ID: uuid.New(), UserID: ana.ID, Quantity: 1},
			{ID: uuid.New(), UserID: ana.ID, Quantity: 3},
		}

		repo.On("ListUsers", mock.Anything).Return([]*models.User{ana, guest}, nil).Once()
		repo.On("ListCartItemsByUsers", mock.Anything, []uuid.UUID{ana.ID, guest.ID}).Return(anaLines, nil).Once()

		users, err := svc.ListUsers(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, anaLines, users[0].CartItems)
		assert.NotNil(t, users[1].CartItems)
		assert.Empty(t, users[1].CartItems)
	})

	t.Run("GetUserByID cart lookup failure", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		id := uuid.New()

		repo.On("GetUserByID", mock.Anything, id).Return(&models.User{ID: id}, nil).Once()
		repo.On("ListCartItemsByUsers", mock.Anything, []uuid.UUID{id}).Return(nil, errors.New("timeout")).Once()

		_, err := svc.GetUserByID(ctx, id)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})

	t.Run("GetUserBySession resolves then loads the cart", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)
		user := &models.User{ID: uuid.New(), SessionID: "guest_7"}
		line := &models.CartItem{ID: uuid.New(), UserID: user.ID, Quantity: 2}

		repo.On("GetUserBySessionID", mock.Anything, "guest_7").Return(user, nil).Once()
		repo.On("ListCartItemsByUsers", mock.Anything, []uuid.UUID{user.ID}).Return([]*models.CartItem{line}, nil).Once()

		got, err := svc.GetUserBySession(ctx, "guest_7")

		require.NoError(t, err)
		assert.Equal(t, []*models.CartItem{line}, got.CartItems)
	})

	t.Run("ListUsers database error", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		repo.On("ListUsers", mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := svc.ListUsers(ctx)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}
