package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/handlers"
	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/internal/services/mocks"
	"github.com/ensaladazo/ensaladazo-backend/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("CreateUser", mock.Anything, mock.MatchedBy(func(r *models.CreateUserRequest) bool {
			return r.SessionID == "guest_1"
		})).Return(&models.User{ID: uuid.New(), SessionID: "guest_1"}, nil).Once()

		rr := httptest.NewRecorder()
		userHandler.CreateUser()(rr, testutils.CreateTestRequest(http.MethodPost, "/api/users", strings.NewReader(`{"session_id":"guest_1"}`), nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Session already taken", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Session already registered")).Once()

		rr := httptest.NewRecorder()
		userHandler.CreateUser()(rr, testutils.CreateTestRequest(http.MethodPost, "/api/users", strings.NewReader(`{"session_id":"guest_1"}`), nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Invalid email", func(t *testing.T) {
		userHandler := handlers.NewUserHandler(mocks.NewUserService(t))

		rr := httptest.NewRecorder()
		userHandler.CreateUser()(rr, testutils.CreateTestRequest(http.MethodPost, "/api/users", strings.NewReader(`{"session_id":"g","email":"nope"}`), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, testutils.DecodeError(t, rr).Error.Details, "Field email must be a valid email address")
	})
}

func TestUserHandler_GetBySession(t *testing.T) {
	t.Run("Resolves the session with its cart lines", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)
		user := &models.User{
			ID:        uuid.New(),
			SessionID: "guest_9",
			CartItems: []*models.CartItem{{ID: uuid.New(), Quantity: 2, UnitPrice: 3.25}},
		}

		mockUserService.On("GetUserBySession", mock.Anything, "guest_9").Return(user, nil).Once()

		rr := httptest.NewRecorder()
		userHandler.GetBySession()(rr, testutils.CreateTestRequest(http.MethodGet, "/api/users/session?session_id=guest_9", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, user.ID, got.ID)
		require.Len(t, got.CartItems, 1)
		assert.Equal(t, 2, got.CartItems[0].Quantity)
	})

	t.Run("Empty cart is an empty list", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)
		user := &models.User{ID: uuid.New(), SessionID: "guest_10", CartItems: []*models.CartItem{}}

		mockUserService.On("GetUserBySession", mock.Anything, "guest_10").Return(user, nil).Once()

		rr := httptest.NewRecorder()
		userHandler.GetBySession()(rr, testutils.CreateTestRequest(http.MethodGet, "/api/users/session?session_id=guest_10", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"cart_items":[]`)
	})

	t.Run("Missing session_id", func(t *testing.T) {
		userHandler := handlers.NewUserHandler(mocks.NewUserService(t))

		rr := httptest.NewRecorder()
		userHandler.GetBySession()(rr, testutils.CreateTestRequest(http.MethodGet, "/api/users/session", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandler_CRUD(t *testing.T) {
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	t.Run("List", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("ListUsers", mock.Anything).Return([]*models.User{{ID: id}}, nil).Once()

		rr := httptest.NewRecorder()
		userHandler.ListUsers()(rr, testutils.CreateTestRequest(http.MethodGet, "/api/users", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get missing", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("GetUserByID", mock.Anything, id).Return(nil, appErrors.NotFoundError("User not found")).Once()

		rr := httptest.NewRecorder()
		userHandler.GetUser()(rr, testutils.CreateTestRequest(http.MethodGet, "/api/users/"+id.String(), nil, params))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Patch rejects session_id", func(t *testing.T) {
		userHandler := handlers.NewUserHandler(mocks.NewUserService(t))

		rr := httptest.NewRecorder()
		userHandler.UpdateUser()(rr, testutils.CreateTestRequest(http.MethodPatch, "/api/users/"+id.String(), strings.NewReader(`{"session_id":"other"}`), params))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Patch", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)
		name := "Ana"

		mockUserService.On("UpdateUser", mock.Anything, id, &models.UpdateUserRequest{Name: &name}).
			Return(&models.User{ID: id, Name: &name}, nil).Once()

		rr := httptest.NewRecorder()
		userHandler.UpdateUser()(rr, testutils.CreateTestRequest(http.MethodPatch, "/api/users/"+id.String(), strings.NewReader(`{"name":"Ana"}`), params))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockUserService := mocks.NewUserService(t)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("DeleteUser", mock.Anything, id).Return(nil).Once()

		rr := httptest.NewRecorder()
		userHandler.DeleteUser()(rr, testutils.CreateTestRequest(http.MethodDelete, "/api/users/"+id.String(), nil, params))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
