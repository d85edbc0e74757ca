package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return db, mock
}

var userCols = []string{"id", "session_id", "name", "email", "phone", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

func TestUserRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("CreateUser", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)

		user := &models.User{SessionID: "session_abc", Name: strPtr("Ana")}
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (session_id, name, email, phone)")).
			WithArgs(user.SessionID, user.Name, user.Email, user.Phone).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

		require.NoError(t, repo.CreateUser(ctx, user))
		assert.Equal(t, id, user.ID)
		assert.WithinDuration(t, now, user.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser duplicate session surfaces driver error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		dbErr := errors.New("duplicate key value violates unique constraint")

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(dbErr)

		err := repo.CreateUser(ctx, &models.User{SessionID: "taken"})

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUserIfAbsent inserted", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (session_id) DO NOTHING")).
			WithArgs("guest_1").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "guest_1", nil, nil, nil, now, now))

		user, err := repo.CreateUserIfAbsent(ctx, "guest_1")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "guest_1", user.SessionID)
		assert.Nil(t, user.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUserIfAbsent lost race", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (session_id) DO NOTHING")).
			WithArgs("guest_1").
			WillReturnRows(sqlmock.NewRows(userCols))

		user, err := repo.CreateUserIfAbsent(ctx, "guest_1")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("GetUserBySessionID", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE session_id = $1")).
			WithArgs("user_ana").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "user_ana", "Ana", "ana@example.com", nil, now, now))

		user, err := repo.GetUserBySessionID(ctx, "user_ana")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		require.NotNil(t, user.Email)
		assert.Equal(t, "ana@example.com", *user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, id)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("ListUsers", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at DESC")).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(uuid.NewString(), "b", nil, nil, nil, now, now).
				AddRow(uuid.NewString(), "a", nil, nil, nil, now.Add(-time.Hour), now))

		users, err := repo.ListUsers(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "b", users[0].SessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListUsers empty returns empty slice", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnRows(sqlmock.NewRows(userCols))

		users, err := repo.ListUsers(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("ListUsers row error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		rowErr := errors.New("network blip")

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(uuid.NewString(), "a", nil, nil, nil, time.Now(), time.Now()).
				RowError(0, rowErr))

		users, err := repo.ListUsers(ctx)

		assert.Nil(t, users)
		assert.ErrorIs(t, err, rowErr)
	})

	t.Run("UpdateUser", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		user := &models.User{ID: uuid.New(), Name: strPtr("Ana"), Phone: strPtr("+593 99")}
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET name = $1, email = $2, phone = $3")).
			WithArgs(user.Name, user.Email, user.Phone, user.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateUser(ctx, user))
		assert.WithinDuration(t, now, user.UpdatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteUser", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteUser(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteUser missing row", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteUser(ctx, id), sql.ErrNoRows)
	})

	t.Run("ListCartItemsByUsers", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)
		ana, guest := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items WHERE user_id = ANY($1::uuid[])")).
			WithArgs(pq.StringArray{ana.String(), guest.String()}).
			WillReturnRows(sqlmock.NewRows(cartItemCols).
				AddRow(uuid.NewString(), ana.String(), uuid.NewString(), 2, 3.25, now, now).
				AddRow(uuid.NewString(), guest.String(), uuid.NewString(), 1, 4.5, now, now))

		items, err := repo.ListCartItemsByUsers(ctx, []uuid.UUID{ana, guest})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, ana, items[0].UserID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, guest, items[1].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListCartItemsByUsers without users skips the query", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewUserRepo(db)

		items, err := repo.ListCartItemsByUsers(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
