package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/ecocollect/waste-service/internal/db/mocks"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/repository/postgresql"
)

func TestUserRepo_Authenticate(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := repository.User{
		ID:       uuid.New(),
		Email:    "resident@example.com",
		Name:     "Resident",
		Password: string(hashed),
		Role:     "resident",
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(stored.Email)).
			DoAndReturn(func(_ context.Context, dest *repository.User, _ string, _ ...interface{}) error {
				*dest = stored
				return nil
			})

		user, err := repo.Authenticate(ctx, stored.Email, "secret")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
		assert.Equal(t, "resident", user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *repository.User, _ string, _ ...interface{}) error {
				*dest = stored
				return nil
			})

		user, err := repo.Authenticate(ctx, stored.Email, "guess")
		assert.ErrorIs(t, err, postgresql.ErrBadCredentials)
		assert.Nil(t, user)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		user, err := repo.Authenticate(ctx, "ghost@example.com", "secret")
		assert.ErrorIs(t, err, postgresql.ErrBadCredentials)
		assert.Nil(t, user)
	})
}

func TestUserRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password before insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hashed, ok := args[3].(string)
				require.True(t, ok)
				assert.NotEqual(t, "secret", hashed)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
				return nil, nil
			})

		err := repo.Create(ctx, "new@example.com", "New", "secret", "resident")
		assert.NoError(t, err)
	})
}

func TestUserRepo_EnsureUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account when the email is free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin@example.com")).
			Return(countRow{count: 0})
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("admin@example.com"), gomock.Eq("Admin"), gomock.Any(), gomock.Eq("admin")).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hashed, ok := args[3].(string)
				require.True(t, ok)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("pass123")))
				return nil, nil
			})

		err := repo.EnsureUser(ctx, "admin@example.com", "Admin", "pass123", "admin")
		assert.NoError(t, err)
	})

	t.Run("leaves an existing account untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin@example.com")).
			Return(countRow{count: 1})

		err := repo.EnsureUser(ctx, "admin@example.com", "Admin", "pass123", "admin")
		assert.NoError(t, err)
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(countRow{err: errors.New("connection reset")})

		err := repo.EnsureUser(ctx, "admin@example.com", "Admin", "pass123", "admin")
		assert.ErrorContains(t, err, "failed to check for existing user")
	})
}
