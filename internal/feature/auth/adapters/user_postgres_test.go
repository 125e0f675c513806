package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockoracle_backend/internal/feature/auth/domain/entity"
	"stockoracle_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError is enabled so duplicate-key detection matches production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &entity.Session{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func testUser(email string) *entity.User {
	return &entity.User{
		PublicID: "pub-" + email,
		Email:    email,
		Name:     "tester",
		Password: "hashed_password",
	}
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := testUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		require.NoError(t, repo.Create(context.Background(), testUser("dup@example.com")))

		dup := testUser("dup@example.com")
		dup.PublicID = "pub-other"
		err := repo.Create(context.Background(), dup)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	created := testUser("find@example.com")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("existing user", func(t *testing.T) {
		got, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "find@example.com", got.Email)
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_SetPremium(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	created := testUser("premium@example.com")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("flag round-trips through the roster", func(t *testing.T) {
		require.NoError(t, repo.SetPremium(context.Background(), created.ID, true))

		// 再ログイン相当: メールアドレスで引き直してフラグを確認
		got, err := repo.FindByEmail(context.Background(), "premium@example.com")
		require.NoError(t, err)
		assert.True(t, got.IsPremium, "premium flag was not persisted")
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		err := repo.SetPremium(context.Background(), 9999, true)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
