package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)
		id := seedAccount(t, db, "alice@example.com")

		created, err := repo.Create(ctx, &model.CreateUserRequest{
			ID:       id,
			Email:    "Alice@Example.com",
			UserType: domainauth.RoleJobSeeker,
			FullName: "Alice Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, domainauth.RoleJobSeeker, created.UserType)
		assert.Equal(t, "alice@example.com", created.Email)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Alice Doe", got.FullName)
	})
}

func TestUserRepo_CreateValidation(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		_, err := repo.Create(context.Background(), &model.CreateUserRequest{
			ID:       "some-id",
			Email:    "x@example.com",
			UserType: "admin",
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestUserRepo_CreateDuplicateEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		first := seedAccount(t, db, "alice@example.com")
		_, err := repo.Create(ctx, &model.CreateUserRequest{
			ID: first, Email: "alice@example.com", UserType: domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)

		second := seedAccount(t, db, "other@example.com")
		_, err = repo.Create(ctx, &model.CreateUserRequest{
			ID: second, Email: "ALICE@example.com", UserType: domainauth.RoleEmployer,
		})
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestUserRepo_GetByIDNotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		_, err := NewUserRepo(db).GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepo_Update(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)
		id := seedUser(t, db, "alice@example.com", domainauth.RoleJobSeeker)

		updated, err := repo.Update(ctx, id, model.UpdateUserRequest{
			FullName: testutil.StringPtr("Alice Q. Doe"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice Q. Doe", updated.FullName)

		// Empty update returns the current row.
		same, err := repo.Update(ctx, id, model.UpdateUserRequest{})
		require.NoError(t, err)
		assert.Equal(t, updated.FullName, same.FullName)
	})
}
