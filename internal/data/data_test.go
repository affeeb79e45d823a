package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
)

// seedAccount inserts an auth account row and returns its id. The users table
// references auth_accounts, so every repo test starts here.
func seedAccount(t *testing.T, db *sql.DB, email string) string {
	t.Helper()
	var id string
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO auth_accounts (email, password_hash, signup_role)
		VALUES ($1, 'x', 'jobseeker')
		RETURNING id`, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// seedUser inserts an account plus its user record and returns the shared id.
func seedUser(t *testing.T, db *sql.DB, email string, role domainauth.Role) string {
	t.Helper()
	id := seedAccount(t, db, email)
	_, err := NewUserRepo(db).Create(context.Background(), &model.CreateUserRequest{
		ID:       id,
		Email:    email,
		UserType: role,
	})
	require.NoError(t, err)
	return id
}

// seedEmployer builds an employer user with its profile shell and returns the id.
func seedEmployer(t *testing.T, db *sql.DB, email string) string {
	t.Helper()
	id := seedUser(t, db, email, domainauth.RoleEmployer)
	_, err := NewProfileRepo(db).CreateEmployerShell(context.Background(), id)
	require.NoError(t, err)
	return id
}
