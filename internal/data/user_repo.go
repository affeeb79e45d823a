// Package data contains Postgres repositories for the marketplace tables.
// Repositories return errors from the internal/errors taxonomy so callers can
// branch on error codes instead of driver details.
package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/goldengigs/goldengigs/internal/data/pgxutil"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const userColumns = "id, user_type, email, full_name, created_at, updated_at"

// UserRepo provides database operations for the role-tagged users table.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.UserStore = (*UserRepo)(nil)

// NewUserRepo creates a UserRepo with the real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a UserRepo with a custom time provider.
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts the user record for a freshly signed-up principal.
func (r *UserRepo) Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserRecord, error) {
	if req == nil {
		return nil, apperrors.Validation("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.UserRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, user_type, email, full_name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+userColumns,
			req.ID,
			req.UserType,
			strings.ToLower(strings.TrimSpace(req.Email)),
			strings.TrimSpace(req.FullName),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves the user record for a principal id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.UserRecord, error) {
	var out model.UserRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+userColumns+" FROM users WHERE id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Update edits optional user fields. Nil request fields are unchanged.
func (r *UserRepo) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.UserRecord, error) {
	setParts := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if req.FullName != nil {
		args = append(args, strings.TrimSpace(*req.FullName))
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, r.timeProvider.Now().UTC())
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), userColumns)

	var out model.UserRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
