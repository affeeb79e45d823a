package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/goldengigs/goldengigs/internal/data/database"
	"github.com/goldengigs/goldengigs/internal/data/pgxutil"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const jobColumns = "id, employer_id, title, description, requirements, schedule_type, " +
	"location, salary_range, is_remote, status, created_at, expires_at"

const defaultJobsLimit = 50

// JobRepo provides database operations for job listings. Mutations are scoped
// by employer_id so a listing can only be changed by the employer who owns it.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.JobStore = (*JobRepo)(nil)

// NewJobRepo creates a JobRepo with the real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a JobRepo with a custom time provider.
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// Create inserts a new active listing for employerID.
func (r *JobRepo) Create(ctx context.Context, employerID string, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requirements := req.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (
				employer_id, title, description, requirements, schedule_type,
				location, salary_range, is_remote, status, created_at, expires_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+jobColumns,
			employerID,
			strings.TrimSpace(req.Title),
			req.Description,
			requirements,
			req.ScheduleType,
			req.Location,
			req.SalaryRange,
			req.IsRemote,
			model.JobStatusActive,
			r.timeProvider.Now().UTC(),
			req.ExpiresAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a listing by id.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves listings matching the filter options, newest first.
func (r *JobRepo) List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultJobsLimit
	}
	offset := max(opts.Offset, 0)

	query, args := database.BuildListQuery(database.ListQueryOptions{
		Table:      "jobs",
		Columns:    strings.Split(jobColumns, ", "),
		Conditions: buildJobConditions(opts),
		OrderBy:    "created_at",
		OrderDir:   "DESC",
		Limit:      limit,
		Offset:     offset,
	})

	var rowsOut []model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func buildJobConditions(opts model.JobsListOptions) []database.Condition {
	conds := make([]database.Condition, 0, 5)
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		conds = append(conds, database.WhereCond("title", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"))
	}
	if opts.ScheduleType != nil {
		conds = append(conds, database.WhereCond("schedule_type", database.Equal, *opts.ScheduleType))
	}
	if opts.IsRemote != nil {
		conds = append(conds, database.WhereCond("is_remote", database.Equal, *opts.IsRemote))
	}
	if opts.EmployerID != nil {
		conds = append(conds, database.WhereCond("employer_id", database.Equal, *opts.EmployerID))
	}
	if opts.Status != nil {
		conds = append(conds, database.WhereCond("status", database.Equal, *opts.Status))
	}
	return conds
}

// Update edits a listing owned by employerID. Nil request fields are unchanged.
func (r *JobRepo) Update(ctx context.Context, id, employerID string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts, args := buildJobUpdateClause(req)
	if len(setParts) == 0 {
		return r.getOwned(ctx, id, employerID)
	}
	args = append(args, id)
	idIdx := len(args)
	args = append(args, employerID)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d AND employer_id = $%d RETURNING %s",
		strings.Join(setParts, ", "), idIdx, idIdx+1, jobColumns)

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func buildJobUpdateClause(req model.UpdateJobRequest) ([]string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 10)
	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		add("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Requirements != nil {
		add("requirements", *req.Requirements)
	}
	if req.ScheduleType != nil {
		add("schedule_type", *req.ScheduleType)
	}
	if req.Location != nil {
		add("location", *req.Location)
	}
	if req.SalaryRange != nil {
		add("salary_range", *req.SalaryRange)
	}
	if req.IsRemote != nil {
		add("is_remote", *req.IsRemote)
	}
	if req.ExpiresAt != nil {
		add("expires_at", *req.ExpiresAt)
	}
	return setParts, args
}

// UpdateStatus transitions a listing owned by employerID to status.
func (r *JobRepo) UpdateStatus(ctx context.Context, id, employerID string, status model.JobStatus) (*model.Job, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "unknown job status")
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE jobs SET status = $1
			WHERE id = $2 AND employer_id = $3
			RETURNING `+jobColumns,
			status, id, employerID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a listing owned by employerID. Returns false when no such
// listing exists for that employer.
func (r *JobRepo) Delete(ctx context.Context, id, employerID string) (bool, error) {
	var deleted bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx,
			"DELETE FROM jobs WHERE id = $1 AND employer_id = $2", id, employerID)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return deleted, nil
}

// ExpireDue marks active listings whose expires_at has passed as expired and
// returns the number of rows changed. Run periodically by the reaper.
func (r *JobRepo) ExpireDue(ctx context.Context) (int64, error) {
	var expired int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE jobs SET status = $1
			WHERE status = $2 AND expires_at IS NOT NULL AND expires_at <= $3`,
			model.JobStatusExpired, model.JobStatusActive, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		expired = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return expired, nil
}

func (r *JobRepo) getOwned(ctx context.Context, id, employerID string) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+jobColumns+" FROM jobs WHERE id = $1 AND employer_id = $2", id, employerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
