package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/goldengigs/goldengigs/internal/data/pgxutil"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const applicationColumns = "id, job_id, user_id, status, withdrawn_at, withdrawal_reason, created_at"

// applicationSummarySelect joins an application with listing context. The
// applicant_name column is filled by the caller-facing variants below.
const applicationSummarySelect = `
	SELECT a.id, a.job_id, a.user_id, a.status, a.withdrawn_at, a.withdrawal_reason, a.created_at,
	       j.title AS job_title,
	       COALESCE(ep.company_name, '') AS company_name,
	       COALESCE(u.full_name, '') AS applicant_name
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	LEFT JOIN employer_profiles ep ON ep.id = j.employer_id
	JOIN users u ON u.id = a.user_id`

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.ApplicationStore = (*ApplicationRepo)(nil)

// NewApplicationRepo creates an ApplicationRepo with the real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates an ApplicationRepo with a custom
// time provider.
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

// Submit records an application by userID against jobID. The listing must be
// active; a second application to the same listing maps to a Conflict error
// via the (job_id, user_id) unique constraint.
func (r *ApplicationRepo) Submit(ctx context.Context, jobID, userID string) (*model.ApplicationSummary, error) {
	var out model.ApplicationSummary
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var status model.JobStatus
		if err := tx.QueryRow(ctx,
			"SELECT status FROM jobs WHERE id = $1", jobID,
		).Scan(&status); err != nil {
			return err
		}
		if status != model.JobStatusActive {
			return apperrors.Conflict("listing is no longer accepting applications")
		}

		var applicationID string
		if err := tx.QueryRow(ctx, `
			INSERT INTO applications (job_id, user_id, status, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			jobID, userID, model.ApplicationStatusPending, r.timeProvider.Now().UTC(),
		).Scan(&applicationID); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, applicationSummarySelect+" WHERE a.id = $1", applicationID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ApplicationSummary])
		return err
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Withdraw transitions the caller's application to withdrawn. Withdrawing an
// already-withdrawn application is a Conflict; an application owned by someone
// else is NotFound.
func (r *ApplicationRepo) Withdraw(ctx context.Context, id, userID string, req model.WithdrawApplicationRequest) (*model.Application, error) {
	var out model.Application
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var status model.ApplicationStatus
		if err := tx.QueryRow(ctx,
			"SELECT status FROM applications WHERE id = $1 AND user_id = $2", id, userID,
		).Scan(&status); err != nil {
			return err
		}
		if status == model.ApplicationStatusWithdrawn {
			return apperrors.Conflict("application is already withdrawn")
		}

		rows, err := tx.Query(ctx, `
			UPDATE applications
			SET status = $1, withdrawn_at = $2, withdrawal_reason = $3
			WHERE id = $4 AND user_id = $5
			RETURNING `+applicationColumns,
			model.ApplicationStatusWithdrawn,
			r.timeProvider.Now().UTC(),
			req.Reason,
			id, userID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListForUser retrieves the job seeker's applications, newest first.
func (r *ApplicationRepo) ListForUser(ctx context.Context, userID string) ([]*model.ApplicationSummary, error) {
	return r.listSummaries(ctx, applicationSummarySelect+
		" WHERE a.user_id = $1 ORDER BY a.created_at DESC", userID)
}

// ListForEmployer retrieves every application against this employer's
// listings, newest first.
func (r *ApplicationRepo) ListForEmployer(ctx context.Context, employerID string) ([]*model.ApplicationSummary, error) {
	return r.listSummaries(ctx, applicationSummarySelect+
		" WHERE j.employer_id = $1 ORDER BY a.created_at DESC", employerID)
}

func (r *ApplicationRepo) listSummaries(ctx context.Context, query string, args ...any) ([]*model.ApplicationSummary, error) {
	var rowsOut []model.ApplicationSummary
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ApplicationSummary])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.ApplicationSummary, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
