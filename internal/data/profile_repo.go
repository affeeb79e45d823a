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

const (
	jobSeekerColumns = "id, years_experience, skills, preferred_schedule, preferred_location, " +
		"resume_url, availability_status, bio, updated_at"
	employerColumns = "id, company_name, company_size, industry, location, website, verified, updated_at"
)

// ProfileRepo provides database operations for both role-profile tables.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.ProfileStore = (*ProfileRepo)(nil)

// NewProfileRepo creates a ProfileRepo with the real time provider.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProfileRepoWithTimeProvider creates a ProfileRepo with a custom time provider.
func NewProfileRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: tp}
}

// CreateJobSeeker inserts the job seeker profile row for a principal. An
// existing row maps to a Conflict error via the unique primary key.
func (r *ProfileRepo) CreateJobSeeker(ctx context.Context, id string, req *model.CreateJobSeekerProfileRequest) (*model.JobSeekerProfile, error) {
	if req == nil {
		return nil, apperrors.Validation("create profile request is required")
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	schedule := req.PreferredSchedule
	if schedule == nil {
		schedule = []string{}
	}

	var out model.JobSeekerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobseeker_profiles (
				id, years_experience, skills, preferred_schedule, preferred_location,
				availability_status, bio, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+jobSeekerColumns,
			id,
			req.YearsExperience,
			skills,
			schedule,
			req.PreferredLocation,
			req.AvailabilityStatus,
			req.Bio,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobSeekerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// CreateEmployerShell inserts an empty employer profile row at sign-up; the
// company details arrive through later updates.
func (r *ProfileRepo) CreateEmployerShell(ctx context.Context, id string) (*model.EmployerProfile, error) {
	var out model.EmployerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO employer_profiles (id, updated_at)
			VALUES ($1, $2)
			RETURNING `+employerColumns,
			id, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EmployerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetJobSeeker retrieves the job seeker profile for a principal id. A NotFound
// result is a legitimate "no profile yet" state for this table.
func (r *ProfileRepo) GetJobSeeker(ctx context.Context, id string) (*model.JobSeekerProfile, error) {
	var out model.JobSeekerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+jobSeekerColumns+" FROM jobseeker_profiles WHERE id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobSeekerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetEmployer retrieves the employer profile for a principal id.
func (r *ProfileRepo) GetEmployer(ctx context.Context, id string) (*model.EmployerProfile, error) {
	var out model.EmployerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+employerColumns+" FROM employer_profiles WHERE id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EmployerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// UpdateJobSeeker edits optional job seeker fields. Nil request fields are
// unchanged.
func (r *ProfileRepo) UpdateJobSeeker(ctx context.Context, id string, req model.UpdateJobSeekerProfileRequest) (*model.JobSeekerProfile, error) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.YearsExperience != nil {
		add("years_experience", *req.YearsExperience)
	}
	if req.Skills != nil {
		add("skills", *req.Skills)
	}
	if req.PreferredSchedule != nil {
		add("preferred_schedule", *req.PreferredSchedule)
	}
	if req.PreferredLocation != nil {
		add("preferred_location", *req.PreferredLocation)
	}
	if req.ResumeURL != nil {
		add("resume_url", *req.ResumeURL)
	}
	if req.AvailabilityStatus != nil {
		add("availability_status", *req.AvailabilityStatus)
	}
	if req.Bio != nil {
		add("bio", *req.Bio)
	}
	if len(setParts) == 0 {
		return r.GetJobSeeker(ctx, id)
	}
	add("updated_at", r.timeProvider.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE jobseeker_profiles SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), jobSeekerColumns)

	var out model.JobSeekerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobSeekerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// UpdateEmployer edits optional employer fields. Nil request fields are
// unchanged. Verified is deliberately not settable through this path.
func (r *ProfileRepo) UpdateEmployer(ctx context.Context, id string, req model.UpdateEmployerProfileRequest) (*model.EmployerProfile, error) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.CompanyName != nil {
		add("company_name", strings.TrimSpace(*req.CompanyName))
	}
	if req.CompanySize != nil {
		add("company_size", *req.CompanySize)
	}
	if req.Industry != nil {
		add("industry", *req.Industry)
	}
	if req.Location != nil {
		add("location", *req.Location)
	}
	if req.Website != nil {
		add("website", strings.TrimSpace(*req.Website))
	}
	if len(setParts) == 0 {
		return r.GetEmployer(ctx, id)
	}
	add("updated_at", r.timeProvider.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE employer_profiles SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), employerColumns)

	var out model.EmployerProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EmployerProfile])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
