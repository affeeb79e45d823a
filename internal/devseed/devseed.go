// Package devseed populates a development database with demo accounts,
// listings, and applications so the API is usable immediately after a fresh
// migration. It is idempotent: when a demo account already exists the dataset
// is assumed seeded and the run is a no-op.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/goldengigs/goldengigs/internal/data"
	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
)

// DemoPassword is the password for every seeded account.
const DemoPassword = "goldengigs-dev"

// Services bundles the stores the seeder writes through.
type Services struct {
	DB           *sql.DB
	Users        *data.UserRepo
	Profiles     *data.ProfileRepo
	Jobs         *data.JobRepo
	Applications *data.ApplicationRepo
}

// NewServices constructs the seeding services for the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:           db,
		Users:        data.NewUserRepo(db),
		Profiles:     data.NewProfileRepo(db),
		Jobs:         data.NewJobRepo(db),
		Applications: data.NewApplicationRepo(db),
	}
}

type seedAccount struct {
	email    string
	fullName string
	role     domainauth.Role
}

var seedAccounts = []seedAccount{
	{email: "employer@goldengigs.dev", fullName: "Harbor Light Staffing", role: domainauth.RoleEmployer},
	{email: "jobseeker@goldengigs.dev", fullName: "Dana Reyes", role: domainauth.RoleJobSeeker},
}

// Run seeds the development dataset.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if svcs.DB == nil {
		return errors.New("database connection is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	ids := make(map[domainauth.Role]string, len(seedAccounts))
	for _, acct := range seedAccounts {
		id, created, err := seedUser(ctx, svcs, acct, string(hash))
		if err != nil {
			return fmt.Errorf("seed account %s: %w", acct.email, err)
		}
		ids[acct.role] = id
		if created {
			logger.Info("seeded demo account", "email", acct.email, "role", acct.role)
		} else {
			logger.Info("demo account already present", "email", acct.email)
			return nil
		}
	}

	jobID, err := seedJobs(ctx, svcs, ids[domainauth.RoleEmployer])
	if err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	if _, err := svcs.Applications.Submit(ctx, jobID, ids[domainauth.RoleJobSeeker]); err != nil {
		return fmt.Errorf("seed application: %w", err)
	}

	logger.Info("development seed complete")
	return nil
}

func seedUser(ctx context.Context, svcs Services, acct seedAccount, passwordHash string) (string, bool, error) {
	var id string
	err := svcs.DB.QueryRowContext(ctx,
		"SELECT id FROM auth_accounts WHERE lower(email) = lower($1)", acct.email,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", false, fmt.Errorf("look up account: %w", err)
	}

	err = svcs.DB.QueryRowContext(ctx, `
		INSERT INTO auth_accounts (email, password_hash, signup_role)
		VALUES ($1, $2, $3)
		RETURNING id`,
		acct.email, passwordHash, acct.role,
	).Scan(&id)
	if err != nil {
		return "", false, fmt.Errorf("insert account: %w", err)
	}

	if _, err := svcs.Users.Create(ctx, &model.CreateUserRequest{
		ID:       id,
		Email:    acct.email,
		UserType: acct.role,
		FullName: acct.fullName,
	}); err != nil {
		return "", false, fmt.Errorf("insert user: %w", err)
	}

	switch acct.role {
	case domainauth.RoleEmployer:
		if _, err := svcs.Profiles.CreateEmployerShell(ctx, id); err != nil {
			return "", false, fmt.Errorf("insert employer profile: %w", err)
		}
		if _, err := svcs.Profiles.UpdateEmployer(ctx, id, model.UpdateEmployerProfileRequest{
			CompanyName: ptr("Harbor Light Staffing"),
			CompanySize: ptr("11-50"),
			Industry:    ptr("Hospitality"),
			Location:    &model.CompanyLocation{City: "Portland", State: "ME"},
		}); err != nil {
			return "", false, fmt.Errorf("update employer profile: %w", err)
		}
	case domainauth.RoleJobSeeker:
		if _, err := svcs.Profiles.CreateJobSeeker(ctx, id, &model.CreateJobSeekerProfileRequest{
			YearsExperience:    4,
			Skills:             []string{"barista", "POS systems", "inventory"},
			PreferredSchedule:  []string{"part_time", "weekends"},
			PreferredLocation:  model.PreferredLocation{City: "Portland", Remote: ptr(true)},
			AvailabilityStatus: "actively_looking",
			Bio:                "Cafe shift lead looking for weekend work.",
		}); err != nil {
			return "", false, fmt.Errorf("insert jobseeker profile: %w", err)
		}
	}

	return id, true, nil
}

func seedJobs(ctx context.Context, svcs Services, employerID string) (string, error) {
	listings := []*model.CreateJobRequest{
		{
			Title:        "Weekend Barista",
			Description:  "Pull espresso and run the register at our waterfront cafe.",
			Requirements: []string{"1+ year cafe experience", "weekend availability"},
			ScheduleType: "part_time",
			Location:     model.JobLocation{Type: "onsite", City: "Portland", State: "ME", Country: "US"},
			SalaryRange:  model.SalaryRange{Min: 18, Max: 22},
		},
		{
			Title:        "Event Setup Crew",
			Description:  "Load in and strike for private events, evenings and weekends.",
			ScheduleType: "gig",
			Location:     model.JobLocation{Type: "onsite", City: "Portland", State: "ME", Country: "US"},
			SalaryRange:  model.SalaryRange{Min: 20, Max: 25},
		},
		{
			Title:        "Remote Booking Coordinator",
			Description:  "Manage vendor schedules and client communication.",
			ScheduleType: "full_time",
			Location:     model.JobLocation{Type: "remote"},
			SalaryRange:  model.SalaryRange{Min: 45000, Max: 55000},
			IsRemote:     true,
		},
	}

	var firstID string
	for _, req := range listings {
		job, err := svcs.Jobs.Create(ctx, employerID, req)
		if err != nil {
			return "", err
		}
		if firstID == "" {
			firstID = job.ID
		}
	}
	return firstID, nil
}

func ptr[T any](v T) *T { return &v }
