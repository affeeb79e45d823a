package ports

import (
	"context"

	"github.com/goldengigs/goldengigs/internal/domain/model"
)

// UserStore provides access to the role-tagged users table keyed by principal id.
type UserStore interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserRecord, error)
	GetByID(ctx context.Context, id string) (*model.UserRecord, error)
	Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.UserRecord, error)
}

// ProfileStore provides access to both role-profile tables keyed by principal id.
// Get methods return a NotFound error when the row does not exist, which for job
// seekers is a legitimate "no profile yet" state rather than a failure.
type ProfileStore interface {
	CreateJobSeeker(ctx context.Context, id string, req *model.CreateJobSeekerProfileRequest) (*model.JobSeekerProfile, error)
	CreateEmployerShell(ctx context.Context, id string) (*model.EmployerProfile, error)
	GetJobSeeker(ctx context.Context, id string) (*model.JobSeekerProfile, error)
	GetEmployer(ctx context.Context, id string) (*model.EmployerProfile, error)
	UpdateJobSeeker(ctx context.Context, id string, req model.UpdateJobSeekerProfileRequest) (*model.JobSeekerProfile, error)
	UpdateEmployer(ctx context.Context, id string, req model.UpdateEmployerProfileRequest) (*model.EmployerProfile, error)
}

// JobStore provides access to job listings.
type JobStore interface {
	Create(ctx context.Context, employerID string, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error)
	Update(ctx context.Context, id, employerID string, req model.UpdateJobRequest) (*model.Job, error)
	UpdateStatus(ctx context.Context, id, employerID string, status model.JobStatus) (*model.Job, error)
	Delete(ctx context.Context, id, employerID string) (bool, error)
	// ExpireDue marks active listings past their expiry as expired and returns
	// how many rows changed.
	ExpireDue(ctx context.Context) (int64, error)
}

// ApplicationStore provides access to job applications.
type ApplicationStore interface {
	Submit(ctx context.Context, jobID, userID string) (*model.ApplicationSummary, error)
	Withdraw(ctx context.Context, id, userID string, req model.WithdrawApplicationRequest) (*model.Application, error)
	ListForUser(ctx context.Context, userID string) ([]*model.ApplicationSummary, error)
	ListForEmployer(ctx context.Context, employerID string) ([]*model.ApplicationSummary, error)
}

// BlobStore issues URLs for resume blob upload and download.
type BlobStore interface {
	// PresignResumeUpload returns a time-limited PUT URL and the object key the
	// client should record as its resume location.
	PresignResumeUpload(ctx context.Context, principalID, filename string) (uploadURL, objectKey string, err error)
	// PresignResumeDownload returns a time-limited GET URL for a stored resume.
	PresignResumeDownload(ctx context.Context, objectKey string) (string, error)
}
