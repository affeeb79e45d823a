package model

import (
	"strings"
	"time"

	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

// JobStatus is the lifecycle state of a listing.
type JobStatus string

const (
	JobStatusActive  JobStatus = "active"
	JobStatusClosed  JobStatus = "closed"
	JobStatusExpired JobStatus = "expired"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusClosed || s == JobStatusExpired
}

// JobLocation describes where a job is performed (stored as JSONB).
type JobLocation struct {
	Type    string `json:"type,omitempty"` // onsite, hybrid, remote
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// SalaryRange is the advertised salary band (stored as JSONB).
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Job is a listing posted by an employer.
type Job struct {
	ID           string      `json:"id" db:"id"`
	EmployerID   string      `json:"employer_id" db:"employer_id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	Requirements []string    `json:"requirements" db:"requirements"`
	ScheduleType string      `json:"schedule_type" db:"schedule_type"`
	Location     JobLocation `json:"location" db:"location"`
	SalaryRange  SalaryRange `json:"salary_range" db:"salary_range"`
	IsRemote     bool        `json:"is_remote" db:"is_remote"`
	Status       JobStatus   `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty" db:"expires_at"`
}

// CreateJobRequest carries the fields for posting a listing.
type CreateJobRequest struct {
	Title        string      `json:"title" validate:"required,max=200"`
	Description  string      `json:"description" validate:"required"`
	Requirements []string    `json:"requirements"`
	ScheduleType string      `json:"schedule_type" validate:"required"`
	Location     JobLocation `json:"location"`
	SalaryRange  SalaryRange `json:"salary_range"`
	IsRemote     bool        `json:"is_remote"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty"`
}

// Validate checks invariants the validator tags cannot express.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationField("title", "title is required")
	}
	if r.SalaryRange.Min < 0 || r.SalaryRange.Max < 0 {
		return apperrors.ValidationField("salary_range", "salary values must be non-negative")
	}
	if r.SalaryRange.Max > 0 && r.SalaryRange.Min > r.SalaryRange.Max {
		return apperrors.ValidationField("salary_range", "salary minimum exceeds maximum")
	}
	return nil
}

// UpdateJobRequest carries optional edit fields. Nil means unchanged.
type UpdateJobRequest struct {
	Title        *string      `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  *string      `json:"description,omitempty"`
	Requirements *[]string    `json:"requirements,omitempty"`
	ScheduleType *string      `json:"schedule_type,omitempty"`
	Location     *JobLocation `json:"location,omitempty"`
	SalaryRange  *SalaryRange `json:"salary_range,omitempty"`
	IsRemote     *bool        `json:"is_remote,omitempty"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
}

// Validate checks invariants across the provided fields.
func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperrors.ValidationField("title", "title cannot be blank")
	}
	if r.SalaryRange != nil {
		if r.SalaryRange.Min < 0 || r.SalaryRange.Max < 0 {
			return apperrors.ValidationField("salary_range", "salary values must be non-negative")
		}
		if r.SalaryRange.Max > 0 && r.SalaryRange.Min > r.SalaryRange.Max {
			return apperrors.ValidationField("salary_range", "salary minimum exceeds maximum")
		}
	}
	return nil
}

// JobsListOptions are the search filters for listing jobs.
type JobsListOptions struct {
	Q            *string // free-text match against title
	ScheduleType *string
	IsRemote     *bool
	EmployerID   *string
	Status       *JobStatus
	Limit        int
	Offset       int
}
