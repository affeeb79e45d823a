package model

import "time"

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// Application is a job seeker's submission against a listing.
type Application struct {
	ID               string            `json:"id" db:"id"`
	JobID            string            `json:"job_id" db:"job_id"`
	UserID           string            `json:"user_id" db:"user_id"`
	Status           ApplicationStatus `json:"status" db:"status"`
	WithdrawnAt      *time.Time        `json:"withdrawn_at,omitempty" db:"withdrawn_at"`
	WithdrawalReason *string           `json:"withdrawal_reason,omitempty" db:"withdrawal_reason"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
}

// ApplicationSummary is an application joined with listing context for display.
type ApplicationSummary struct {
	Application
	JobTitle      string `json:"job_title" db:"job_title"`
	CompanyName   string `json:"company_name" db:"company_name"`
	ApplicantName string `json:"applicant_name,omitempty" db:"applicant_name"`
}

// WithdrawApplicationRequest carries the optional reason for a withdrawal.
type WithdrawApplicationRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}
