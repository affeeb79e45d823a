package model

import (
	"time"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
)

// PreferredLocation is the job seeker's desired work location (stored as JSONB).
type PreferredLocation struct {
	City   string `json:"city"`
	Remote *bool  `json:"remote,omitempty"`
}

// CompanyLocation is the employer's company location (stored as JSONB).
type CompanyLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// JobSeekerProfile is the job seeker variant of the role profile, keyed by
// principal id. The row may legitimately not exist yet: profile creation is
// deferred to an explicit step after sign-up.
type JobSeekerProfile struct {
	ID                 string            `json:"id" db:"id"`
	YearsExperience    int               `json:"years_experience" db:"years_experience"`
	Skills             []string          `json:"skills" db:"skills"`
	PreferredSchedule  []string          `json:"preferred_schedule" db:"preferred_schedule"`
	PreferredLocation  PreferredLocation `json:"preferred_location" db:"preferred_location"`
	ResumeURL          *string           `json:"resume_url,omitempty" db:"resume_url"`
	AvailabilityStatus string            `json:"availability_status" db:"availability_status"`
	Bio                string            `json:"bio" db:"bio"`
	UpdatedAt          time.Time         `json:"updated_at" db:"updated_at"`
}

// EmployerProfile is the employer variant of the role profile, keyed by
// principal id. Created as an empty shell at sign-up.
type EmployerProfile struct {
	ID          string          `json:"id" db:"id"`
	CompanyName string          `json:"company_name" db:"company_name"`
	CompanySize string          `json:"company_size" db:"company_size"`
	Industry    string          `json:"industry" db:"industry"`
	Location    CompanyLocation `json:"location" db:"location"`
	Website     string          `json:"website" db:"website"`
	Verified    bool            `json:"verified" db:"verified"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// RoleProfile is the tagged union of role-specific profiles, discriminated by
// the user's role. Exactly one variant is set when present; both nil means the
// profile row does not exist yet (valid for job seekers who deferred creation).
type RoleProfile struct {
	Type      domainauth.Role   `json:"type"`
	JobSeeker *JobSeekerProfile `json:"jobseeker,omitempty"`
	Employer  *EmployerProfile  `json:"employer,omitempty"`
}

// NewJobSeekerRoleProfile wraps a job seeker profile in the union.
func NewJobSeekerRoleProfile(p *JobSeekerProfile) *RoleProfile {
	if p == nil {
		return nil
	}
	return &RoleProfile{Type: domainauth.RoleJobSeeker, JobSeeker: p}
}

// NewEmployerRoleProfile wraps an employer profile in the union.
func NewEmployerRoleProfile(p *EmployerProfile) *RoleProfile {
	if p == nil {
		return nil
	}
	return &RoleProfile{Type: domainauth.RoleEmployer, Employer: p}
}

// ProfileID returns the keyed principal id of whichever variant is set.
func (p *RoleProfile) ProfileID() string {
	switch {
	case p == nil:
		return ""
	case p.JobSeeker != nil:
		return p.JobSeeker.ID
	case p.Employer != nil:
		return p.Employer.ID
	default:
		return ""
	}
}

// CreateJobSeekerProfileRequest carries the fields for deferred job-seeker
// profile creation. Zero values are stored as-is; the row is the source of truth.
type CreateJobSeekerProfileRequest struct {
	YearsExperience    int               `json:"years_experience" validate:"gte=0,lte=80"`
	Skills             []string          `json:"skills"`
	PreferredSchedule  []string          `json:"preferred_schedule"`
	PreferredLocation  PreferredLocation `json:"preferred_location"`
	AvailabilityStatus string            `json:"availability_status"`
	Bio                string            `json:"bio" validate:"max=4000"`
}

// UpdateJobSeekerProfileRequest carries optional edit fields. Nil means unchanged.
type UpdateJobSeekerProfileRequest struct {
	YearsExperience    *int               `json:"years_experience,omitempty" validate:"omitempty,gte=0,lte=80"`
	Skills             *[]string          `json:"skills,omitempty"`
	PreferredSchedule  *[]string          `json:"preferred_schedule,omitempty"`
	PreferredLocation  *PreferredLocation `json:"preferred_location,omitempty"`
	ResumeURL          *string            `json:"resume_url,omitempty"`
	AvailabilityStatus *string            `json:"availability_status,omitempty"`
	Bio                *string            `json:"bio,omitempty" validate:"omitempty,max=4000"`
}

// UpdateEmployerProfileRequest carries optional edit fields. Nil means unchanged.
type UpdateEmployerProfileRequest struct {
	CompanyName *string          `json:"company_name,omitempty" validate:"omitempty,max=200"`
	CompanySize *string          `json:"company_size,omitempty"`
	Industry    *string          `json:"industry,omitempty"`
	Location    *CompanyLocation `json:"location,omitempty"`
	Website     *string          `json:"website,omitempty" validate:"omitempty,url"`
}
