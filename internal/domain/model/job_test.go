package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

func TestCreateJobRequest_Validate(t *testing.T) {
	valid := CreateJobRequest{
		Title:        "Senior Plumber",
		Description:  "Fix pipes",
		ScheduleType: "full_time",
		SalaryRange:  SalaryRange{Min: 50000, Max: 80000},
	}

	tests := []struct {
		name      string
		mutate    func(*CreateJobRequest)
		wantField string
	}{
		{"valid", func(*CreateJobRequest) {}, ""},
		{"blank title", func(r *CreateJobRequest) { r.Title = "  " }, "title"},
		{"negative salary", func(r *CreateJobRequest) { r.SalaryRange.Min = -1 }, "salary_range"},
		{"inverted range", func(r *CreateJobRequest) { r.SalaryRange = SalaryRange{Min: 90000, Max: 50000} }, "salary_range"},
		{"open-ended max", func(r *CreateJobRequest) { r.SalaryRange = SalaryRange{Min: 50000, Max: 0} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantField, apperrors.GetField(err))
		})
	}
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	blank := "  "
	bad := SalaryRange{Min: 10, Max: 5}

	assert.NoError(t, (&UpdateJobRequest{}).Validate())
	assert.Error(t, (&UpdateJobRequest{Title: &blank}).Validate())
	assert.Error(t, (&UpdateJobRequest{SalaryRange: &bad}).Validate())
}

func TestJobStatus_Valid(t *testing.T) {
	assert.True(t, JobStatusActive.Valid())
	assert.True(t, JobStatusClosed.Valid())
	assert.True(t, JobStatusExpired.Valid())
	assert.False(t, JobStatus("archived").Valid())
}

func TestApplicationStatus_Valid(t *testing.T) {
	assert.True(t, ApplicationStatusPending.Valid())
	assert.True(t, ApplicationStatusWithdrawn.Valid())
	assert.False(t, ApplicationStatus("ghosted").Valid())
}
