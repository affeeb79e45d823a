package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
)

func TestNewJobSeekerRoleProfile(t *testing.T) {
	p := &JobSeekerProfile{ID: "user-1", Bio: "ten years of plumbing"}
	rp := NewJobSeekerRoleProfile(p)
	assert.Equal(t, domainauth.RoleJobSeeker, rp.Type)
	assert.Same(t, p, rp.JobSeeker)
	assert.Nil(t, rp.Employer)
	assert.Equal(t, "user-1", rp.ProfileID())
}

func TestNewEmployerRoleProfile(t *testing.T) {
	p := &EmployerProfile{ID: "user-2", CompanyName: "Acme"}
	rp := NewEmployerRoleProfile(p)
	assert.Equal(t, domainauth.RoleEmployer, rp.Type)
	assert.Same(t, p, rp.Employer)
	assert.Nil(t, rp.JobSeeker)
	assert.Equal(t, "user-2", rp.ProfileID())
}

func TestRoleProfile_NilHandling(t *testing.T) {
	assert.Nil(t, NewJobSeekerRoleProfile(nil))
	assert.Nil(t, NewEmployerRoleProfile(nil))

	var rp *RoleProfile
	assert.Equal(t, "", rp.ProfileID())
	assert.Equal(t, "", (&RoleProfile{}).ProfileID())
}
