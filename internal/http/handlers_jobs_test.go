package httpx

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

func TestCreateJob(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("poster@example.test", domainauth.RoleEmployer)

	s.jobs.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, employerID string, req *model.CreateJobRequest) (*model.Job, error) {
			assert.NotEmpty(t, employerID)
			assert.Equal(t, "Night Barista", req.Title)
			return &model.Job{ID: "job-1", EmployerID: employerID, Title: req.Title, Status: model.JobStatusActive}, nil
		})

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/jobs",
		cookie: cookie,
		body: map[string]any{
			"title":         "Night Barista",
			"description":   "Espresso after dark.",
			"schedule_type": "part_time",
			"salary_range":  map[string]int{"min": 30000, "max": 40000},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "job-1", decodeBody(t, w)["id"])
}

func TestCreateJobInvalidSalary(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("poster2@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/jobs",
		cookie: cookie,
		body: map[string]any{
			"title":         "Broken",
			"description":   "x",
			"schedule_type": "full_time",
			"salary_range":  map[string]int{"min": 50000, "max": 40000},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation", body["error"])
	assert.Equal(t, "salary_range", body["field"])
}

func TestGetJobIsPublic(t *testing.T) {
	s := newTestServer(t)

	s.jobs.EXPECT().
		GetByID(gomock.Any(), "job-7").
		Return(&model.Job{ID: "job-7", Title: "Dishwasher"}, nil)

	w := s.do(request{method: http.MethodGet, path: "/api/jobs/job-7"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dishwasher", decodeBody(t, w)["title"])
}

func TestGetJobNotFound(t *testing.T) {
	s := newTestServer(t)

	s.jobs.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.NotFound("job not found"))

	w := s.do(request{method: http.MethodGet, path: "/api/jobs/missing"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["error"])
}

func TestListJobsParsesFilters(t *testing.T) {
	s := newTestServer(t)

	s.jobs.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
			require.NotNil(t, opts.Q)
			assert.Equal(t, "barista", *opts.Q)
			require.NotNil(t, opts.ScheduleType)
			assert.Equal(t, "part_time", *opts.ScheduleType)
			require.NotNil(t, opts.IsRemote)
			assert.False(t, *opts.IsRemote)
			require.NotNil(t, opts.Status)
			assert.Equal(t, model.JobStatusActive, *opts.Status)
			assert.Equal(t, 10, opts.Limit)
			assert.Equal(t, 20, opts.Offset)
			return []*model.Job{{ID: "job-1"}}, nil
		})

	w := s.do(request{
		method: http.MethodGet,
		path:   "/api/jobs?q=barista&schedule_type=part_time&remote=false&status=active&limit=10&offset=20",
	})

	require.Equal(t, http.StatusOK, w.Code)
	jobs, ok := decodeBody(t, w)["jobs"].([]any)
	require.True(t, ok)
	assert.Len(t, jobs, 1)
}

func TestListJobsIgnoresBadFilterValues(t *testing.T) {
	s := newTestServer(t)

	s.jobs.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
			assert.Nil(t, opts.IsRemote)
			assert.Nil(t, opts.Status)
			assert.Zero(t, opts.Limit)
			return nil, nil
		})

	w := s.do(request{method: http.MethodGet, path: "/api/jobs?remote=maybe&status=bogus&limit=-5"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateJobOwnerScoped(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("owner@example.test", domainauth.RoleEmployer)

	s.jobs.EXPECT().
		Update(gomock.Any(), "job-9", gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NotFound("job not found"))

	title := "New Title"
	w := s.do(request{
		method: http.MethodPatch,
		path:   "/api/jobs/job-9",
		cookie: cookie,
		body:   map[string]any{"title": title},
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateJobStatus(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("closer@example.test", domainauth.RoleEmployer)

	s.jobs.EXPECT().
		UpdateStatus(gomock.Any(), "job-2", gomock.Any(), model.JobStatusClosed).
		Return(&model.Job{ID: "job-2", Status: model.JobStatusClosed}, nil)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/jobs/job-2/status",
		cookie: cookie,
		body:   map[string]string{"status": "closed"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "closed", decodeBody(t, w)["status"])
}

func TestUpdateJobStatusRejectsUnknown(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("closer2@example.test", domainauth.RoleEmployer)

	w := s.do(request{
		method: http.MethodPost,
		path:   "/api/jobs/job-2/status",
		cookie: cookie,
		body:   map[string]string{"status": "archived"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteJob(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("deleter@example.test", domainauth.RoleEmployer)

	s.jobs.EXPECT().Delete(gomock.Any(), "job-3", gomock.Any()).Return(true, nil)
	w := s.do(request{method: http.MethodDelete, path: "/api/jobs/job-3", cookie: cookie})
	require.Equal(t, http.StatusNoContent, w.Code)

	s.jobs.EXPECT().Delete(gomock.Any(), "job-3", gomock.Any()).Return(false, nil)
	w = s.do(request{method: http.MethodDelete, path: "/api/jobs/job-3", cookie: cookie})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMineScopesToCaller(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("mine@example.test", domainauth.RoleEmployer)

	s.jobs.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
			require.NotNil(t, opts.EmployerID)
			assert.NotEmpty(t, *opts.EmployerID)
			return []*model.Job{}, nil
		})

	w := s.do(request{method: http.MethodGet, path: "/api/employer/jobs?status=closed", cookie: cookie})
	require.Equal(t, http.StatusOK, w.Code)
}
