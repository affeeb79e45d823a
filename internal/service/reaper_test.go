package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldengigs/goldengigs/config"
	"github.com/goldengigs/goldengigs/internal/domain/model"
)

type stubJobStore struct {
	expired atomic.Int64
	sweeps  atomic.Int64
	err     error
}

func (s *stubJobStore) Create(context.Context, string, *model.CreateJobRequest) (*model.Job, error) {
	panic("not used")
}

func (s *stubJobStore) GetByID(context.Context, string) (*model.Job, error) { panic("not used") }

func (s *stubJobStore) List(context.Context, model.JobsListOptions) ([]*model.Job, error) {
	panic("not used")
}

func (s *stubJobStore) Update(context.Context, string, string, model.UpdateJobRequest) (*model.Job, error) {
	panic("not used")
}

func (s *stubJobStore) UpdateStatus(context.Context, string, string, model.JobStatus) (*model.Job, error) {
	panic("not used")
}

func (s *stubJobStore) Delete(context.Context, string, string) (bool, error) { panic("not used") }

func (s *stubJobStore) ExpireDue(context.Context) (int64, error) {
	s.sweeps.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	return s.expired.Load(), nil
}

func TestNewReaperRequiresJobStore(t *testing.T) {
	_, err := NewReaper(ReaperOptions{})
	require.Error(t, err)
}

func TestReaperSweep(t *testing.T) {
	store := &stubJobStore{}
	store.expired.Store(3)

	reaper, err := NewReaper(ReaperOptions{
		Jobs:   store,
		Config: config.ReaperConfig{Interval: time.Minute},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	expired, err := reaper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.Equal(t, int64(1), store.sweeps.Load())
}

func TestReaperRunSweepsAndStops(t *testing.T) {
	store := &stubJobStore{}

	reaper, err := NewReaper(ReaperOptions{
		Jobs:   store,
		Config: config.ReaperConfig{Interval: 10 * time.Millisecond},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reaper.Run(ctx) }()

	require.Eventually(t, func() bool {
		return store.sweeps.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancellation")
	}
}

func TestReaperRunContinuesAfterSweepError(t *testing.T) {
	store := &stubJobStore{err: assert.AnError}

	reaper, err := NewReaper(ReaperOptions{
		Jobs:   store,
		Config: config.ReaperConfig{Interval: 10 * time.Millisecond},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reaper.Run(ctx) }()

	require.Eventually(t, func() bool {
		return store.sweeps.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
