// Package service contains background workers that run alongside the HTTP
// server.
package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/goldengigs/goldengigs/config"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// ReaperOptions groups dependencies for Reaper.
type ReaperOptions struct {
	Jobs   ports.JobStore      // Required: job listing store
	Config config.ReaperConfig // Required: sweep configuration
	Logger *slog.Logger        // Optional: structured logger
}

// Reaper periodically marks active job listings past their expiry date as
// expired so they stop showing up in search results.
type Reaper struct {
	jobs   ports.JobStore
	config config.ReaperConfig
	logger *slog.Logger
}

// NewReaper constructs a new Reaper.
func NewReaper(opts ReaperOptions) (*Reaper, error) {
	if opts.Jobs == nil {
		return nil, errors.New("JobStore is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "reaper")
	}

	return &Reaper{
		jobs:   opts.Jobs,
		config: opts.Config,
		logger: logger,
	}, nil
}

// Run starts the sweep loop and runs until the context is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (r *Reaper) Run(ctx context.Context) error {
	if r.logger != nil {
		r.logger.InfoContext(ctx, "starting reaper", "interval", r.config.Interval)
	}

	// Jitter prevents thundering herd when multiple instances start together
	r.waitWithJitter(ctx)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	r.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			if r.logger != nil {
				r.logger.InfoContext(ctx, "reaper stopping", "reason", ctx.Err())
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// Sweep runs a single expiry pass and returns how many listings changed.
func (r *Reaper) Sweep(ctx context.Context) (int64, error) {
	return r.jobs.ExpireDue(ctx)
}

func (r *Reaper) sweep(ctx context.Context) {
	expired, err := r.Sweep(ctx)
	switch {
	case err == nil:
		if expired > 0 && r.logger != nil {
			r.logger.InfoContext(ctx, "expired job listings", "count", expired)
		}
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		// Shutdown in progress, the outer loop handles it
	default:
		if r.logger != nil {
			r.logger.ErrorContext(ctx, "listing expiry sweep failed", "error", err)
		}
	}
}

// waitWithJitter delays up to 10% of the interval before the first sweep.
func (r *Reaper) waitWithJitter(ctx context.Context) {
	maxJitter := int64(r.config.Interval / 10)
	if maxJitter <= 0 {
		return
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		if r.logger != nil {
			r.logger.WarnContext(ctx, "failed to generate jitter, skipping", "error", err)
		}
		return
	}

	jitterNanos := binary.BigEndian.Uint64(buf[:]) % uint64(maxJitter)
	jitter := time.Duration(int64(jitterNanos)) // #nosec G115 - bounded by maxJitter which is int64

	select {
	case <-time.After(jitter):
	case <-ctx.Done():
	}
}
