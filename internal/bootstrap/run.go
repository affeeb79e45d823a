package bootstrap

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// RunServicesWithShutdown runs the enabled services until ctx is canceled, a
// service fails, or the process receives SIGINT/SIGTERM, then stops them
// gracefully.
func (c *ServiceContainer) RunServicesWithShutdown(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	if c.Router != nil {
		listenErr := make(chan error, 1)
		c.startHTTPServer(listenErr)
		group.Go(func() error {
			select {
			case err := <-listenErr:
				return err
			case <-groupCtx.Done():
				return nil
			}
		})
	}

	if c.Reaper != nil {
		group.Go(func() error {
			return c.Reaper.Run(groupCtx)
		})
	}

	<-groupCtx.Done()
	c.Logger.Info("shutting down")

	c.shutdownHTTPServer(c.Logger)

	err := group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
