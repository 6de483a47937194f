package srv

import (
	"context"
	"sync"

	"github.com/sandevgo/roster/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run tracks the services launched by StartServices.
type Run struct {
	mu  sync.Mutex
	err error
}

// Err returns the first error a service stopped with while the run was live.
// Errors returned after the context was cancelled are not recorded.
func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Run) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

// StartServices runs every service in its own goroutine.
// The first service whose Start returns ends the run by calling stop,
// so end of input on the console shuts the whole process down.
func StartServices(ctx context.Context, stop context.CancelFunc, services []Service) *Run {
	logger := log.FromCtx(ctx)
	run := &Run{}
	for _, service := range services {
		go func(service Service) {
			defer stop()
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T stopped with error", service)
				run.fail(err)
				return
			}
			logger.Debug().Msgf("%T finished", service)
		}(service)
	}
	return run
}

// ShutdownServices waits for ctx to end, then shuts services down in reverse start order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		service := services[i]
		if err := service.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
