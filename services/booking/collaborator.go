package booking

import (
	"context"
	"time"

	"coden/config"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) callTimeout() time.Duration {
	if s.CallTimeout > 0 {
		return s.CallTimeout
	}
	return config.ProviderTimeout()
}

func (s *DefaultBookingService) retryDelay() time.Duration {
	if s.RetryDelay > 0 {
		return s.RetryDelay
	}
	return config.ProviderRetryDelay()
}

// callCollaborator runs fn with a per-attempt timeout and exactly one
// automatic retry after a fixed backoff. A timeout counts as failure, never
// as success. The backoff honors caller cancellation. Exhausted budgets
// surface as a DependencyError naming the collaborator.
func (s *DefaultBookingService) callCollaborator(ctx context.Context, collaborator string, fn func(context.Context) error) error {
	attempt := func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout())
		defer cancel()
		return fn(callCtx)
	}

	err := attempt()
	if err == nil {
		return nil
	}
	s.Logger.Warn("collaborator call failed, retrying once",
		zap.String("collaborator", collaborator),
		zap.Error(err))

	select {
	case <-ctx.Done():
		return &DependencyError{Collaborator: collaborator, Cause: ctx.Err()}
	case <-time.After(s.retryDelay()):
	}

	if err = attempt(); err != nil {
		s.Logger.Error("collaborator call failed after retry",
			zap.String("collaborator", collaborator),
			zap.Error(err))
		return &DependencyError{Collaborator: collaborator, Cause: err}
	}
	return nil
}
