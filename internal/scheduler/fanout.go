package scheduler

import (
	"context"
	"errors"

	"adloom/internal/core/port"
)

// Fanout publishes each event to every child publisher. All children are
// attempted regardless of failures; the joined error is returned for the
// caller to log.
type Fanout []port.EventPublisher

// Publish implements port.EventPublisher.
func (f Fanout) Publish(ctx context.Context, ev port.StatusChange) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
