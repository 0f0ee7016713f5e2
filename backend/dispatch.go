package backend

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dispatch runs work once per index in [0, global), capped at dev's
// concurrency, standing in for an NDRange kernel launch over a
// one-dimensional global work size. It returns the first error any work
// item returns, after every launched item has finished.
func Dispatch(ctx context.Context, dev Device, global int, work func(ctx context.Context, item int) error) error {
	g, ctx := errgroup.WithContext(ctx)

	limit := dev.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for item := 0; item < global; item++ {
		item := item
		g.Go(func() error {
			return work(ctx, item)
		})
	}

	return g.Wait()
}
