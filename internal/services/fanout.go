package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites bounds the number of in-flight record store writes per call.
const maxConcurrentWrites = 8

// fanOut runs fn for every item and waits for all of them.
// A failure never cancels the others; errs[i] holds the result for items[i].
func fanOut[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error) []error {
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(maxConcurrentWrites)
	for i, item := range items {
		g.Go(func() error {
			errs[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
