package covertree

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// FindNearestBatch answers many queries concurrently. Queries perform no
// writes, so fanning them out is safe as long as no Insert runs until the
// call returns.
//
// Results are positionally aligned with queries. An empty tree fails the
// whole batch with ErrEmptyTree. Context cancellation stops scheduling of
// remaining queries and returns the context error.
func (t *Tree[T]) FindNearestBatch(ctx context.Context, queries []T) ([]T, error) {
	start := time.Now()

	if t.root == nil {
		t.metrics.RecordBatchSearch(len(queries), time.Since(start), ErrEmptyTree)
		t.logger.LogBatchSearch(len(queries), ErrEmptyTree)
		return nil, ErrEmptyTree
	}

	results := make([]T, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = t.findNearest(t.root, q, t.root.data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.metrics.RecordBatchSearch(len(queries), time.Since(start), err)
		t.logger.LogBatchSearch(len(queries), err)
		return nil, err
	}

	t.metrics.RecordBatchSearch(len(queries), time.Since(start), nil)
	t.logger.LogBatchSearch(len(queries), nil)
	return results, nil
}
