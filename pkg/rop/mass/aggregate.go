package mass

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

var errStop = errors.New("mass: aggregation decided")

// All runs producers concurrently, at most core.WorkerLimit at a time, and
// collects their values in producer order. The first non-success cancels the
// ctx handed to the other producers and stops producers that have not started
// yet. The reported non-success is the one that stopped the group, not a
// sibling's reaction to that stop.
func All[T any](ctx context.Context,
	producers ...func(ctx context.Context) rop.Result[T]) <-chan rop.Result[[]T] {

	return resolve(func() rop.Result[[]T] {
		results, ran, decided := race(ctx, func(r rop.Result[T]) bool { return !r.IsSuccess() }, producers)
		if decided >= 0 {
			return rop.Propagate[T, []T](results[decided])
		}

		values := make([]T, 0, len(producers))
		missing := false
		for i, r := range results {
			if !ran[i] {
				missing = true
				continue
			}
			if !r.IsSuccess() {
				return rop.Propagate[T, []T](r)
			}
			values = append(values, r.Result())
		}
		if missing {
			return rop.Failure[[]T](notRun(ctx))
		}
		return rop.Success(values)
	})
}

// Any runs producers concurrently, at most core.WorkerLimit at a time. The
// first success cancels the ctx handed to the others. The result is the
// lowest-index success; without one, the last non-success in producer order
// (a producer skipped by cancellation counts as Failure(ctx.Err())); with no
// producers, an Error with an empty message.
func Any[T any](ctx context.Context,
	producers ...func(ctx context.Context) rop.Result[T]) <-chan rop.Result[T] {

	return resolve(func() rop.Result[T] {
		results, ran, _ := race(ctx, func(r rop.Result[T]) bool { return r.IsSuccess() }, producers)

		last := rop.Error[T]("")
		for i, r := range results {
			if !ran[i] {
				last = rop.Failure[T](notRun(ctx))
				continue
			}
			if r.IsSuccess() {
				return r
			}
			last = r
		}
		return last
	})
}

// race runs producers through an errgroup; decisive results cancel the group.
// decided is the index of the first decisive result, or -1.
func race[T any](ctx context.Context, decisive func(r rop.Result[T]) bool,
	producers []func(ctx context.Context) rop.Result[T]) (results []rop.Result[T], ran []bool, decided int) {

	results = make([]rop.Result[T], len(producers))
	ran = make([]bool, len(producers))
	decided = -1
	var once sync.Once

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(core.WorkerLimit(ctx, len(producers)))

	for i, produce := range producers {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			r := produce(gctx)
			results[i] = r
			ran[i] = true
			if decisive(r) {
				once.Do(func() { decided = i })
				return errStop
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, ran, decided
}

func notRun(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return rop.ErrNoResult
}
