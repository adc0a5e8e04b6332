package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkerLimit bounds how many producers concurrent aggregations run at once.
func WithWorkerLimit(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// WorkerLimit returns the limit stored in ctx. Missing or non-positive limits
// fall back to defaultMaxWorkers, which itself is raised to at least 1.
func WorkerLimit(ctx context.Context, defaultMaxWorkers int) int {
	if defaultMaxWorkers < 1 {
		defaultMaxWorkers = 1
	}
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
