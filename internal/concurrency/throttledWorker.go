package concurrency

import (
	"context"
	"errors"
	"time"
)

// ThrottledWorker runs a job per argument, no faster than one job per interval
type ThrottledWorker struct {
	interval    time.Duration
	jobCallback func(ctx context.Context, arg string) error
}

func NewThrottledWorker(interval time.Duration, jobCallback func(ctx context.Context, arg string) error) ThrottledWorker {
	return ThrottledWorker{interval: interval, jobCallback: jobCallback}
}

// Run returns the joined job errors, stopping early if ctx is cancelled
func (w *ThrottledWorker) Run(ctx context.Context, jobArgs []string) error {

	if len(jobArgs) == 0 {
		return nil
	}

	jobArgsChannel := make(chan string, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	interval := w.interval
	if interval <= 0 {
		interval = time.Nanosecond
	}
	limiter := time.NewTicker(interval)
	defer limiter.Stop()

	var errs []error
	first := true
	for arg := range jobArgsChannel {
		if !first {
			select {
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			case <-limiter.C:
			}
		}
		first = false
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
