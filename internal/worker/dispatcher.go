// Package worker contains the periodic loops: the dispatch loop that drains due
// notifications and the retention cleaner that purges aged terminal records.
//
// There is no cross-invocation lease: two overlapping dispatch passes may pick
// the same due record. The blast radius is a duplicate delivery attempt, not
// corrupted state — terminal status writes are idempotent and the due-batch
// predicate excludes terminal records going forward.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/model"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

// Result aggregates the outcome of one dispatch pass.
type Result struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type dueBatchRepo interface {
	GetDueBatch(ctx context.Context, now time.Time, limit int) ([]model.Notification, error)
}

type notificationProcessor interface {
	Process(ctx context.Context, n model.Notification) error
}

// Dispatcher pulls bounded batches of due notifications and processes them
// concurrently.
type Dispatcher struct {
	repo       dueBatchRepo
	processor  notificationProcessor
	batchLimit int
	strategy   retry.Strategy
}

// NewDispatcher creates a new dispatch loop.
func NewDispatcher(repo dueBatchRepo, processor notificationProcessor, batchLimit int, strategy retry.Strategy) *Dispatcher {
	return &Dispatcher{
		repo:       repo,
		processor:  processor,
		batchLimit: batchLimit,
		strategy:   strategy,
	}
}

// RunOnce performs a single dispatch pass: select the due batch, fan out
// processing and wait for every item to settle. One item's failure never aborts
// its siblings; failures only show up in the aggregate counts. An error is
// returned only when the batch query itself fails.
func (d *Dispatcher) RunOnce(ctx context.Context) (Result, error) {
	var batch []model.Notification

	err := retry.Do(func() error {
		var err error
		batch, err = d.repo.GetDueBatch(ctx, time.Now(), d.batchLimit)
		return err
	}, d.strategy)
	if err != nil {
		return Result{}, fmt.Errorf("get due notifications: %w", err)
	}

	if len(batch) == 0 {
		zlog.Logger.Debug().Msg("no due notifications")
		return Result{}, nil
	}

	zlog.Logger.Info().Int("count", len(batch)).Msg("processing due notifications")

	errc := make(chan error, len(batch))

	var wg sync.WaitGroup
	for _, n := range batch {
		wg.Add(1)
		go func(n model.Notification) {
			defer wg.Done()
			errc <- d.processor.Process(ctx, n)
		}(n)
	}

	wg.Wait()
	close(errc)

	res := Result{Processed: len(batch)}
	for err := range errc {
		if err != nil {
			res.Failed++
		} else {
			res.Succeeded++
		}
	}

	zlog.Logger.Info().
		Int("processed", res.Processed).
		Int("succeeded", res.Succeeded).
		Int("failed", res.Failed).
		Msg("dispatch pass finished")

	return res, nil
}

// Run invokes RunOnce on every tick until the context is cancelled. Pass-level
// errors are logged and left for the next tick to retry naturally.
func (d *Dispatcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("dispatch pass failed")
			}
		}
	}
}
