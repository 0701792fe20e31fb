package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=cleaner.go -destination=../mocks/worker/mock_cleaner.go -package=mocks

type retentionRepo interface {
	DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// Cleaner purges terminal-state notifications older than the retention window.
// It only ever touches records the dispatch loop no longer selects, so the two
// loops need no coordination beyond the store itself.
type Cleaner struct {
	repo       retentionRepo
	retention  time.Duration
	batchLimit int
	strategy   retry.Strategy
}

// NewCleaner creates a new retention cleaner.
func NewCleaner(repo retentionRepo, retention time.Duration, batchLimit int, strategy retry.Strategy) *Cleaner {
	return &Cleaner{
		repo:       repo,
		retention:  retention,
		batchLimit: batchLimit,
		strategy:   strategy,
	}
}

// RunOnce deletes one bounded batch of aged terminal records and returns the
// count deleted.
func (c *Cleaner) RunOnce(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-c.retention)

	var deleted int

	err := retry.Do(func() error {
		var err error
		deleted, err = c.repo.DeleteTerminalOlderThan(ctx, cutoff, c.batchLimit)
		return err
	}, c.strategy)
	if err != nil {
		return 0, fmt.Errorf("delete old notifications: %w", err)
	}

	zlog.Logger.Info().Int("deleted", deleted).Msg("cleanup pass finished")

	return deleted, nil
}

// Run invokes RunOnce on every tick until the context is cancelled.
func (c *Cleaner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("cleaner stopped")
			return
		case <-ticker.C:
			if _, err := c.RunOnce(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("cleanup pass failed")
			}
		}
	}
}
