package checker

import (
	"context"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/metrics"
)

const (
	// MaxBatchSize is the upper bound on names per registrar call.
	MaxBatchSize = 50

	// DefaultBatchDelay is the pause between consecutive batches.
	DefaultBatchDelay = 500 * time.Millisecond
)

// AvailabilityChecker splits candidates into batches and asks a Lookup about
// each batch in turn.
type AvailabilityChecker struct {
	Lookup     Lookup
	BatchSize  int
	BatchDelay time.Duration
	Logger     *logging.Logger

	// Sleep waits between batches; tests replace it to observe pauses.
	Sleep func(ctx context.Context, d time.Duration) error
}

// CheckReport summarizes one CheckAvailability call.
type CheckReport struct {
	Available []string
	Batches   int
	Skipped   int
}

// CheckAvailability returns the available subset of candidates in the order
// the registrar reported them.
func (c *AvailabilityChecker) CheckAvailability(ctx context.Context, candidates []string) ([]string, error) {
	report, err := c.Check(ctx, candidates)
	if err != nil {
		return nil, err
	}
	return report.Available, nil
}

// Check is CheckAvailability with batch accounting.
func (c *AvailabilityChecker) Check(ctx context.Context, candidates []string) (*CheckReport, error) {
	if c == nil || c.Lookup == nil {
		return nil, core.ConfigurationError("check availability", "registrar lookup is not configured", nil)
	}
	if err := c.Lookup.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	batches := partition(candidates, c.batchSize())
	report := &CheckReport{Available: make([]string, 0), Batches: len(batches)}
	provider := c.Lookup.Name()

	for i, batch := range batches {
		if i > 0 {
			if err := c.sleep(ctx, c.batchDelay()); err != nil {
				return nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.debug("Checking batch",
			zap.String("provider", provider),
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("size", len(batch)))

		start := time.Now()
		statuses, err := c.Lookup.CheckBatch(ctx, batch)
		elapsed := time.Since(start)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				metrics.RecordRegistrarBatch(provider, "aborted", elapsed)
				return nil, ctxErr
			}
			if core.IsFatal(err) {
				metrics.RecordRegistrarBatch(provider, "aborted", elapsed)
				return nil, err
			}
			metrics.RecordRegistrarBatch(provider, "skipped", elapsed)
			report.Skipped++
			if c.Logger != nil {
				c.Logger.Warn("Skipping failed batch",
					zap.String("provider", provider),
					zap.Int("batch", i+1),
					zap.Int("size", len(batch)),
					zap.Error(err))
			}
			continue
		}

		metrics.RecordRegistrarBatch(provider, "ok", elapsed)
		found := 0
		for _, status := range statuses {
			if status.Available {
				report.Available = append(report.Available, status.Domain)
				found++
			}
		}

		c.debug("Batch checked",
			zap.String("provider", provider),
			zap.Int("batch", i+1),
			zap.Int("answered", len(statuses)),
			zap.Int("available", found),
			zap.Duration("duration", elapsed))
	}

	return report, nil
}

func (c *AvailabilityChecker) batchSize() int {
	if c.BatchSize <= 0 || c.BatchSize > MaxBatchSize {
		return MaxBatchSize
	}
	return c.BatchSize
}

func (c *AvailabilityChecker) batchDelay() time.Duration {
	if c.BatchDelay < 0 {
		return 0
	}
	if c.BatchDelay == 0 {
		return DefaultBatchDelay
	}
	return c.BatchDelay
}

func (c *AvailabilityChecker) sleep(ctx context.Context, d time.Duration) error {
	if c.Sleep != nil {
		return c.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func (c *AvailabilityChecker) debug(msg string, fields ...zap.Field) {
	if c.Logger != nil {
		c.Logger.Debug(msg, fields...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func partition(items []string, size int) [][]string {
	if len(items) == 0 {
		return nil
	}
	batches := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
