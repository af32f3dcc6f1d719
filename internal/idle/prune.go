package idle

import (
	"context"
	"time"

	"github.com/osse101/Skirmish_Go/internal/logger"
	"github.com/osse101/Skirmish_Go/internal/metrics"
)

// PruneJob deletes daily results older than the retention window. It
// satisfies worker.Job.
type PruneJob struct {
	Pruner    Pruner
	Retention time.Duration
	Now       func() time.Time
}

// NewPruneJob creates a prune job with the given retention window
func NewPruneJob(p Pruner, retention time.Duration) *PruneJob {
	return &PruneJob{Pruner: p, Retention: retention, Now: time.Now}
}

// Process runs one prune pass
func (j *PruneJob) Process(ctx context.Context) error {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	cutoff := now().Add(-j.Retention)
	deleted, err := j.Pruner.PruneBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	metrics.DailyResultsPruned.Add(float64(deleted))
	logger.FromContext(ctx).Info(LogMsgPruneCompleted, "deleted", deleted, "cutoff", cutoff)
	return nil
}
