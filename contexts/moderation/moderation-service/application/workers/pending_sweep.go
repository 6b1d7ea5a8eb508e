package workers

import (
	"context"
	"log/slog"
	"sync"

	application "adx402/contexts/moderation/moderation-service/application"
	"adx402/contexts/moderation/moderation-service/application/commands"
)

// PendingSweepJob is the cron entrypoint for the moderation sweep. A sweep
// still running when the next tick fires makes the new tick a no-op instead
// of stacking concurrent sweeps.
type PendingSweepJob struct {
	Review    commands.ReviewPendingUseCase
	BatchSize int
	Logger    *slog.Logger

	mu sync.Mutex
}

func (j *PendingSweepJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)

	if !j.mu.TryLock() {
		logger.Warn("moderation sweep skipped, previous run still active",
			"event", "moderation_sweep_skipped",
			"module", "moderation/moderation-service",
			"layer", "worker",
		)
		return nil
	}
	defer j.mu.Unlock()

	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}
	if _, err := j.Review.Execute(ctx, limit); err != nil {
		logger.Error("moderation sweep cycle failed",
			"event", "moderation_sweep_cycle_failed",
			"module", "moderation/moderation-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	return nil
}
