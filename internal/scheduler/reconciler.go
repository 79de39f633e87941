// Package scheduler runs the periodic rating reconcile sweep. Stored
// aggregates are derived data; the sweep recomputes them from the
// rating rows so manual edits or interrupted writers cannot leave them
// drifted for long.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/storage"
)

type Reconciler struct {
	cron       *cron.Cron
	ratingRepo *storage.RatingRepository
	logger     *zap.Logger
	schedule   string
}

func NewReconciler(cfg config.ReconcileConfig, ratingRepo *storage.RatingRepository, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		cron:       cron.New(),
		ratingRepo: ratingRepo,
		logger:     logger,
		schedule:   cfg.Schedule,
	}
}

// Start schedules the sweep. An empty schedule disables it.
func (r *Reconciler) Start(ctx context.Context) error {
	if r.schedule == "" {
		r.logger.Info("rating reconcile sweep disabled")
		return nil
	}

	_, err := r.cron.AddFunc(r.schedule, func() {
		r.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rating reconcile sweep: %w", err)
	}

	r.cron.Start()
	r.logger.Info("rating reconcile sweep scheduled", zap.String("schedule", r.schedule))
	return nil
}

// Stop stops the cron loop, waiting for a running sweep to finish.
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reconciler) runOnce(ctx context.Context) {
	changed, err := r.ratingRepo.ReconcileAll(ctx)
	if err != nil {
		r.logger.Error("rating reconcile sweep failed", zap.Error(err))
		return
	}
	if changed > 0 {
		r.logger.Warn("rating reconcile sweep repaired drifted aggregates", zap.Int64("recipes", changed))
		return
	}
	r.logger.Debug("rating reconcile sweep found no drift")
}
