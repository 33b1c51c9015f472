package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob cancels pending orders that were never confirmed.
// Runs every minute and cancels orders older than the configured age.
type StaleOrderSweepJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderSweepJob creates a new job for sweeping stale pending orders.
// Uses CancelStaleOrdersCommandHandler to cancel orders older than maxAge.
func NewStaleOrderSweepJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_sweep_job"),
	}
}

// Start begins the sweep job to run at the top of every minute.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started (running every minute)",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}
