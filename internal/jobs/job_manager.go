package jobs

import (
	"fmt"
	"log/slog"

	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dayRolloverJob *DayRolloverJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dailySummaryHandler queries.GetDailySummaryQueryHandler,
	reporter ports.Reporter,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dayRolloverJob: NewDayRolloverJob(dailySummaryHandler, reporter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dayRolloverJob.Start(); err != nil {
		return fmt.Errorf("failed to start day rollover job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dayRolloverJob.Stop()
}
