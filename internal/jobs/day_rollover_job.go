package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DayRolloverJob fires at local midnight when the order-number sequence
// resets. It reports the closing day's totals so the counts survive in the
// reporting stream even though the counter itself rolls over.
type DayRolloverJob struct {
	handler  queries.GetDailySummaryQueryHandler
	reporter ports.Reporter
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDayRolloverJob creates a new job for the midnight day boundary.
func NewDayRolloverJob(
	handler queries.GetDailySummaryQueryHandler,
	reporter ports.Reporter,
	logger *slog.Logger,
) *DayRolloverJob {
	return &DayRolloverJob{
		handler:  handler,
		reporter: reporter,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "day_rollover_job"),
	}
}

// Start schedules the job for local midnight.
func (j *DayRolloverJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		// The job runs just past midnight, so the day that ended is yesterday.
		closingDay := time.Now().AddDate(0, 0, -1)
		summary, err := j.handler.Handle(ctx, queries.NewGetDailySummaryQuery(closingDay))
		if err != nil {
			j.logger.ErrorContext(ctx, "Day rollover job failed", "error", err)
			return
		}

		j.reporter.DayRolled(ctx, ports.DaySummary{
			Day:         summary.Day,
			TotalOrders: summary.TotalOrders,
			PaidRevenue: summary.PaidRevenue,
		})
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Day rollover job started (running at midnight)")
	return nil
}

// Stop stops the day rollover job.
func (j *DayRolloverJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Day rollover job stopped")
}
