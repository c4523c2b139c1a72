// Package reporting emits end-of-shift and end-of-day summaries to the
// structured log. A real deployment would swap this for an exporter to an
// accounting system; the port keeps the core unaware either way.
package reporting

import (
	"context"
	"log/slog"

	"foodtruck/internal/core/ports"
)

var _ ports.Reporter = (*SlogReporter)(nil)

// SlogReporter logs shift and day summaries as structured records.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter writing through the given logger.
// A nil logger falls back to slog.Default.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// ShiftClosed logs the final ledger of a closed shift.
func (r *SlogReporter) ShiftClosed(ctx context.Context, summary ports.ShiftSummary) {
	r.logger.InfoContext(ctx, "shift closed",
		slog.String("shift_id", summary.ShiftID.String()),
		slog.String("staff_name", summary.StaffName),
		slog.Time("started_at", summary.StartedAt),
		slog.Time("ended_at", summary.EndedAt),
		slog.Int("total_orders", summary.TotalOrders),
		slog.String("total_revenue", summary.TotalRevenue.String()),
		slog.String("total_tips", summary.TotalTips.String()),
		slog.String("cash_sales", summary.CashSales.String()),
		slog.String("card_sales", summary.CardSales.String()),
		slog.String("expected_cash", summary.ExpectedCash.String()),
		slog.String("ending_cash", summary.EndingCash.String()),
		slog.String("variance", summary.Variance.String()),
	)
}

// DayRolled logs the previous day's totals at the midnight rollover.
func (r *SlogReporter) DayRolled(ctx context.Context, summary ports.DaySummary) {
	r.logger.InfoContext(ctx, "day rolled over",
		slog.String("day", summary.Day.Format("2006-01-02")),
		slog.Int("total_orders", summary.TotalOrders),
		slog.String("paid_revenue", summary.PaidRevenue.String()),
	)
}
