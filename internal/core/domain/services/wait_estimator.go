package services

import (
	"fmt"
	"math"
	"time"

	"foodtruck/internal/pkg/errs"
)

// BusyLevel is the three-tier classification of the current queue depth shown
// on the customer display.
type BusyLevel string

const (
	// Calm means few enough orders ahead that a new customer walks right up.
	Calm BusyLevel = "calm"

	// Moderate means a visible line has formed.
	Moderate BusyLevel = "moderate"

	// Busy means the kitchen is saturated.
	Busy BusyLevel = "busy"
)

// Estimate is the advisory wait information for a new order placed now.
// It never blocks order creation.
type Estimate struct {
	OrdersAhead      int
	EstimatedMinutes int
	Level            BusyLevel
}

// WaitEstimator derives a customer-facing wait estimate from the number of
// orders ahead in the queue and a rolling average of historical prep
// durations (elapsed pending -> ready). When no history is available it falls
// back to a configured default prep duration.
//
// The estimate is monotone in orders ahead: more orders never shortens the
// quoted wait.
type WaitEstimator struct {
	defaultPrep time.Duration
	calmMax     int
	moderateMax int
}

// NewWaitEstimator creates a WaitEstimator.
//
// defaultPrep is the per-order prep duration assumed when no history exists.
// calmMax and moderateMax are the busy-level thresholds: fewer than calmMax
// orders ahead is calm, fewer than moderateMax is moderate, anything else is
// busy.
func NewWaitEstimator(defaultPrep time.Duration, calmMax, moderateMax int) (WaitEstimator, error) {
	if defaultPrep <= 0 {
		return WaitEstimator{}, errs.NewValueIsInvalidError("default prep duration")
	}
	if calmMax < 1 || moderateMax <= calmMax {
		return WaitEstimator{}, errs.NewValueIsInvalidErrorWithCause(
			"busy thresholds",
			fmt.Errorf("calm max %d and moderate max %d must satisfy 1 <= calm < moderate", calmMax, moderateMax),
		)
	}

	return WaitEstimator{
		defaultPrep: defaultPrep,
		calmMax:     calmMax,
		moderateMax: moderateMax,
	}, nil
}

// Estimate computes the wait for a new order with ordersAhead orders still in
// the kitchen queue, given the recent prep-duration history.
//
// The quoted wait is ordersAhead times the average prep duration, rounded to
// whole minutes with a floor of one minute, so the display never promises
// instant food.
func (e WaitEstimator) Estimate(ordersAhead int, history []time.Duration) Estimate {
	if ordersAhead < 0 {
		ordersAhead = 0
	}

	avg := e.averagePrep(history)
	minutes := int(math.Round(float64(ordersAhead) * avg.Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	return Estimate{
		OrdersAhead:      ordersAhead,
		EstimatedMinutes: minutes,
		Level:            e.classify(ordersAhead),
	}
}

// AveragePrep exposes the rolling average used by the queue projection so
// per-position waits come from the same number the headline estimate uses.
func (e WaitEstimator) AveragePrep(history []time.Duration) time.Duration {
	return e.averagePrep(history)
}

func (e WaitEstimator) averagePrep(history []time.Duration) time.Duration {
	if len(history) == 0 {
		return e.defaultPrep
	}

	var total time.Duration
	for _, d := range history {
		total += d
	}
	return total / time.Duration(len(history))
}

func (e WaitEstimator) classify(ordersAhead int) BusyLevel {
	switch {
	case ordersAhead < e.calmMax:
		return Calm
	case ordersAhead < e.moderateMax:
		return Moderate
	default:
		return Busy
	}
}
