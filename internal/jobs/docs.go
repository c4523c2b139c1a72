// Package jobs provides scheduled background tasks for the point of sale.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot own.
//
// # Available Jobs
//
// 1. DayRolloverJob - Runs at local midnight to report the closing day's
// order count and paid revenue before the daily order-number sequence resets
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dailySummaryHandler, reporter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed rollover read is logged and skipped; the order data stays in the
// database, so a missed report is recoverable from the orders table.
package jobs
