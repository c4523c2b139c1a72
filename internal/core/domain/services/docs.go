// Package services provides domain services that compute results across
// multiple domain entities without naturally belonging to a single aggregate.
//
// The package includes:
//   - WaitEstimator: derives a customer-facing wait estimate and busy level
//     from queue depth and historical prep durations
package services
