// Package services holds read-side domain services that work over a set of parcels
// rather than a single aggregate.
//
// The package includes:
//   - RoutePlanner: groups a driver's parcels by pincode for route display
//   - StatsAggregator: counts parcels by status and sums delivery fees
//   - DriverReporter: delivered / pending / failed counts for one driver
//
// All services are pure: they never mutate the parcels they are given.
package services
