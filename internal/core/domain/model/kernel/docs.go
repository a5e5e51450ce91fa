// Package kernel provides the shared value objects of the parcel domain.
//
// The package includes:
//   - UUID: store-assigned identifiers for parcels, delivery orders and outbox messages
//   - Money: a non-negative currency amount held in whole cents
//
// Every value object is immutable; its zero value is invalid and reports so from Validate.
package kernel
