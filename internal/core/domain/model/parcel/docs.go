// Package parcel provides the Parcel aggregate and the rules that drive it through
// delivery.
//
// The package includes:
//   - Parcel: the aggregate root holding identity, parties, routing, physical and commercial data
//   - Status: the lifecycle state machine with a single forward "advance" per state
//   - Size and ComputeFee: the delivery fee calculator
//   - TrackingID and TrackingIDGenerator: the externally visible parcel code
//   - Created, StatusChanged and DriverAssigned: domain events recorded by the aggregate
//
// Key business rules:
//   - Parcels start Pending with a fee computed once from size and weight
//   - Status advances Pending -> PickedUp -> InTransit -> OutForDelivery -> Delivered
//   - Delivered is terminal; advancing it changes nothing
//   - Any non-terminal parcel can be cancelled; a cancelled parcel moves again only via Resume
package parcel
