// Package deliveryorder models a vendor batch: several parcels submitted together.
//
// A DeliveryOrder has its own status, independent of the parcels it lists:
//
//	pending -> processing -> ready_for_pickup -> picked_up -> completed
//
// Completed is terminal; advancing it changes nothing.
package deliveryorder
