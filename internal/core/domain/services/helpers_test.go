package services_test

import (
	"fmt"
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

type parcelOption func(*parcel.Snapshot)

func withPincode(pincode string) parcelOption {
	return func(s *parcel.Snapshot) { s.Details.Pincode = pincode }
}

func withStatus(status parcel.Status) parcelOption {
	return func(s *parcel.Snapshot) { s.Status = status }
}

func withFee(cents int64) parcelOption {
	return func(s *parcel.Snapshot) {
		fee, _ := kernel.NewMoneyFromCents(cents)
		s.DeliveryFee = fee
	}
}

func withDriver(driverID string) parcelOption {
	return func(s *parcel.Snapshot) { s.AssignedDriverID = driverID }
}

var sequence int

func restoreParcel(t *testing.T, opts ...parcelOption) *parcel.Parcel {
	t.Helper()
	sequence++

	trackingID, err := parcel.ParseTrackingID(fmt.Sprintf("ZMD%06dTEST", sequence))
	require.NoError(t, err)

	snap := parcel.Snapshot{
		ID:         kernel.NewUUID(),
		TrackingID: trackingID,
		Details: parcel.Details{
			CustomerName:    "Customer",
			CustomerPhone:   "555-0100",
			PickupAddress:   "Warehouse 1",
			DeliveryAddress: "Street 2",
			Pincode:         "560001",
			Size:            parcel.SizeSmall,
			WeightKg:        1,
		},
		DeliveryFee: kernel.Zero(),
		Status:      parcel.StatusPending,
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(&snap)
	}

	p, err := parcel.RestoreParcel(snap)
	require.NoError(t, err)
	return p
}
