package services_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestStatsAggregator_RevenueIncludesCancelled(t *testing.T) {
	parcels := []*parcel.Parcel{
		restoreParcel(t, withFee(500), withStatus(parcel.StatusDelivered)),
		restoreParcel(t, withFee(800), withStatus(parcel.StatusCancelled)),
	}

	stats := services.NewStatsAggregator().Aggregate(parcels)

	assert.Equal(t, "13.00", stats.Revenue.String())
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 1, stats.Cancelled)
}

func TestStatsAggregator_Counts(t *testing.T) {
	parcels := []*parcel.Parcel{
		restoreParcel(t, withStatus(parcel.StatusPending)),
		restoreParcel(t, withStatus(parcel.StatusPending)),
		restoreParcel(t, withStatus(parcel.StatusPickedUp)),
		restoreParcel(t, withStatus(parcel.StatusInTransit)),
		restoreParcel(t, withStatus(parcel.StatusOutForDelivery)),
		restoreParcel(t, withStatus(parcel.StatusDelivered)),
	}

	stats := services.NewStatsAggregator().Aggregate(parcels)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 3, stats.InTransit)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 1, stats.ByStatus[parcel.StatusOutForDelivery])
	assert.Equal(t, 0, stats.ByStatus[parcel.StatusCancelled])
	assert.Len(t, stats.ByStatus, len(parcel.AllStatuses()))
}

func TestStatsAggregator_Empty(t *testing.T) {
	stats := services.NewStatsAggregator().Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0.00", stats.Revenue.String())
}
