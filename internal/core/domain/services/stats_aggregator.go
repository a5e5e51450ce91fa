package services

import (
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// Stats summarises a parcel collection.
//
// InTransit covers every status between pickup and delivery: picked_up, in_transit
// and out_for_delivery. ByStatus keeps the exact per-status counts.
type Stats struct {
	Total     int
	Pending   int
	InTransit int
	Delivered int
	Cancelled int
	Revenue   kernel.Money
	ByStatus  map[parcel.Status]int
}

// StatsAggregator derives Stats from the current parcels on every call.
type StatsAggregator struct{}

func NewStatsAggregator() StatsAggregator {
	return StatsAggregator{}
}

// Aggregate counts parcels and sums their delivery fees. Revenue includes cancelled
// and undelivered parcels.
func (StatsAggregator) Aggregate(parcels []*parcel.Parcel) Stats {
	stats := Stats{
		Revenue:  kernel.Zero(),
		ByStatus: make(map[parcel.Status]int, len(parcel.AllStatuses())),
	}
	for _, s := range parcel.AllStatuses() {
		stats.ByStatus[s] = 0
	}

	for _, p := range parcels {
		if p == nil {
			continue
		}
		stats.Total++
		stats.Revenue = stats.Revenue.Add(p.DeliveryFee())
		stats.ByStatus[p.Status()]++

		switch p.Status() {
		case parcel.StatusPending:
			stats.Pending++
		case parcel.StatusPickedUp, parcel.StatusInTransit, parcel.StatusOutForDelivery:
			stats.InTransit++
		case parcel.StatusDelivered:
			stats.Delivered++
		case parcel.StatusCancelled:
			stats.Cancelled++
		}
	}

	return stats
}
