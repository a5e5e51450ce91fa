package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

// GetParcelStatsQueryHandler re-derives the stats from the current parcels on every call.
type GetParcelStatsQueryHandler struct {
	reader     ParcelReader
	aggregator services.StatsAggregator
}

func NewGetParcelStatsQueryHandler(reader ParcelReader) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{reader: reader, aggregator: services.NewStatsAggregator()}
}

func (h GetParcelStatsQueryHandler) Handle(ctx context.Context, query GetParcelStatsQuery) (services.Stats, error) {
	if err := query.Validate(); err != nil {
		return services.Stats{}, err
	}

	parcels, err := h.reader.List(ctx, ports.ParcelFilter{VendorID: query.VendorID()})
	if err != nil {
		return services.Stats{}, err
	}

	return h.aggregator.Aggregate(parcels), nil
}
