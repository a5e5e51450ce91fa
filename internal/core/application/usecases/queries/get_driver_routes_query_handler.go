package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

type GetDriverRoutesQueryHandler struct {
	reader  ParcelReader
	planner services.RoutePlanner
}

func NewGetDriverRoutesQueryHandler(reader ParcelReader) GetDriverRoutesQueryHandler {
	return GetDriverRoutesQueryHandler{reader: reader, planner: services.NewRoutePlanner()}
}

// Handle returns pincode groups in order of first appearance; parcels keep creation order.
func (h GetDriverRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRoutesQuery,
) ([]services.PincodeGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.reader.List(ctx, ports.ParcelFilter{
		DriverID: query.DriverID(),
		Statuses: query.Statuses(),
	})
	if err != nil {
		return nil, err
	}

	return h.planner.GroupByPincode(parcels), nil
}
