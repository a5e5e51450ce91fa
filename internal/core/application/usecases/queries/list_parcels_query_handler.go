package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

type ListParcelsQueryHandler struct {
	reader ParcelReader
}

func NewListParcelsQueryHandler(reader ParcelReader) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{reader: reader}
}

// Handle never returns a nil slice on success.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.reader.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if parcels == nil {
		parcels = make([]*parcel.Parcel, 0)
	}
	return parcels, nil
}
