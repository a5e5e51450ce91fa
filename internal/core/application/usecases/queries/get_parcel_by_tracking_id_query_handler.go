package queries

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

type GetParcelByTrackingIDQueryHandler struct {
	reader ParcelReader
}

func NewGetParcelByTrackingIDQueryHandler(reader ParcelReader) GetParcelByTrackingIDQueryHandler {
	return GetParcelByTrackingIDQueryHandler{reader: reader}
}

// Handle returns an error only when the store itself fails.
func (h GetParcelByTrackingIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingIDQuery,
) (GetParcelByTrackingIDResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelByTrackingIDResponse{}, err
	}

	trackingID, err := parcel.ParseTrackingID(query.TrackingID())
	if err != nil {
		return GetParcelByTrackingIDResponse{}, nil
	}

	p, err := h.reader.GetByTrackingID(ctx, trackingID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetParcelByTrackingIDResponse{}, nil
	}
	if err != nil {
		return GetParcelByTrackingIDResponse{}, err
	}

	return GetParcelByTrackingIDResponse{Parcel: p, Found: true}, nil
}
