package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetParcelByTrackingIDQueryIsNotConstructed = errors.New(
	"GetParcelByTrackingIDQuery must be created via NewGetParcelByTrackingIDQuery constructor",
)

// GetParcelByTrackingIDQuery backs the public tracking page. The code is taken as typed,
// surrounding spaces aside; an ill-formed code is simply not found.
type GetParcelByTrackingIDQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

func NewGetParcelByTrackingIDQuery(trackingID string) GetParcelByTrackingIDQuery {
	return GetParcelByTrackingIDQuery{
		trackingID: strings.TrimSpace(trackingID),
		guard:      guard.NewConstructorGuard(),
	}
}

func (q GetParcelByTrackingIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingIDQueryIsNotConstructed)
}

func (q GetParcelByTrackingIDQuery) TrackingID() string {
	return q.trackingID
}

// GetParcelByTrackingIDResponse reports absence through Found instead of an error.
type GetParcelByTrackingIDResponse struct {
	Parcel *parcel.Parcel
	Found  bool
}
