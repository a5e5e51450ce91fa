package commands

import (
	"context"
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// MaxTrackingIDAttempts bounds how many codes are tried before a create gives up.
const MaxTrackingIDAttempts = 5

var ErrTrackingIDExhausted = errors.New("no unique tracking id after retries")

// addWithUniqueTrackingID creates a parcel under a fresh tracking code and stores it,
// drawing a new code whenever the store reports a clash.
func addWithUniqueTrackingID(
	ctx context.Context,
	repo ports.ParcelRepository,
	generator TrackingIDGenerator,
	build func(parcel.TrackingID) (*parcel.Parcel, error),
) (*parcel.Parcel, error) {
	for range MaxTrackingIDAttempts {
		trackingID, err := generator.Generate()
		if err != nil {
			return nil, err
		}

		taken, err := repo.ExistsTrackingID(ctx, trackingID)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		p, err := build(trackingID)
		if err != nil {
			return nil, err
		}

		err = repo.Add(ctx, p)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, fmt.Errorf("%w (%d attempts)", ErrTrackingIDExhausted, MaxTrackingIDAttempts)
}
