package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// mutateParcel loads one parcel, applies change and stores it when change reports a
// modification. On error nothing is written.
func mutateParcel(
	ctx context.Context,
	uowFactory ParcelUoWFactory,
	parcelID kernel.UUID,
	change func(p *parcel.Parcel) (bool, error),
) (*parcel.Parcel, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()
	p, err := repo.Get(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	changed, err := change(p)
	if err != nil {
		return nil, err
	}
	if !changed {
		return p, nil
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
