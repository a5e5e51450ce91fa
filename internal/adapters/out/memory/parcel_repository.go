package memory

import (
	"context"
	"slices"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// ParcelRepository reads committed state plus, inside a unit of work, that unit's staged writes.
type ParcelRepository struct {
	store *Store
	tx    *UnitOfWork
}

// NewParcelRepository returns a repository that reads under the shared lock and commits
// each write on its own.
func NewParcelRepository(store *Store) *ParcelRepository {
	return &ParcelRepository{store: store}
}

func (r *ParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return autocommit(ctx, r.store, func(uow *UnitOfWork) error {
			return (&ParcelRepository{store: r.store, tx: uow}).Add(ctx, p)
		})
	}

	id := p.ID().String()
	trackingID := p.TrackingID().String()
	if _, ok := r.lookup(id); ok {
		return errs.NewObjectAlreadyExistsError("parcel", id)
	}
	if r.trackingIDTaken(trackingID) {
		return errs.NewObjectAlreadyExistsError("trackingId", trackingID)
	}

	r.tx.changes.parcels[id] = p.Snapshot()
	r.tx.changes.newParcels = append(r.tx.changes.newParcels, id)
	r.tx.changes.trackingIndex[trackingID] = id
	r.tx.track(p)
	return nil
}

func (r *ParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return autocommit(ctx, r.store, func(uow *UnitOfWork) error {
			return (&ParcelRepository{store: r.store, tx: uow}).Update(ctx, p)
		})
	}

	id := p.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("parcel", id)
	}

	r.tx.changes.parcels[id] = p.Snapshot()
	r.tx.track(p)
	return nil
}

func (r *ParcelRepository) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	unlock := r.rlock()
	defer unlock()

	snap, ok := r.lookup(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}
	return parcel.RestoreParcel(snap)
}

func (r *ParcelRepository) GetByTrackingID(_ context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error) {
	unlock := r.rlock()
	defer unlock()

	id, ok := r.trackingIndexLookup(trackingID.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", trackingID.String())
	}
	snap, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", trackingID.String())
	}
	return parcel.RestoreParcel(snap)
}

func (r *ParcelRepository) ExistsTrackingID(_ context.Context, trackingID parcel.TrackingID) (bool, error) {
	unlock := r.rlock()
	defer unlock()

	return r.trackingIDTaken(trackingID.String()), nil
}

func (r *ParcelRepository) List(_ context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error) {
	unlock := r.rlock()
	defer unlock()

	ids := r.store.parcelOrder
	if r.tx != nil {
		ids = append(slices.Clone(ids), r.tx.changes.newParcels...)
	}

	parcels := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		snap, ok := r.lookup(id)
		if !ok {
			continue
		}
		p, err := parcel.RestoreParcel(snap)
		if err != nil {
			return nil, err
		}
		if MatchesFilter(p, filter) {
			parcels = append(parcels, p)
		}
	}
	return parcels, nil
}

// MatchesFilter applies every non-zero field of filter to p.
func MatchesFilter(p *parcel.Parcel, filter ports.ParcelFilter) bool {
	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, p.Status()) {
		return false
	}
	if filter.DriverID != "" && p.AssignedDriverID() != filter.DriverID {
		return false
	}
	if filter.CustomerID != "" && p.CustomerID() != filter.CustomerID {
		return false
	}
	if filter.VendorID != "" && p.VendorID() != filter.VendorID {
		return false
	}
	return p.MatchesSearch(filter.Search)
}

// rlock takes the shared lock unless the unit of work already holds the write lock.
func (r *ParcelRepository) rlock() func() {
	if r.tx != nil {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *ParcelRepository) lookup(id string) (parcel.Snapshot, bool) {
	if r.tx != nil {
		if snap, ok := r.tx.changes.parcels[id]; ok {
			return snap, true
		}
	}
	snap, ok := r.store.parcels[id]
	return snap, ok
}

func (r *ParcelRepository) trackingIndexLookup(trackingID string) (string, bool) {
	if r.tx != nil {
		if id, ok := r.tx.changes.trackingIndex[trackingID]; ok {
			return id, true
		}
	}
	id, ok := r.store.trackingIndex[trackingID]
	return id, ok
}

func (r *ParcelRepository) trackingIDTaken(trackingID string) bool {
	_, ok := r.trackingIndexLookup(trackingID)
	return ok
}
