package parcelrepo

import (
	"context"
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const addSavepoint = "parcel_add"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	inTx    bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a repository bound to db. inTx marks db as an open
// transaction: Get then locks the row and Add guards itself with a savepoint.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker, inTx bool) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
		inTx:    inTx,
	}
}

// Add inserts a new parcel. A duplicate tracking ID is reported as
// errs.ErrObjectAlreadyExists and leaves the surrounding transaction usable.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if r.inTx {
		if err := db.SavePoint(addSavepoint).Error; err != nil {
			return err
		}
	}

	if err := db.Create(&dto).Error; err != nil {
		if r.inTx {
			if rbErr := db.RollbackTo(addSavepoint).Error; rbErr != nil {
				return errors.Join(err, rbErr)
			}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("trackingId", dto.TrackingID)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update writes the mutable columns of an existing parcel.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":             dto.Status,
		"assigned_driver_id": dto.AssignedDriverID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a parcel by ID, taking a row lock when called inside a transaction.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if r.inTx {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ParcelDTO
	if err := db.First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) GetByTrackingID(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) ExistsTrackingID(ctx context.Context, trackingID parcel.TrackingID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns parcels matching filter in creation order.
func (r *GormParcelRepository) List(ctx context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error) {
	db := r.db.WithContext(ctx).Model(&ParcelDTO{})

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		db = db.Where(
			"customer_name ILIKE ? OR tracking_id ILIKE ? OR customer_phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		db = db.Where("status IN ?", statuses)
	}
	if filter.DriverID != "" {
		db = db.Where("assigned_driver_id = ?", filter.DriverID)
	}
	if filter.CustomerID != "" {
		db = db.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.VendorID != "" {
		db = db.Where("vendor_id = ?", filter.VendorID)
	}

	var dtos []ParcelDTO
	if err := db.Order("created_at").Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func (r *GormParcelRepository) track(aggregate *parcel.Parcel) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
