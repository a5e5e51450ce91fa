package deliveryorderrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements ports.DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db *gorm.DB
}

func NewGormDeliveryOrderRepository(db *gorm.DB) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{db: db}
}

// Add inserts the order together with its parcel links.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, order *deliveryorder.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto := fromDomain(order)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("deliveryOrder", order.ID().String())
		}
		return err
	}
	return nil
}

// Update writes the order status. Membership never changes after creation.
func (r *GormDeliveryOrderRepository) Update(ctx context.Context, order *deliveryorder.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).
		Where("id = ?", order.ID().Google()).
		Update("status", order.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryOrder", order.ID().String())
	}
	return nil
}

func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.withParcels(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns orders by order date. An empty vendorID lists every vendor.
func (r *GormDeliveryOrderRepository) List(ctx context.Context, vendorID string) ([]*deliveryorder.DeliveryOrder, error) {
	db := r.withParcels(ctx)
	if vendorID != "" {
		db = db.Where("vendor_id = ?", vendorID)
	}

	var dtos []DeliveryOrderDTO
	if err := db.Order("order_date").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*deliveryorder.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormDeliveryOrderRepository) withParcels(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Parcels", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
