// Package deliveryorderrepo persists DeliveryOrder aggregates. The member parcel IDs live in
// a child table so the batch keeps its submission order.
package deliveryorderrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryOrderDTO struct {
	ID         uuid.UUID                `gorm:"type:uuid;primaryKey"`
	VendorID   string                   `gorm:"type:varchar(64);not null;index"`
	VendorName string                   `gorm:"type:varchar(255);not null"`
	OrderDate  time.Time                `gorm:"not null;index"`
	Status     string                   `gorm:"type:varchar(32);not null"`
	FileURL    string                   `gorm:"type:text"`
	Parcels    []DeliveryOrderParcelDTO `gorm:"foreignKey:DeliveryOrderID;constraint:OnDelete:CASCADE"`
}

func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

// DeliveryOrderParcelDTO links one parcel to its order at a fixed position.
type DeliveryOrderParcelDTO struct {
	DeliveryOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position        int       `gorm:"not null"`
}

func (DeliveryOrderParcelDTO) TableName() string {
	return "delivery_order_parcels"
}

func fromDomain(order *deliveryorder.DeliveryOrder) DeliveryOrderDTO {
	ids := order.ParcelIDs()
	parcels := make([]DeliveryOrderParcelDTO, 0, len(ids))
	for i, id := range ids {
		parcels = append(parcels, DeliveryOrderParcelDTO{
			DeliveryOrderID: order.ID().Google(),
			ParcelID:        id.Google(),
			Position:        i,
		})
	}

	return DeliveryOrderDTO{
		ID:         order.ID().Google(),
		VendorID:   order.VendorID(),
		VendorName: order.VendorName(),
		OrderDate:  order.OrderDate(),
		Status:     order.Status().String(),
		FileURL:    order.FileURL(),
		Parcels:    parcels,
	}
}

// toDomain expects Parcels to be preloaded in position order.
func toDomain(dto DeliveryOrderDTO) (*deliveryorder.DeliveryOrder, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(dto.Parcels))
	for _, p := range dto.Parcels {
		pID, parcelErr := kernel.UUIDFromGoogle(p.ParcelID)
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcelIDs = append(parcelIDs, pID)
	}

	status, err := deliveryorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return deliveryorder.RestoreDeliveryOrder(deliveryorder.Snapshot{
		ID:         id,
		VendorID:   dto.VendorID,
		VendorName: dto.VendorName,
		OrderDate:  dto.OrderDate,
		ParcelIDs:  parcelIDs,
		Status:     status,
		FileURL:    dto.FileURL,
	})
}
