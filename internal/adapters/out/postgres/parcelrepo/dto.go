// Package parcelrepo persists Parcel aggregates in PostgreSQL through GORM.
package parcelrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row layout of the parcels table. Seq is filled by the database and
// orders parcels that share a creation instant, such as the members of one delivery order.
type ParcelDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq                 int64      `gorm:"type:bigserial;<-:false;index"`
	TrackingID          string     `gorm:"type:varchar(13);not null;uniqueIndex"`
	CustomerID          string     `gorm:"type:varchar(64);index"`
	CustomerName        string     `gorm:"type:varchar(255);not null"`
	CustomerPhone       string     `gorm:"type:varchar(32);not null"`
	CustomerEmail       string     `gorm:"type:varchar(255)"`
	VendorID            string     `gorm:"type:varchar(64);index"`
	DeliveryOrderID     *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress       string     `gorm:"type:text;not null"`
	DeliveryAddress     string     `gorm:"type:text;not null"`
	Pincode             string     `gorm:"type:varchar(16);index"`
	Size                string     `gorm:"type:varchar(16);not null"`
	WeightKg            float64    `gorm:"not null"`
	SpecialInstructions string     `gorm:"type:text"`
	IsFragile           bool       `gorm:"not null;default:false"`
	RequiresSignature   bool       `gorm:"not null;default:false"`
	AssignedDriverID    string     `gorm:"type:varchar(64);index"`
	DeliveryFeeCents    int64      `gorm:"not null"`
	Status              string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt           time.Time  `gorm:"not null;index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	var orderID *uuid.UUID
	if id := p.DeliveryOrderID(); id != nil {
		raw := id.Google()
		orderID = &raw
	}

	return ParcelDTO{
		ID:                  p.ID().Google(),
		TrackingID:          p.TrackingID().String(),
		CustomerID:          p.CustomerID(),
		CustomerName:        p.CustomerName(),
		CustomerPhone:       p.CustomerPhone(),
		CustomerEmail:       p.CustomerEmail(),
		VendorID:            p.VendorID(),
		DeliveryOrderID:     orderID,
		PickupAddress:       p.PickupAddress(),
		DeliveryAddress:     p.DeliveryAddress(),
		Pincode:             p.Pincode(),
		Size:                p.Size().String(),
		WeightKg:            p.WeightKg(),
		SpecialInstructions: p.SpecialInstructions(),
		IsFragile:           p.IsFragile(),
		RequiresSignature:   p.RequiresSignature(),
		AssignedDriverID:    p.AssignedDriverID(),
		DeliveryFeeCents:    p.DeliveryFee().Cents(),
		Status:              p.Status().String(),
		CreatedAt:           p.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreParcel, so a row that breaks an
// invariant surfaces as an error instead of a half-valid parcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.DeliveryOrderID != nil {
		oID, orderErr := kernel.UUIDFromGoogle(*dto.DeliveryOrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	trackingID, err := parcel.ParseTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}
	size, err := parcel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:         id,
		TrackingID: trackingID,
		Details: parcel.Details{
			CustomerID:          dto.CustomerID,
			CustomerName:        dto.CustomerName,
			CustomerPhone:       dto.CustomerPhone,
			CustomerEmail:       dto.CustomerEmail,
			VendorID:            dto.VendorID,
			DeliveryOrderID:     orderID,
			PickupAddress:       dto.PickupAddress,
			DeliveryAddress:     dto.DeliveryAddress,
			Pincode:             dto.Pincode,
			Size:                size,
			WeightKg:            dto.WeightKg,
			SpecialInstructions: dto.SpecialInstructions,
			IsFragile:           dto.IsFragile,
			RequiresSignature:   dto.RequiresSignature,
		},
		AssignedDriverID: dto.AssignedDriverID,
		DeliveryFee:      fee,
		Status:           status,
		CreatedAt:        dto.CreatedAt,
	})
}
