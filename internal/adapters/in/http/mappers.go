package http

import (
	"strings"

	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toSession(s auth.Session) servers.Session {
	return servers.Session{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User: servers.User{
			Id:    s.User.ID,
			Email: s.User.Email,
			Name:  s.User.Name,
			Role:  servers.UserRole(s.User.Role),
		},
	}
}

func toParcel(p *parcel.Parcel) servers.Parcel {
	out := servers.Parcel{
		Id:                  p.ID().Google(),
		TrackingId:          p.TrackingID().String(),
		CustomerId:          optional(p.CustomerID()),
		CustomerName:        p.CustomerName(),
		CustomerPhone:       p.CustomerPhone(),
		CustomerEmail:       optional(p.CustomerEmail()),
		VendorId:            optional(p.VendorID()),
		PickupAddress:       p.PickupAddress(),
		DeliveryAddress:     p.DeliveryAddress(),
		Pincode:             p.Pincode(),
		ParcelSize:          servers.ParcelSize(p.Size().String()),
		Weight:              p.WeightKg(),
		SpecialInstructions: optional(p.SpecialInstructions()),
		IsFragile:           p.IsFragile(),
		RequiresSignature:   p.RequiresSignature(),
		AssignedDriverId:    optional(p.AssignedDriverID()),
		DeliveryFee:         p.DeliveryFee().Float64(),
		Status:              servers.ParcelStatus(p.Status().String()),
		CreatedAt:           p.CreatedAt(),
	}
	if orderID := p.DeliveryOrderID(); orderID != nil {
		id := orderID.Google()
		out.DeliveryOrderId = &id
	}
	return out
}

func toParcels(parcels []*parcel.Parcel) []servers.Parcel {
	out := make([]servers.Parcel, len(parcels))
	for i, p := range parcels {
		out[i] = toParcel(p)
	}
	return out
}

func toDeliveryOrder(o *deliveryorder.DeliveryOrder) servers.DeliveryOrder {
	ids := o.ParcelIDs()
	parcelIDs := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		parcelIDs[i] = id.Google()
	}
	return servers.DeliveryOrder{
		Id:           o.ID().Google(),
		VendorId:     o.VendorID(),
		VendorName:   o.VendorName(),
		OrderDate:    o.OrderDate(),
		TotalParcels: o.TotalParcels(),
		ParcelIds:    parcelIDs,
		Status:       servers.DeliveryOrderStatus(o.Status().String()),
		FileUrl:      optional(o.FileURL()),
	}
}

func toStats(stats services.Stats) servers.ParcelStats {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[status.String()] = n
	}
	return servers.ParcelStats{
		Total:     stats.Total,
		Pending:   stats.Pending,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
		Cancelled: stats.Cancelled,
		Revenue:   stats.Revenue.Float64(),
		ByStatus:  byStatus,
	}
}

func toPincodeGroups(groups []services.PincodeGroup) []servers.PincodeGroup {
	out := make([]servers.PincodeGroup, len(groups))
	for i, g := range groups {
		out[i] = servers.PincodeGroup{Pincode: g.Pincode, Parcels: toParcels(g.Parcels)}
	}
	return out
}

// toDetails maps a request body onto parcel details. An unknown size is left as
// SizeUnknown so that it is reported along with every other invalid field.
func toDetails(body servers.NewParcel) parcel.Details {
	size, _ := parcel.ParseSize(string(body.ParcelSize))
	return parcel.Details{
		CustomerID:          deref(body.CustomerId),
		CustomerName:        body.CustomerName,
		CustomerPhone:       body.CustomerPhone,
		CustomerEmail:       deref(body.CustomerEmail),
		VendorID:            deref(body.VendorId),
		PickupAddress:       body.PickupAddress,
		DeliveryAddress:     body.DeliveryAddress,
		Pincode:             deref(body.Pincode),
		Size:                size,
		WeightKg:            body.Weight,
		SpecialInstructions: deref(body.SpecialInstructions),
		IsFragile:           deref(body.IsFragile),
		RequiresSignature:   deref(body.RequiresSignature),
	}
}

func toStatuses(values *servers.StatusQuery) ([]parcel.Status, error) {
	if values == nil {
		return nil, nil
	}
	statuses := make([]parcel.Status, 0, len(*values))
	for _, v := range *values {
		status, err := parcel.ParseStatus(string(v))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
