package parcel

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
)

// Event names as they appear on the wire.
const (
	EventCreated        = "parcel.created"
	EventStatusChanged  = "parcel.status_changed"
	EventDriverAssigned = "parcel.driver_assigned"
)

// DomainEvent is a fact recorded by the Parcel aggregate. Events are collected by the
// unit of work on commit and relayed to subscribers afterwards.
type DomainEvent interface {
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

// Created is recorded once, when NewParcel succeeds.
type Created struct {
	ParcelID    kernel.UUID `json:"-"`
	ParcelIDStr string      `json:"parcelId"`
	TrackingID  string      `json:"trackingId"`
	Status      string      `json:"status"`
	DeliveryFee float64     `json:"deliveryFee"`
	At          time.Time   `json:"occurredAt"`
}

func (e Created) EventName() string { return EventCreated }
func (e Created) AggregateID() kernel.UUID { return e.ParcelID }
func (e Created) OccurredAt() time.Time { return e.At }

// StatusChanged is recorded on advance, cancel and resume.
type StatusChanged struct {
	ParcelID    kernel.UUID `json:"-"`
	ParcelIDStr string      `json:"parcelId"`
	TrackingID  string      `json:"trackingId"`
	From        string      `json:"from"`
	To          string      `json:"to"`
	At          time.Time   `json:"occurredAt"`
}

func (e StatusChanged) EventName() string { return EventStatusChanged }
func (e StatusChanged) AggregateID() kernel.UUID { return e.ParcelID }
func (e StatusChanged) OccurredAt() time.Time { return e.At }

// DriverAssigned is recorded whenever a driver is (re)assigned.
type DriverAssigned struct {
	ParcelID    kernel.UUID `json:"-"`
	ParcelIDStr string      `json:"parcelId"`
	TrackingID  string      `json:"trackingId"`
	DriverID    string      `json:"driverId"`
	At          time.Time   `json:"occurredAt"`
}

func (e DriverAssigned) EventName() string { return EventDriverAssigned }
func (e DriverAssigned) AggregateID() kernel.UUID { return e.ParcelID }
func (e DriverAssigned) OccurredAt() time.Time { return e.At }
