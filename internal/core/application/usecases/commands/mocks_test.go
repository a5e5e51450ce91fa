package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingID(ctx context.Context, id parcel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) ExistsTrackingID(ctx context.Context, id parcel.TrackingID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, filter)
	parcels, _ := args.Get(0).([]*parcel.Parcel)
	return parcels, args.Error(1)
}

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, o *deliveryorder.DeliveryOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockDeliveryOrderRepository) Update(ctx context.Context, o *deliveryorder.DeliveryOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*deliveryorder.DeliveryOrder)
	return o, args.Error(1)
}

func (m *MockDeliveryOrderRepository) List(ctx context.Context, vendorID string) ([]*deliveryorder.DeliveryOrder, error) {
	args := m.Called(ctx, vendorID)
	orders, _ := args.Get(0).([]*deliveryorder.DeliveryOrder)
	return orders, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return m.Called().Get(0).(ports.DeliveryOrderRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockDeliveryOrderUoWFactory struct{ mock.Mock }

func (m *MockDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return m.Called().Get(0).(commands.DeliveryOrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockTrackingIDGenerator struct{ mock.Mock }

func (m *MockTrackingIDGenerator) Generate() (parcel.TrackingID, error) {
	args := m.Called()
	return args.Get(0).(parcel.TrackingID), args.Error(1)
}

func trackingID(t *testing.T, s string) parcel.TrackingID {
	t.Helper()
	id, err := parcel.ParseTrackingID(s)
	require.NoError(t, err)
	return id
}

func validDetails() parcel.Details {
	return parcel.Details{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "+91-9876543210",
		PickupAddress:   "12 MG Road",
		DeliveryAddress: "4 Park Street",
		Pincode:         "700016",
		Size:            parcel.SizeLarge,
		WeightKg:        12,
	}
}

func storedParcel(t *testing.T, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(parcel.Snapshot{
		ID:          kernel.NewUUID(),
		TrackingID:  trackingID(t, "ZMD000001ABCD"),
		Details:     validDetails(),
		DeliveryFee: kernel.Zero(),
		Status:      status,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	return p
}
