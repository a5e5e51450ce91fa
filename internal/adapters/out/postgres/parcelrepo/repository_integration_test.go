package parcelrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite verifies parcel persistence against PostgreSQL.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE parcels").Error)
	suite.tracker = &MockAggregateTracker{}
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker, false)
}

func TestParcelRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsEveryField() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	p := suite.newParcel(1, func(d *parcel.Details) {
		d.CustomerEmail = "asha@example.com"
		d.CustomerID = "4"
		d.DeliveryOrderID = &orderID
		d.SpecialInstructions = "Leave at reception"
		d.IsFragile = true
		d.RequiresSignature = true
	})
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	stored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	want := p.Snapshot()
	got := stored.Snapshot()
	suite.WithinDuration(want.CreatedAt, got.CreatedAt, time.Millisecond)
	want.CreatedAt, got.CreatedAt = time.Time{}, time.Time{}
	suite.Equal(want, got)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_UnknownIDIsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingID() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.newParcel(1, nil)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	clash, err := parcel.NewParcel(kernel.NewUUID(), first.TrackingID(), parcel.Details{
		CustomerName:    "Other",
		CustomerPhone:   "1",
		PickupAddress:   "a",
		DeliveryAddress: "b",
		Size:            parcel.SizeSmall,
		WeightKg:        1,
	}, time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, clash)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_WritesStatusAndDriver() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	p := suite.newParcel(1, nil)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.AssignDriver("3"))
	suite.Require().NoError(p.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, p))

	stored, err := suite.repository.GetByTrackingID(ctx, p.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusCancelled, stored.Status())
	suite.Equal("3", stored.AssignedDriverID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownParcel() {
	p := suite.newParcel(1, nil)
	err := suite.repository.Update(context.Background(), p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestList_FiltersAndOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	base := time.Now().Add(-time.Hour)
	rahul := suite.newParcel(1, func(d *parcel.Details) { d.CustomerName = "Rahul 50%_off"; d.VendorID = "2" })
	priya := suite.newParcel(2, func(d *parcel.Details) { d.CustomerName = "Priya"; d.CustomerID = "4" })
	amit := suite.newParcel(3, func(d *parcel.Details) { d.CustomerName = "Amit"; d.CustomerPhone = "555-0100" })
	for i, p := range []*parcel.Parcel{rahul, priya, amit} {
		restored := suite.withCreatedAt(p, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(suite.repository.Add(ctx, restored))
	}

	stored, err := suite.repository.Get(ctx, priya.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stored.AssignDriver("3"))
	_, err = stored.Advance()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	tests := []struct {
		name   string
		filter ports.ParcelFilter
		want   []string
	}{
		{name: "all in creation order", want: []string{"Rahul 50%_off", "Priya", "Amit"}},
		{name: "search is case-insensitive", filter: ports.ParcelFilter{Search: "PRI"}, want: []string{"Priya"}},
		{name: "search by phone", filter: ports.ParcelFilter{Search: "0100"}, want: []string{"Amit"}},
		{name: "search by tracking id", filter: ports.ParcelFilter{Search: "zmd000003"}, want: []string{"Amit"}},
		{name: "wildcards are literal", filter: ports.ParcelFilter{Search: "%_"}, want: []string{"Rahul 50%_off"}},
		{name: "status", filter: ports.ParcelFilter{Statuses: []parcel.Status{parcel.StatusPickedUp}}, want: []string{"Priya"}},
		{name: "driver", filter: ports.ParcelFilter{DriverID: "3"}, want: []string{"Priya"}},
		{name: "customer", filter: ports.ParcelFilter{CustomerID: "4"}, want: []string{"Priya"}},
		{name: "vendor", filter: ports.ParcelFilter{VendorID: "2"}, want: []string{"Rahul 50%_off"}},
		{name: "no match", filter: ports.ParcelFilter{Search: "nobody"}, want: []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			parcels, err := suite.repository.List(ctx, tt.filter)
			suite.Require().NoError(err)

			names := make([]string, 0, len(parcels))
			for _, p := range parcels {
				names = append(names, p.CustomerName())
			}
			suite.Equal(tt.want, names)
		})
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(n int, modify func(d *parcel.Details)) *parcel.Parcel {
	trackingID, err := parcel.ParseTrackingID(fmt.Sprintf("ZMD%06dTEST", n))
	suite.Require().NoError(err)

	details := parcel.Details{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "+91-9876543210",
		PickupAddress:   "12 MG Road, Bengaluru",
		DeliveryAddress: "4 Park Street, Kolkata",
		Pincode:         "700016",
		Size:            parcel.SizeMedium,
		WeightKg:        3,
	}
	if modify != nil {
		modify(&details)
	}

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, details, time.Now())
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) withCreatedAt(p *parcel.Parcel, at time.Time) *parcel.Parcel {
	snap := p.Snapshot()
	snap.CreatedAt = at
	restored, err := parcel.RestoreParcel(snap)
	suite.Require().NoError(err)
	return restored
}
