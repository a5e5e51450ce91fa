package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE parcels, delivery_orders, delivery_order_parcels, outbox_messages",
	).Error)
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitStoresParcelAndOutbox() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := newParcel(suite, "ZMD000001AAAA")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	changed, err := p.Advance()
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(p.Events(), "events are cleared once stored")

	stored, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusPickedUp, stored.Status())
	suite.Equal(p.DeliveryFee(), stored.DeliveryFee())

	pending, err := suite.factory.Create().OutboxRepository().FetchPending(ctx, 0)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(parcel.EventCreated, pending[0].EventName)
	suite.Equal(parcel.EventStatusChanged, pending[1].EventName)
	suite.True(p.ID().IsEqual(pending[1].AggregateID))

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(pending[1].Payload, &payload))
	suite.Equal("pending", payload["from"])
	suite.Equal("picked_up", payload["to"])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := newParcel(suite, "ZMD000002AAAA")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	pending, err := suite.factory.Create().OutboxRepository().FetchPending(ctx, 0)
	suite.Require().NoError(err)
	suite.Empty(pending)
	suite.Len(p.Events(), 1, "events survive a rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateTrackingIDKeepsTransactionUsable() {
	ctx := context.Background()
	first := newParcel(suite, "ZMD000003AAAA")
	suite.Require().NoError(suite.factory.Create().ParcelRepository().Add(ctx, first))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	clash := newParcel(suite, "ZMD000003AAAA")
	err := uow.ParcelRepository().Add(ctx, clash)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	retry := newParcel(suite, "ZMD000003BBBB")
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, retry))
	suite.Require().NoError(uow.Commit(ctx))

	exists, err := suite.factory.Create().ParcelRepository().ExistsTrackingID(ctx, retry.TrackingID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	p1 := newParcel(suite, "ZMD000004AAAA")
	p2 := newParcel(suite, "ZMD000005AAAA")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.ParcelRepository().Add(ctx, p1))
	suite.Require().NoError(uow2.ParcelRepository().Add(ctx, p2))

	_, err := uow1.ParcelRepository().GetByTrackingID(ctx, p2.TrackingID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uow1 must not see uncommitted p2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	_, err = suite.factory.Create().ParcelRepository().Get(ctx, p1.ID())
	suite.Require().NoError(err)
	_, err = suite.factory.Create().ParcelRepository().Get(ctx, p2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeliveryOrderWithParcels() {
	ctx := context.Background()
	uow := suite.factory.Create()
	orderID := kernel.NewUUID()

	p1 := newParcel(suite, "ZMD000006AAAA")
	p2 := newParcel(suite, "ZMD000007AAAA")
	order, err := deliveryorder.NewDeliveryOrder(orderID, "2", "Vendor Ltd",
		[]kernel.UUID{p2.ID(), p1.ID()}, "", time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p1))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p2))
	suite.Require().NoError(uow.DeliveryOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().DeliveryOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{p2.ID(), p1.ID()}, stored.ParcelIDs(), "submission order is kept")

	suite.True(stored.Advance())
	suite.Require().NoError(suite.factory.Create().DeliveryOrderRepository().Update(ctx, stored))

	orders, err := suite.factory.Create().DeliveryOrderRepository().List(ctx, "2")
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(deliveryorder.StatusProcessing, orders[0].Status())

	none, err := suite.factory.Create().DeliveryOrderRepository().List(ctx, "99")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxMarkSent() {
	ctx := context.Background()
	suite.Require().NoError(commitParcel(suite, newParcel(suite, "ZMD000008AAAA")))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	pending, err := uow.OutboxRepository().FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Require().NoError(uow.OutboxRepository().MarkSent(ctx, pending[0].ID, time.Now()))
	suite.Require().NoError(uow.Commit(ctx))

	pending, err = suite.factory.Create().OutboxRepository().FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	err = suite.factory.Create().OutboxRepository().MarkSent(ctx, kernel.NewUUID(), time.Now())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func commitParcel(suite *UnitOfWorkIntegrationTestSuite, p *parcel.Parcel) error {
	ctx := context.Background()
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()
	if err := uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func newParcel(suite *UnitOfWorkIntegrationTestSuite, trackingID string) *parcel.Parcel {
	tid, err := parcel.ParseTrackingID(trackingID)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), tid, parcel.Details{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "+91-9876543210",
		VendorID:        "2",
		PickupAddress:   "12 MG Road, Bengaluru",
		DeliveryAddress: "4 Park Street, Kolkata",
		Pincode:         "700016",
		Size:            parcel.SizeLarge,
		WeightKg:        12,
	}, time.Now())
	suite.Require().NoError(err)
	return p
}
