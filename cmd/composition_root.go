package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	httpadapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/credentials"
	"parcelhub/internal/adapters/out/kafka"
	"parcelhub/internal/adapters/out/memory"
	"parcelhub/internal/adapters/out/metrics"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/deliveryorderrepo"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	parcels    queries.ParcelReader
	orders     queries.DeliveryOrderReader
	generator  commands.TrackingIDGenerator
	metrics    *metrics.Metrics
}

// NewCompositionRoot wires the storage selected by config. gormDB is only used, and
// then required, when StorageDriver is postgres.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:    config,
		logger:    logger,
		generator: parcel.NewTrackingIDGenerator(),
		metrics:   metrics.NewMetrics(),
	}

	switch config.StorageDriver {
	case StoragePostgres:
		if gormDB == nil {
			return nil, fmt.Errorf("storage driver %s needs a database connection", StoragePostgres)
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.parcels = parcelrepo.NewGormParcelRepository(gormDB, nil, false)
		c.orders = deliveryorderrepo.NewGormDeliveryOrderRepository(gormDB)
	default:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.parcels = memory.NewParcelRepository(store)
		c.orders = memory.NewDeliveryOrderRepository(store)
	}

	return c, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.generator)
}

func (c *CompositionRoot) CreateAdvanceParcelStatusCommandHandler() commands.AdvanceParcelStatusCommandHandler {
	return commands.NewAdvanceParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateResumeParcelCommandHandler() commands.ResumeParcelCommandHandler {
	return commands.NewResumeParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryOrderCommandHandler(f, c.generator)
}

func (c *CompositionRoot) CreateAdvanceDeliveryOrderCommandHandler() commands.AdvanceDeliveryOrderCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateGetParcelByTrackingIDQueryHandler() queries.GetParcelByTrackingIDQueryHandler {
	return queries.NewGetParcelByTrackingIDQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateGetParcelStatsQueryHandler() queries.GetParcelStatsQueryHandler {
	return queries.NewGetParcelStatsQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateGetDriverRoutesQueryHandler() queries.GetDriverRoutesQueryHandler {
	return queries.NewGetDriverRoutesQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateGetDriverReportQueryHandler() queries.GetDriverReportQueryHandler {
	return queries.NewGetDriverReportQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateListDeliveryOrdersQueryHandler() queries.ListDeliveryOrdersQueryHandler {
	return queries.NewListDeliveryOrdersQueryHandler(c.orders)
}

// CreateSessionService checks logins against AUTH_USERS, or the demo accounts when it
// is empty.
func (c *CompositionRoot) CreateSessionService() (*auth.Service, error) {
	var (
		accounts []credentials.Account
		err      error
	)
	if c.config.AuthUsers == "" {
		c.logger.Warn("AUTH_USERS is empty, signing in with the demo accounts")
		accounts, err = credentials.DemoAccounts(bcrypt.DefaultCost)
	} else {
		accounts, err = credentials.ParseAccounts(c.config.AuthUsers)
	}
	if err != nil {
		return nil, err
	}

	verifier, err := credentials.NewStaticVerifier(accounts)
	if err != nil {
		return nil, err
	}
	return auth.NewService(verifier, c.config.SessionTTL), nil
}

// CreateEventPublisher connects to Kafka, or logs the events when no broker is set.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, error) {
	if c.config.KafkaHost == "" {
		c.logger.Warn("KAFKA_HOST is empty, parcel events are only logged")
		return kafka.NewLogPublisher(c.logger), nil
	}
	return kafka.NewSaramaPublisher(strings.Join(c.config.KafkaBrokers(), ","), c.config.KafkaParcelChangedTopic, c.logger)
}

func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(publisher),
			c.metrics,
			c.config.OutboxRelaySchedule,
			c.config.OutboxRelayBatchSize,
			c.logger,
		),
		jobs.NewStatsSnapshotJob(
			c.CreateGetParcelStatsQueryHandler(),
			c.metrics,
			c.config.StatsSnapshotSchedule,
			c.logger,
		),
	)
}

// CreateRouter builds the HTTP API with every handler and the request metrics.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	sessions, err := c.CreateSessionService()
	if err != nil {
		return nil, fmt.Errorf("session service: %w", err)
	}

	server := httpadapter.NewServer(
		sessions,
		httpadapter.CommandHandlers{
			CreateParcel:         c.CreateCreateParcelCommandHandler(),
			AdvanceParcel:        c.CreateAdvanceParcelStatusCommandHandler(),
			CancelParcel:         c.CreateCancelParcelCommandHandler(),
			ResumeParcel:         c.CreateResumeParcelCommandHandler(),
			AssignDriver:         c.CreateAssignDriverCommandHandler(),
			CreateDeliveryOrder:  c.CreateCreateDeliveryOrderCommandHandler(),
			AdvanceDeliveryOrder: c.CreateAdvanceDeliveryOrderCommandHandler(),
		},
		httpadapter.QueryHandlers{
			ListParcels:        c.CreateListParcelsQueryHandler(),
			TrackParcel:        c.CreateGetParcelByTrackingIDQueryHandler(),
			ParcelStats:        c.CreateGetParcelStatsQueryHandler(),
			DriverRoutes:       c.CreateGetDriverRoutesQueryHandler(),
			DriverReport:       c.CreateGetDriverReportQueryHandler(),
			ListDeliveryOrders: c.CreateListDeliveryOrdersQueryHandler(),
		},
		c.logger,
	)
	return httpadapter.NewRouter(server, c.metrics)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
