package http

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// SessionService signs users in and resolves bearer tokens.
type SessionService interface {
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Logout(ctx context.Context, token string)
	Resolve(ctx context.Context, token string) (auth.Session, error)
}

// CommandHandlers groups the use cases that change state.
type CommandHandlers struct {
	CreateParcel         commands.CreateParcelCommandHandler
	AdvanceParcel        commands.AdvanceParcelStatusCommandHandler
	CancelParcel         commands.CancelParcelCommandHandler
	ResumeParcel         commands.ResumeParcelCommandHandler
	AssignDriver         commands.AssignDriverCommandHandler
	CreateDeliveryOrder  commands.CreateDeliveryOrderCommandHandler
	AdvanceDeliveryOrder commands.AdvanceDeliveryOrderCommandHandler
}

// QueryHandlers groups the read-only use cases.
type QueryHandlers struct {
	ListParcels        queries.ListParcelsQueryHandler
	TrackParcel        queries.GetParcelByTrackingIDQueryHandler
	ParcelStats        queries.GetParcelStatsQueryHandler
	DriverRoutes       queries.GetDriverRoutesQueryHandler
	DriverReport       queries.GetDriverReportQueryHandler
	ListDeliveryOrders queries.ListDeliveryOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions SessionService
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	sessions SessionService,
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	logger *slog.Logger,
) *Server {
	return &Server{
		sessions: sessions,
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http"),
	}
}
