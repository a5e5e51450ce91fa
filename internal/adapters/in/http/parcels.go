package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListParcels handles GET /api/v1/parcels. Vendors, drivers and customers only see
// their own parcels whatever filter they pass.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	u, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	statuses, err := toStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	filter := ports.ParcelFilter{
		Search:     deref(params.Search),
		Statuses:   statuses,
		DriverID:   deref(params.DriverId),
		CustomerID: deref(params.CustomerId),
		VendorID:   deref(params.VendorId),
	}
	switch u.Role {
	case user.RoleVendor:
		filter.VendorID = u.ID
	case user.RoleDriver:
		filter.DriverID = u.ID
	case user.RoleCustomer:
		filter.CustomerID = u.ID
	case user.RoleAdmin:
	}

	query, err := queries.NewListParcelsQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcels, err := s.queries.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(parcels))
}

// CreateParcel handles POST /api/v1/parcels. A vendor always creates under their own
// vendor ID and a customer under their own customer ID.
func (s *Server) CreateParcel(ctx echo.Context) error {
	u, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewParcel
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	details := toDetails(body)
	switch u.Role {
	case user.RoleVendor:
		details.VendorID = u.ID
	case user.RoleCustomer:
		details.CustomerID = u.ID
	case user.RoleAdmin, user.RoleDriver:
	}

	cmd, err := commands.NewCreateParcelCommand(details)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toParcel(p))
}

// GetParcelStats handles GET /api/v1/parcels/stats.
func (s *Server) GetParcelStats(ctx echo.Context, params servers.GetParcelStatsParams) error {
	u, err := authorize(ctx, user.RoleAdmin, user.RoleVendor)
	if err != nil {
		return s.fail(ctx, err)
	}

	vendorID := deref(params.VendorId)
	if u.Role == user.RoleVendor {
		vendorID = u.ID
	}

	stats, err := s.queries.ParcelStats.Handle(ctx.Request().Context(), queries.NewGetParcelStatsQuery(vendorID))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStats(stats))
}

// TrackParcel handles GET /api/v1/parcels/tracking/{trackingId}. No session is needed.
func (s *Server) TrackParcel(ctx echo.Context, trackingId string) error {
	query := queries.NewGetParcelByTrackingIDQuery(trackingId)

	res, err := s.queries.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !res.Found {
		return writeError(ctx, http.StatusNotFound, "No parcel with this tracking ID", nil)
	}

	return ctx.JSON(http.StatusOK, toParcel(res.Parcel))
}

// AdvanceParcel handles POST /api/v1/parcels/{parcelId}/advance.
func (s *Server) AdvanceParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	return s.changeParcel(ctx, parcelId, []user.Role{user.RoleAdmin, user.RoleDriver},
		func(id kernel.UUID) (*parcel.Parcel, error) {
			cmd, err := commands.NewAdvanceParcelStatusCommand(id)
			if err != nil {
				return nil, err
			}
			return s.commands.AdvanceParcel.Handle(ctx.Request().Context(), cmd)
		})
}

// CancelParcel handles POST /api/v1/parcels/{parcelId}/cancel.
func (s *Server) CancelParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	return s.changeParcel(ctx, parcelId, []user.Role{user.RoleAdmin, user.RoleVendor},
		func(id kernel.UUID) (*parcel.Parcel, error) {
			cmd, err := commands.NewCancelParcelCommand(id)
			if err != nil {
				return nil, err
			}
			return s.commands.CancelParcel.Handle(ctx.Request().Context(), cmd)
		})
}

// ResumeParcel handles POST /api/v1/parcels/{parcelId}/resume.
func (s *Server) ResumeParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	return s.changeParcel(ctx, parcelId, []user.Role{user.RoleAdmin},
		func(id kernel.UUID) (*parcel.Parcel, error) {
			cmd, err := commands.NewResumeParcelCommand(id)
			if err != nil {
				return nil, err
			}
			return s.commands.ResumeParcel.Handle(ctx.Request().Context(), cmd)
		})
}

// AssignDriver handles PUT /api/v1/parcels/{parcelId}/driver.
func (s *Server) AssignDriver(ctx echo.Context, parcelId servers.ParcelId) error {
	var body servers.AssignDriverRequest
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	return s.changeParcel(ctx, parcelId, []user.Role{user.RoleAdmin},
		func(id kernel.UUID) (*parcel.Parcel, error) {
			cmd, err := commands.NewAssignDriverCommand(id, body.DriverId)
			if err != nil {
				return nil, err
			}
			return s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd)
		})
}

func (s *Server) changeParcel(
	ctx echo.Context,
	parcelID servers.ParcelId,
	roles []user.Role,
	change func(kernel.UUID) (*parcel.Parcel, error),
) error {
	if _, err := authorize(ctx, roles...); err != nil {
		return s.fail(ctx, err)
	}

	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := change(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcel(p))
}
