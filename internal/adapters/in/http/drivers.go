package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDriverRoutes handles GET /api/v1/drivers/{driverId}/routes.
func (s *Server) GetDriverRoutes(ctx echo.Context, driverId servers.DriverId, params servers.GetDriverRoutesParams) error {
	if err := authorizeDriver(ctx, driverId); err != nil {
		return s.fail(ctx, err)
	}

	statuses, err := toStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDriverRoutesQuery(driverId, statuses)
	if err != nil {
		return s.fail(ctx, err)
	}

	groups, err := s.queries.DriverRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPincodeGroups(groups))
}

// GetDriverReport handles GET /api/v1/drivers/{driverId}/report.
func (s *Server) GetDriverReport(ctx echo.Context, driverId servers.DriverId) error {
	if err := authorizeDriver(ctx, driverId); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDriverReportQuery(driverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.queries.DriverReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DriverReport{
		DriverId:  report.DriverID,
		Delivered: report.Delivered,
		Pending:   report.Pending,
		Failed:    report.Failed,
	})
}

// authorizeDriver lets admins read any driver and drivers read only themselves.
func authorizeDriver(ctx echo.Context, driverID string) error {
	u, err := authorize(ctx, user.RoleAdmin, user.RoleDriver)
	if err != nil {
		return err
	}
	if u.Role == user.RoleDriver && u.ID != driverID {
		return errForbidden
	}
	return nil
}
