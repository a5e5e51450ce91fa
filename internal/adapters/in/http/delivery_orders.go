package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListDeliveryOrders handles GET /api/v1/delivery-orders. Vendors see only their own.
func (s *Server) ListDeliveryOrders(ctx echo.Context, params servers.ListDeliveryOrdersParams) error {
	u, err := authorize(ctx, user.RoleAdmin, user.RoleVendor)
	if err != nil {
		return s.fail(ctx, err)
	}

	vendorID := deref(params.VendorId)
	if u.Role == user.RoleVendor {
		vendorID = u.ID
	}

	orders, err := s.queries.ListDeliveryOrders.Handle(ctx.Request().Context(), queries.NewListDeliveryOrdersQuery(vendorID))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DeliveryOrder, len(orders))
	for i, o := range orders {
		response[i] = toDeliveryOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryOrder handles POST /api/v1/delivery-orders.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	u, err := authorize(ctx, user.RoleAdmin, user.RoleVendor)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewDeliveryOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	vendorID := deref(body.VendorId)
	if u.Role == user.RoleVendor {
		vendorID = u.ID
	}

	details := make([]parcel.Details, len(body.Parcels))
	for i, p := range body.Parcels {
		details[i] = toDetails(p)
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(vendorID, body.VendorName, deref(body.FileUrl), details)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.commands.CreateDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryOrderCreated{
		Order:   toDeliveryOrder(res.Order),
		Parcels: toParcels(res.Parcels),
	})
}

// AdvanceDeliveryOrder handles POST /api/v1/delivery-orders/{orderId}/advance.
func (s *Server) AdvanceDeliveryOrder(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := authorize(ctx, user.RoleAdmin, user.RoleVendor); err != nil {
		return s.fail(ctx, err)
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	order, err := s.commands.AdvanceDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryOrder(order))
}
