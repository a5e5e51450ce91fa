// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and the echo wrapper mirror openapi.yaml in this directory.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for DeliveryOrderStatus.
const (
	DeliveryOrderStatusCompleted      DeliveryOrderStatus = "completed"
	DeliveryOrderStatusPending        DeliveryOrderStatus = "pending"
	DeliveryOrderStatusPickedUp       DeliveryOrderStatus = "picked_up"
	DeliveryOrderStatusProcessing     DeliveryOrderStatus = "processing"
	DeliveryOrderStatusReadyForPickup DeliveryOrderStatus = "ready_for_pickup"
)

// Defines values for ParcelSize.
const (
	ParcelSizeExtraLarge ParcelSize = "extra_large"
	ParcelSizeLarge      ParcelSize = "large"
	ParcelSizeMedium     ParcelSize = "medium"
	ParcelSizeSmall      ParcelSize = "small"
)

// Defines values for ParcelStatus.
const (
	ParcelStatusCancelled      ParcelStatus = "cancelled"
	ParcelStatusDelivered      ParcelStatus = "delivered"
	ParcelStatusInTransit      ParcelStatus = "in_transit"
	ParcelStatusOutForDelivery ParcelStatus = "out_for_delivery"
	ParcelStatusPending        ParcelStatus = "pending"
	ParcelStatusPickedUp       ParcelStatus = "picked_up"
)

// Defines values for UserRole.
const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
	UserRoleDriver   UserRole = "driver"
	UserRoleVendor   UserRole = "vendor"
)

// AssignDriverRequest defines model for AssignDriverRequest.
type AssignDriverRequest struct {
	DriverId string `json:"driverId"`
}

// DeliveryOrder defines model for DeliveryOrder.
type DeliveryOrder struct {
	FileUrl      *string              `json:"fileUrl,omitempty"`
	Id           openapi_types.UUID   `json:"id"`
	OrderDate    time.Time            `json:"orderDate"`
	ParcelIds    []openapi_types.UUID `json:"parcelIds"`
	Status       DeliveryOrderStatus  `json:"status"`
	TotalParcels int                  `json:"totalParcels"`
	VendorId     string               `json:"vendorId"`
	VendorName   string               `json:"vendorName"`
}

// DeliveryOrderCreated defines model for DeliveryOrderCreated.
type DeliveryOrderCreated struct {
	Order   DeliveryOrder `json:"order"`
	Parcels []Parcel      `json:"parcels"`
}

// DeliveryOrderStatus defines model for DeliveryOrderStatus.
type DeliveryOrderStatus string

// DriverReport defines model for DriverReport.
type DriverReport struct {
	Delivered int    `json:"delivered"`
	DriverId  string `json:"driverId"`
	Failed    int    `json:"failed"`
	Pending   int    `json:"pending"`
}

// Error defines model for Error.
type Error struct {
	Code    int       `json:"code"`
	Fields  *[]string `json:"fields,omitempty"`
	Message string    `json:"message"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewDeliveryOrder defines model for NewDeliveryOrder.
type NewDeliveryOrder struct {
	FileUrl    *string     `json:"fileUrl,omitempty"`
	Parcels    []NewParcel `json:"parcels"`
	VendorId   *string     `json:"vendorId,omitempty"`
	VendorName string      `json:"vendorName"`
}

// NewParcel defines model for NewParcel.
type NewParcel struct {
	CustomerEmail       *string    `json:"customerEmail,omitempty"`
	CustomerId          *string    `json:"customerId,omitempty"`
	CustomerName        string     `json:"customerName"`
	CustomerPhone       string     `json:"customerPhone"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	IsFragile           *bool      `json:"isFragile,omitempty"`
	ParcelSize          ParcelSize `json:"parcelSize"`
	PickupAddress       string     `json:"pickupAddress"`
	Pincode             *string    `json:"pincode,omitempty"`
	RequiresSignature   *bool      `json:"requiresSignature,omitempty"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`
	VendorId            *string    `json:"vendorId,omitempty"`

	// Weight Weight in kilograms, greater than zero
	Weight float64 `json:"weight"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	AssignedDriverId    *string             `json:"assignedDriverId,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	CustomerEmail       *string             `json:"customerEmail,omitempty"`
	CustomerId          *string             `json:"customerId,omitempty"`
	CustomerName        string              `json:"customerName"`
	CustomerPhone       string              `json:"customerPhone"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	DeliveryFee         float64             `json:"deliveryFee"`
	DeliveryOrderId     *openapi_types.UUID `json:"deliveryOrderId,omitempty"`
	Id                  openapi_types.UUID  `json:"id"`
	IsFragile           bool                `json:"isFragile"`
	ParcelSize          ParcelSize          `json:"parcelSize"`
	PickupAddress       string              `json:"pickupAddress"`
	Pincode             string              `json:"pincode"`
	RequiresSignature   bool                `json:"requiresSignature"`
	SpecialInstructions *string             `json:"specialInstructions,omitempty"`
	Status              ParcelStatus        `json:"status"`
	TrackingId          string              `json:"trackingId"`
	VendorId            *string             `json:"vendorId,omitempty"`
	Weight              float64             `json:"weight"`
}

// ParcelSize defines model for ParcelSize.
type ParcelSize string

// ParcelStats defines model for ParcelStats.
type ParcelStats struct {
	ByStatus  map[string]int `json:"byStatus"`
	Cancelled int            `json:"cancelled"`
	Delivered int            `json:"delivered"`

	// InTransit picked_up, in_transit and out_for_delivery together
	InTransit int     `json:"inTransit"`
	Pending   int     `json:"pending"`
	Revenue   float64 `json:"revenue"`
	Total     int     `json:"total"`
}

// ParcelStatus defines model for ParcelStatus.
type ParcelStatus string

// PincodeGroup defines model for PincodeGroup.
type PincodeGroup struct {
	Parcels []Parcel `json:"parcels"`
	Pincode string   `json:"pincode"`
}

// Session defines model for Session.
type Session struct {
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
}

// User defines model for User.
type User struct {
	Email string   `json:"email"`
	Id    string   `json:"id"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// UserRole defines model for UserRole.
type UserRole string

// DriverId defines model for DriverId.
type DriverId = string

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ParcelId defines model for ParcelId.
type ParcelId = openapi_types.UUID

// StatusQuery defines model for StatusQuery.
type StatusQuery = []ParcelStatus

// VendorIdQuery defines model for VendorIdQuery.
type VendorIdQuery = string

// ListDeliveryOrdersParams defines parameters for ListDeliveryOrders.
type ListDeliveryOrdersParams struct {
	VendorId *VendorIdQuery `form:"vendorId,omitempty" json:"vendorId,omitempty"`
}

// GetDriverRoutesParams defines parameters for GetDriverRoutes.
type GetDriverRoutesParams struct {
	Status *StatusQuery `form:"status,omitempty" json:"status,omitempty"`
}

// ListParcelsParams defines parameters for ListParcels.
type ListParcelsParams struct {
	Search     *string        `form:"search,omitempty" json:"search,omitempty"`
	Status     *StatusQuery   `form:"status,omitempty" json:"status,omitempty"`
	DriverId   *string        `form:"driverId,omitempty" json:"driverId,omitempty"`
	CustomerId *string        `form:"customerId,omitempty" json:"customerId,omitempty"`
	VendorId   *VendorIdQuery `form:"vendorId,omitempty" json:"vendorId,omitempty"`
}

// GetParcelStatsParams defines parameters for GetParcelStats.
type GetParcelStatsParams struct {
	VendorId *VendorIdQuery `form:"vendorId,omitempty" json:"vendorId,omitempty"`
}

// CreateDeliveryOrderJSONRequestBody defines body for CreateDeliveryOrder for application/json ContentType.
type CreateDeliveryOrderJSONRequestBody = NewDeliveryOrder

// CreateParcelJSONRequestBody defines body for CreateParcel for application/json ContentType.
type CreateParcelJSONRequestBody = NewParcel

// AssignDriverJSONRequestBody defines body for AssignDriver for application/json ContentType.
type AssignDriverJSONRequestBody = AssignDriverRequest

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/delivery-orders)
	ListDeliveryOrders(ctx echo.Context, params ListDeliveryOrdersParams) error

	// (POST /api/v1/delivery-orders)
	CreateDeliveryOrder(ctx echo.Context) error

	// (POST /api/v1/delivery-orders/{orderId}/advance)
	AdvanceDeliveryOrder(ctx echo.Context, orderId OrderId) error

	// (GET /api/v1/drivers/{driverId}/report)
	GetDriverReport(ctx echo.Context, driverId DriverId) error

	// (GET /api/v1/drivers/{driverId}/routes)
	GetDriverRoutes(ctx echo.Context, driverId DriverId, params GetDriverRoutesParams) error

	// (GET /api/v1/parcels)
	ListParcels(ctx echo.Context, params ListParcelsParams) error

	// (POST /api/v1/parcels)
	CreateParcel(ctx echo.Context) error

	// (GET /api/v1/parcels/stats)
	GetParcelStats(ctx echo.Context, params GetParcelStatsParams) error

	// (GET /api/v1/parcels/tracking/{trackingId})
	TrackParcel(ctx echo.Context, trackingId string) error

	// (POST /api/v1/parcels/{parcelId}/advance)
	AdvanceParcel(ctx echo.Context, parcelId ParcelId) error

	// (POST /api/v1/parcels/{parcelId}/cancel)
	CancelParcel(ctx echo.Context, parcelId ParcelId) error

	// (PUT /api/v1/parcels/{parcelId}/driver)
	AssignDriver(ctx echo.Context, parcelId ParcelId) error

	// (POST /api/v1/parcels/{parcelId}/resume)
	ResumeParcel(ctx echo.Context, parcelId ParcelId) error

	// (POST /api/v1/sessions)
	Login(ctx echo.Context) error

	// (DELETE /api/v1/sessions/current)
	Logout(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDeliveryOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveryOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListDeliveryOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "vendorId", ctx.QueryParams(), &params.VendorId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vendorId: %s", err))
	}

	err = w.Handler.ListDeliveryOrders(ctx, params)
	return err
}

// CreateDeliveryOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	err = w.Handler.CreateDeliveryOrder(ctx)
	return err
}

// AdvanceDeliveryOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceDeliveryOrder(ctx echo.Context) error {
	var err error
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	err = w.Handler.AdvanceDeliveryOrder(ctx, orderId)
	return err
}

// GetDriverReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriverReport(ctx echo.Context) error {
	var err error
	var driverId DriverId

	err = runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	err = w.Handler.GetDriverReport(ctx, driverId)
	return err
}

// GetDriverRoutes converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriverRoutes(ctx echo.Context) error {
	var err error
	var driverId DriverId

	err = runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	var params GetDriverRoutesParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = w.Handler.GetDriverRoutes(ctx, driverId, params)
	return err
}

// ListParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListParcelsParams

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "driverId", ctx.QueryParams(), &params.DriverId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "vendorId", ctx.QueryParams(), &params.VendorId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vendorId: %s", err))
	}

	err = w.Handler.ListParcels(ctx, params)
	return err
}

// CreateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	err = w.Handler.CreateParcel(ctx)
	return err
}

// GetParcelStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelStats(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params GetParcelStatsParams

	err = runtime.BindQueryParameter("form", true, false, "vendorId", ctx.QueryParams(), &params.VendorId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vendorId: %s", err))
	}

	err = w.Handler.GetParcelStats(ctx, params)
	return err
}

// TrackParcel converts echo context to params.
func (w *ServerInterfaceWrapper) TrackParcel(ctx echo.Context) error {
	var err error
	var trackingId string

	err = runtime.BindStyledParameterWithOptions("simple", "trackingId", ctx.Param("trackingId"), &trackingId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter trackingId: %s", err))
	}

	err = w.Handler.TrackParcel(ctx, trackingId)
	return err
}

// AdvanceParcel converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceParcel(ctx echo.Context) error {
	return w.withParcelID(ctx, w.Handler.AdvanceParcel)
}

// CancelParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CancelParcel(ctx echo.Context) error {
	return w.withParcelID(ctx, w.Handler.CancelParcel)
}

// AssignDriver converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	return w.withParcelID(ctx, w.Handler.AssignDriver)
}

// ResumeParcel converts echo context to params.
func (w *ServerInterfaceWrapper) ResumeParcel(ctx echo.Context) error {
	return w.withParcelID(ctx, w.Handler.ResumeParcel)
}

func (w *ServerInterfaceWrapper) withParcelID(ctx echo.Context, next func(echo.Context, ParcelId) error) error {
	var err error
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	return next(ctx, parcelId)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.Logout(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/delivery-orders", wrapper.ListDeliveryOrders)
	router.POST(baseURL+"/api/v1/delivery-orders", wrapper.CreateDeliveryOrder)
	router.POST(baseURL+"/api/v1/delivery-orders/:orderId/advance", wrapper.AdvanceDeliveryOrder)
	router.GET(baseURL+"/api/v1/drivers/:driverId/report", wrapper.GetDriverReport)
	router.GET(baseURL+"/api/v1/drivers/:driverId/routes", wrapper.GetDriverRoutes)
	router.GET(baseURL+"/api/v1/parcels", wrapper.ListParcels)
	router.POST(baseURL+"/api/v1/parcels", wrapper.CreateParcel)
	router.GET(baseURL+"/api/v1/parcels/stats", wrapper.GetParcelStats)
	router.GET(baseURL+"/api/v1/parcels/tracking/:trackingId", wrapper.TrackParcel)
	router.POST(baseURL+"/api/v1/parcels/:parcelId/advance", wrapper.AdvanceParcel)
	router.POST(baseURL+"/api/v1/parcels/:parcelId/cancel", wrapper.CancelParcel)
	router.PUT(baseURL+"/api/v1/parcels/:parcelId/driver", wrapper.AssignDriver)
	router.POST(baseURL+"/api/v1/parcels/:parcelId/resume", wrapper.ResumeParcel)
	router.POST(baseURL+"/api/v1/sessions", wrapper.Login)
	router.DELETE(baseURL+"/api/v1/sessions/current", wrapper.Logout)
}
