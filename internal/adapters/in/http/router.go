package http

import (
	"net/http"

	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// MetricsExporter is RequestMetrics plus the handler serving the collected series.
type MetricsExporter interface {
	RequestMetrics
	Handler() http.Handler
}

// NewRouter builds the echo instance serving the API together with /health,
// /api/openapi.json and the Swagger UI. metrics may be nil.
func NewRouter(server *Server, metrics MetricsExporter) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(server.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(server.logger))
	if metrics != nil {
		e.Use(MetricsMiddleware(metrics))
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.json")))

	api := e.Group("", validator, SessionMiddleware(server.sessions))
	servers.RegisterHandlers(api, server)

	return e, nil
}
