package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestMetrics records one observation per handled request.
type RequestMetrics interface {
	ObserveRequest(method, route string, code int, elapsed time.Duration)
}

// RequestValidator checks every API request against the OpenAPI document before
// it reaches a handler. Schema violations are answered with 400 and the offending
// fields, e.g. "parcels[0].weight". Authentication is left to SessionMiddleware.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return err
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return writeError(c, http.StatusBadRequest, "Request does not match the API schema", schemaFields(err))
			}
			return next(c)
		}
	}, nil
}

func schemaFields(err error) []string {
	var fields []string
	collectSchemaFields(err, &fields)
	return fields
}

// collectSchemaFields walks the kin-openapi error tree by type. errors.As is not
// used because openapi3.MultiError answers As on behalf of its first match.
func collectSchemaFields(err error, out *[]string) {
	switch e := err.(type) { //nolint:errorlint // see above
	case openapi3.MultiError:
		for _, inner := range e {
			collectSchemaFields(inner, out)
		}
	case *openapi3filter.RequestError:
		if e.Parameter != nil {
			addField(out, e.Parameter.Name)
			return
		}
		before := len(*out)
		if e.Err != nil {
			collectSchemaFields(e.Err, out)
		}
		if len(*out) == before {
			addField(out, "body")
		}
	case *openapi3.SchemaError:
		addField(out, fieldPath(e.JSONPointer()))
	}
}

// fieldPath renders a JSON pointer such as [parcels 0 weight] as parcels[0].weight.
func fieldPath(pointer []string) string {
	var b strings.Builder
	for _, part := range pointer {
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	if b.Len() == 0 {
		return "body"
	}
	return b.String()
}

func addField(out *[]string, field string) {
	for _, f := range *out {
		if f == field {
			return
		}
	}
	*out = append(*out, field)
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// MetricsMiddleware reports method, matched route and status code of every request.
func MetricsMiddleware(metrics RequestMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					code = httpErr.Code
				} else {
					code = http.StatusInternalServerError
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.ObserveRequest(c.Request().Method, route, code, time.Since(start))
			return err
		}
	}
}
