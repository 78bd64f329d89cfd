package http

import (
	"fmt"
	"log/slog"

	"sellerdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const defaultBodyLimit = "20M"

// NewRouter builds the echo instance serving the console API: request
// logging, panic recovery, OpenAPI validation with session authentication,
// the generated routes and swagger-ui.
func NewRouter(server *Server, sessions SessionResolver, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(defaultBodyLimit))
	e.Use(requestLogger(logger))

	docs, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(e, docs); err != nil {
		return nil, err
	}

	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(spec, sessions, "/swagger")
	if err != nil {
		return nil, fmt.Errorf("openapi validator: %w", err)
	}
	e.Use(validator)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "Request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "Request handled", attrs...)
			return nil
		},
	})
}
