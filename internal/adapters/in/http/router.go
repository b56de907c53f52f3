package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "shift/internal/adapters/in/http/docs" // registers the swagger document
	"shift/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RequestTimeout bounds every request's context.
const RequestTimeout = 10 * time.Second

// NewRouter builds the echo instance serving s. It fails when the OpenAPI
// document cannot be loaded.
func NewRouter(s *Server, log *slog.Logger) (*echo.Echo, error) {
	validator, err := requestValidator()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.ContextTimeout(RequestTimeout))
	e.Use(requestLogger(log))
	e.Use(validator)

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, s)

	return e, nil
}

// Health handles GET /health - liveness check.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// handleError renders errors that escape a handler, such as unknown routes or
// undecodable path parameters, as an Error body.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if err := s.fail(c, err); err != nil {
		s.log.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", err))
	}
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	log = log.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			log.LogAttrs(c.Request().Context(), slog.LevelDebug, "request", attrs...)
			return nil
		},
	})
}
