// routes.go - Route registration and middleware
package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mth5meta/internal/attrs"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Table   *attrs.Table
	Version string

	// BodyLimit caps request bodies, e.g. "4M". Empty means no limit.
	BodyLimit string
	// RequestLogging enables per-request access logs.
	RequestLogging bool
}

// New returns an echo instance with middleware and routes in place.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	SetupMiddleware(e, deps)
	RegisterRoutes(e, NewHandler(deps.Table, deps.Version))

	return e
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	api := e.Group("/api")
	api.POST("/flatten", h.HandleFlatten)
	api.POST("/structure", h.HandleStructure)
	api.POST("/xml/render", h.HandleRender)
	api.POST("/xml/parse", h.HandleParse)
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo, deps Dependencies) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return !deps.RequestLogging || c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.Recover())

	if deps.BodyLimit != "" {
		e.Use(middleware.BodyLimit(deps.BodyLimit))
	}
}
