// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/AmbientEg/navigation-service/internal/delivery/http/response"
	"github.com/AmbientEg/navigation-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NavigationHandler holds dependencies for routing-related handlers.
type NavigationHandler struct {
	uc     usecase.NavigationUsecase
	logger *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler, injected by Fx.
func NewNavigationHandler(uc usecase.NavigationUsecase, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Route handles the route computation request.
func (h *NavigationHandler) Route(c echo.Context) error {
	var input *usecase.RouteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route request")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Route request body is required")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Route(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Route computed")
}

// InvalidateCache handles the cache invalidation request after graph edits.
func (h *NavigationHandler) InvalidateCache(c echo.Context) error {
	buildingID, err := uuid.Parse(c.Param("buildingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid building ID")
	}

	if err := h.uc.InvalidateCache(c.Request().Context(), buildingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Routing cache invalidated")
}
