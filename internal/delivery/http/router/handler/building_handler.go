package handler

import (
	"log/slog"
	"net/http"

	"github.com/AmbientEg/navigation-service/internal/delivery/http/response"
	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	"github.com/AmbientEg/navigation-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuildingHandler holds dependencies for the building catalog handlers.
type BuildingHandler struct {
	uc     usecase.NavigationUsecase
	logger *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler, injected by Fx.
func NewBuildingHandler(uc usecase.NavigationUsecase, logger *slog.Logger) *BuildingHandler {
	return &BuildingHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBuildings returns every known building.
func (h *BuildingHandler) ListBuildings(c echo.Context) error {
	buildings, err := h.uc.ListBuildings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildings, "")
}

// GetBuilding returns a single building.
func (h *BuildingHandler) GetBuilding(c echo.Context) error {
	buildingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid building ID")
	}

	building, err := h.uc.GetBuilding(c.Request().Context(), buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "")
}

// ListWaypointCategories returns the waypoint category vocabulary used by
// graph editors.
func (h *BuildingHandler) ListWaypointCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.WaypointCategories(), "")
}

// ListFloors returns the floors of one building.
func (h *BuildingHandler) ListFloors(c echo.Context) error {
	buildingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid building ID")
	}

	floors, err := h.uc.ListFloors(c.Request().Context(), buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, floors, "")
}

// ListPOIs returns the points of interest on one floor.
func (h *BuildingHandler) ListPOIs(c echo.Context) error {
	floorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid floor ID")
	}

	pois, err := h.uc.ListPOIs(c.Request().Context(), floorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pois, "")
}
