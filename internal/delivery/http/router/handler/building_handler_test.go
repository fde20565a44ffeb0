package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildingFixture(id uuid.UUID) *entity.Building {
	return &entity.Building{
		ID:      id,
		Name:    "Main Library",
		Address: "12 Campus Road",
	}
}

func newBuildingHandler(uc usecase.NavigationUsecase) (*echo.Echo, *BuildingHandler) {
	e, _ := newTestServer(uc)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return e, NewBuildingHandler(uc, logger)
}

func TestBuildingHandler_GetBuilding_Success(t *testing.T) {
	buildingID := uuid.UUID{0: 0xB1, 15: 1}
	uc := &fakeNavigationUsecase{building: buildingFixture(buildingID)}
	e, h := newBuildingHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/buildings/"+buildingID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(buildingID.String())

	require.NoError(t, h.GetBuilding(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Main Library")
}

func TestBuildingHandler_GetBuilding_InvalidID(t *testing.T) {
	e, h := newBuildingHandler(&fakeNavigationUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/buildings/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetBuilding(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestBuildingHandler_GetBuilding_NotFoundEnvelope(t *testing.T) {
	uc := &fakeNavigationUsecase{routeErr: domainerrors.ErrBuildingNotFound}
	e, h := newBuildingHandler(uc)

	buildingID := uuid.UUID{0: 0xB1, 15: 2}
	req := httptest.NewRequest(http.MethodGet, "/api/buildings/"+buildingID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(buildingID.String())

	err := h.GetBuilding(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUILDING_NOT_FOUND")
}

func TestBuildingHandler_ListWaypointCategories(t *testing.T) {
	e, h := newBuildingHandler(&fakeNavigationUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/waypoint-categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListWaypointCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, category := range []string{"hallway", "door", "stairs", "elevator", "escalator", "other"} {
		assert.Contains(t, rec.Body.String(), category)
	}
}
