package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AmbientEg/navigation-service/internal/delivery/http/middleware"
	"github.com/AmbientEg/navigation-service/internal/delivery/http/validator"
	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNavigationUsecase returns canned values so handler tests exercise only
// binding and the error envelope.
type fakeNavigationUsecase struct {
	routeOutput *usecase.RouteOutput
	building    *entity.Building
	routeErr    error
}

func (f *fakeNavigationUsecase) Route(context.Context, *usecase.RouteInput) (*usecase.RouteOutput, error) {
	return f.routeOutput, f.routeErr
}

func (f *fakeNavigationUsecase) ListBuildings(context.Context) ([]*entity.Building, error) {
	return nil, nil
}

func (f *fakeNavigationUsecase) GetBuilding(context.Context, uuid.UUID) (*entity.Building, error) {
	return f.building, f.routeErr
}

func (f *fakeNavigationUsecase) ListFloors(context.Context, uuid.UUID) ([]*entity.Floor, error) {
	return nil, nil
}

func (f *fakeNavigationUsecase) ListPOIs(context.Context, uuid.UUID) ([]*entity.POI, error) {
	return nil, nil
}

func (f *fakeNavigationUsecase) InvalidateCache(context.Context, uuid.UUID) error {
	return f.routeErr
}

func newTestServer(uc usecase.NavigationUsecase) (*echo.Echo, *NavigationHandler) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e, NewNavigationHandler(uc, logger)
}

func routeRequestBody() string {
	return `{
		"from": {"floorId": "00000000-0000-0000-0000-000000000001", "lat": 1.5, "lng": 103.2},
		"to": {"poiId": "00000000-0000-0000-0000-000000000002"},
		"options": {"accessible": true}
	}`
}

func TestNavigationHandler_Route_Success(t *testing.T) {
	uc := &fakeNavigationUsecase{
		routeOutput: &usecase.RouteOutput{
			Distance: 12.5,
			Steps:    []string{"Start on floor 1", "You have arrived at your destination"},
		},
	}
	e, h := newTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/navigation/route", strings.NewReader(routeRequestBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Route(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"distance":12.5`)
	assert.Contains(t, rec.Body.String(), "Start on floor 1")
}

func TestNavigationHandler_Route_MissingIDs(t *testing.T) {
	e, h := newTestServer(&fakeNavigationUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/navigation/route", strings.NewReader(`{"from":{"lat":1,"lng":2}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Route(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestNavigationHandler_Route_OutOfRangeCoordinates(t *testing.T) {
	uc := &fakeNavigationUsecase{routeOutput: &usecase.RouteOutput{Distance: 1}}
	e, h := newTestServer(uc)

	body := `{
		"from": {"floorId": "00000000-0000-0000-0000-000000000001", "lat": 999, "lng": -720},
		"to": {"poiId": "00000000-0000-0000-0000-000000000002"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/navigation/route", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Route(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestNavigationHandler_Route_NoPathFoundEnvelope(t *testing.T) {
	e, h := newTestServer(&fakeNavigationUsecase{routeErr: domainerrors.ErrNoPathFound})

	req := httptest.NewRequest(http.MethodPost, "/api/navigation/route", strings.NewReader(routeRequestBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Route(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_PATH_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestNavigationHandler_InvalidateCache_InvalidID(t *testing.T) {
	e, h := newTestServer(&fakeNavigationUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/navigation/cache/invalidate/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("buildingId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.InvalidateCache(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
