package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/AmbientEg/navigation-service/config"
	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/domain/repository"
	"github.com/AmbientEg/navigation-service/internal/errors"
	"github.com/AmbientEg/navigation-service/internal/infra/routing"
	"github.com/AmbientEg/navigation-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// navigationService implements the NavigationUsecase interface. It owns the
// routing engine and translates between the wire-level DTOs and the engine's
// waypoint-graph vocabulary.
type navigationService struct {
	buildings repository.BuildingRepository
	pois      repository.POIRepository
	engine    *routing.Engine
	logger    *slog.Logger

	// floorNames backs the narration labeler. Populated per building on
	// first route, cleared on cache invalidation.
	floorNames       sync.Map // uuid.UUID -> string
	labeledBuildings sync.Map // uuid.UUID -> struct{}
}

// NewNavigationService creates a new navigation service instance
func NewNavigationService(
	cfg *config.Config,
	logger *slog.Logger,
	buildings repository.BuildingRepository,
	pois repository.POIRepository,
	graphs repository.GraphRepository,
) usecase.NavigationUsecase {
	service := &navigationService{
		buildings: buildings,
		pois:      pois,
		logger:    logger,
	}
	service.engine = routing.NewEngine(graphs, logger, engineConfig(cfg.Routing), service.floorLabel)

	return service
}

func engineConfig(cfg *config.RoutingConfig) routing.EngineConfig {
	if cfg == nil {
		return routing.EngineConfig{Narration: routing.DefaultNarrationConfig()}
	}

	return routing.EngineConfig{
		CacheTTL:           cfg.CacheTTL,
		GridCellSizeMeters: cfg.GridCellSizeMeters,
		Narration: routing.NarrationConfig{
			MinSegmentReportMeters: cfg.MinSegmentReportMeters,
			DistanceRoundingMeters: cfg.DistanceRoundingMeters,
		},
	}
}

// Route computes a walkable route from a coordinate to a point of interest.
func (s *navigationService) Route(ctx context.Context, input *usecase.RouteInput) (*usecase.RouteOutput, error) {
	originFloor, err := s.buildings.FindFloorByID(ctx, input.From.FloorID)
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return nil, domainerrors.ErrFloorNotFound.WrapMessage("origin floor does not exist")
		}

		return nil, errors.Wrap(err, "failed to load origin floor")
	}

	poi, err := s.pois.FindPOIByID(ctx, input.To.POIID)
	if err != nil {
		if errors.Is(err, repository.ErrPOINotFound) {
			return nil, domainerrors.ErrPOINotFound.WrapMessage("destination POI does not exist")
		}

		return nil, errors.Wrap(err, "failed to load destination POI")
	}

	destinationFloor, err := s.buildings.FindFloorByID(ctx, poi.FloorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load destination floor")
	}

	if destinationFloor.BuildingID != originFloor.BuildingID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin and destination are in different buildings")
	}

	buildingID := originFloor.BuildingID
	if err := s.ensureFloorLabels(ctx, buildingID); err != nil {
		return nil, err
	}

	destinationWaypointID, err := s.engine.ResolveWaypoint(ctx, buildingID, poi.FloorID, poi.Location, input.Options.Accessible)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Route(ctx, routing.RouteRequest{
		BuildingID:            buildingID,
		OriginFloorID:         input.From.FloorID,
		Origin:                orb.Point{input.From.Lng, input.From.Lat},
		DestinationWaypointID: destinationWaypointID,
		AccessibleOnly:        input.Options.Accessible,
	})
	if err != nil {
		return nil, err
	}

	return toRouteOutput(result), nil
}

// ListBuildings retrieves all known buildings.
func (s *navigationService) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	return s.buildings.ListBuildings(ctx)
}

// GetBuilding retrieves a single building by its ID.
func (s *navigationService) GetBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Building, error) {
	building, err := s.buildings.FindBuildingByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound.WrapMessage("building does not exist")
		}

		return nil, errors.Wrap(err, "failed to load building")
	}

	return building, nil
}

// ListFloors retrieves the floors of a building.
func (s *navigationService) ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error) {
	if _, err := s.buildings.FindBuildingByID(ctx, buildingID); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound.WrapMessage("building does not exist")
		}

		return nil, errors.Wrap(err, "failed to load building")
	}

	return s.buildings.ListFloorsByBuilding(ctx, buildingID)
}

// ListPOIs retrieves the points of interest on a floor.
func (s *navigationService) ListPOIs(ctx context.Context, floorID uuid.UUID) ([]*entity.POI, error) {
	if _, err := s.buildings.FindFloorByID(ctx, floorID); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return nil, domainerrors.ErrFloorNotFound.WrapMessage("floor does not exist")
		}

		return nil, errors.Wrap(err, "failed to load floor")
	}

	return s.pois.ListPOIsByFloor(ctx, floorID)
}

// InvalidateCache drops the routing snapshots of a building.
func (s *navigationService) InvalidateCache(ctx context.Context, buildingID uuid.UUID) error {
	if _, err := s.buildings.FindBuildingByID(ctx, buildingID); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return domainerrors.ErrBuildingNotFound.WrapMessage("building does not exist")
		}

		return errors.Wrap(err, "failed to load building")
	}

	s.engine.Invalidate(buildingID)
	s.labeledBuildings.Delete(buildingID)
	s.logger.Info("routing cache invalidated", slog.String("buildingID", buildingID.String()))

	return nil
}

// ensureFloorLabels loads the floor names of a building once, so narration
// can say "floor 2" instead of a UUID.
func (s *navigationService) ensureFloorLabels(ctx context.Context, buildingID uuid.UUID) error {
	if _, done := s.labeledBuildings.Load(buildingID); done {
		return nil
	}

	floors, err := s.buildings.ListFloorsByBuilding(ctx, buildingID)
	if err != nil {
		return errors.Wrap(err, "failed to load floor labels")
	}

	for _, floor := range floors {
		s.floorNames.Store(floor.ID, floor.Name)
	}
	s.labeledBuildings.Store(buildingID, struct{}{})

	return nil
}

func (s *navigationService) floorLabel(floorID uuid.UUID) string {
	if name, ok := s.floorNames.Load(floorID); ok {
		return name.(string)
	}

	return floorID.String()
}

func toRouteOutput(result *routing.RouteResult) *usecase.RouteOutput {
	floors := make([]usecase.RouteFloorPath, 0, len(result.Floors))
	for _, floor := range result.Floors {
		floors = append(floors, usecase.RouteFloorPath{
			FloorID: floor.FloorID,
			Path:    floor.Path,
		})
	}

	return &usecase.RouteOutput{
		Floors:   floors,
		Distance: result.DistanceMeters,
		Steps:    result.Steps,
	}
}
