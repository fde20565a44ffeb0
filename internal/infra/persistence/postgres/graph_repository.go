package postgres

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/domain/repository"
	"github.com/AmbientEg/navigation-service/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// graphRepository implements the repository.GraphRepository interface. Both
// queries join through floors so a building's whole graph loads in one pass.
type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository is the constructor for graphRepository.
func NewGraphRepository(db *gorm.DB) repository.GraphRepository {
	return &graphRepository{db: db}
}

// ListWaypointsByBuilding retrieves every waypoint on every floor of a
// building. Order is fixed by primary key so graph construction stays
// deterministic across loads.
func (repo *graphRepository) ListWaypointsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Waypoint, error) {
	var waypointModels []*model.WaypointModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN floors ON floors.id = waypoints.floor_id").
		Where("floors.building_id = ?", buildingID).
		Order("waypoints.id ASC").
		Find(&waypointModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list waypoints by building")
	}

	waypoints := make([]*entity.Waypoint, 0, len(waypointModels))
	for _, waypointM := range waypointModels {
		waypoints = append(waypoints, toWaypointDomain(waypointM))
	}

	return waypoints, nil
}

// ListSegmentsByBuilding retrieves every segment whose origin waypoint lies in
// the building, ordered by primary key.
func (repo *graphRepository) ListSegmentsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Segment, error) {
	var segmentModels []*model.SegmentModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN waypoints ON waypoints.id = segments.from_waypoint_id").
		Joins("JOIN floors ON floors.id = waypoints.floor_id").
		Where("floors.building_id = ?", buildingID).
		Order("segments.id ASC").
		Find(&segmentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list segments by building")
	}

	segments := make([]*entity.Segment, 0, len(segmentModels))
	for _, segmentM := range segmentModels {
		segments = append(segments, toSegmentDomain(segmentM))
	}

	return segments, nil
}

func toWaypointDomain(waypointM *model.WaypointModel) *entity.Waypoint {
	return &entity.Waypoint{
		ID:       waypointM.ID,
		FloorID:  waypointM.FloorID,
		Location: orb.Point{waypointM.Lng, waypointM.Lat},
		Category: entity.WaypointCategory(waypointM.Category),
	}
}

func toSegmentDomain(segmentM *model.SegmentModel) *entity.Segment {
	return &entity.Segment{
		ID:             segmentM.ID,
		FromWaypointID: segmentM.FromWaypointID,
		ToWaypointID:   segmentM.ToWaypointID,
		CostMeters:     segmentM.CostMeters,
		Category:       entity.SegmentCategory(segmentM.Category),
		Accessible:     segmentM.Accessible,
	}
}
