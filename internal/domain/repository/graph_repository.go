package repository

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"

	"github.com/google/uuid"
)

// GraphRepository loads the raw waypoint and segment records a routing graph
// is built from. The routing core treats these collections as an immutable
// snapshot; it never writes back.
type GraphRepository interface {
	// ListWaypointsByBuilding retrieves every waypoint on every floor of the
	// given building.
	ListWaypointsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Waypoint, error)

	// ListSegmentsByBuilding retrieves every segment whose endpoints belong to
	// the given building, including floor-transition segments.
	ListSegmentsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Segment, error)
}
