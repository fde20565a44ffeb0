package usecase

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RouteOrigin represents where the user currently stands
type RouteOrigin struct {
	FloorID uuid.UUID `json:"floorId" validate:"required"`
	Lat     float64   `json:"lat" validate:"min=-90,max=90"`
	Lng     float64   `json:"lng" validate:"min=-180,max=180"`
}

// RouteDestination represents the point of interest the user wants to reach
type RouteDestination struct {
	POIID uuid.UUID `json:"poiId" validate:"required"`
}

// RouteOptions carries per-request routing constraints
type RouteOptions struct {
	// Accessible restricts the route to segments usable without stairs
	Accessible bool `json:"accessible"`
}

// RouteInput represents the input for computing a route
type RouteInput struct {
	From    RouteOrigin      `json:"from"`
	To      RouteDestination `json:"to"`
	Options RouteOptions     `json:"options"`
}

// RouteFloorPath is the portion of a route that stays on one floor
type RouteFloorPath struct {
	FloorID uuid.UUID   `json:"floorId"`
	Path    []orb.Point `json:"path"` // [lng, lat] pairs in walking order
}

// RouteOutput represents a computed route ready for rendering
type RouteOutput struct {
	Floors   []RouteFloorPath `json:"floors"`
	Distance float64          `json:"distance"`
	Steps    []string         `json:"steps"`
}

// NavigationUsecase defines the interface for indoor navigation use cases
type NavigationUsecase interface {
	// Route computes a walkable route from a coordinate to a point of interest
	Route(ctx context.Context, input *RouteInput) (*RouteOutput, error)

	// Catalog lookups backing the map UI
	ListBuildings(ctx context.Context) ([]*entity.Building, error)
	GetBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Building, error)
	ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error)
	ListPOIs(ctx context.Context, floorID uuid.UUID) ([]*entity.POI, error)

	// InvalidateCache drops the routing snapshots of a building after its
	// graph data changes
	InvalidateCache(ctx context.Context, buildingID uuid.UUID) error
}
