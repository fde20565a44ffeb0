// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	"github.com/AmbientEg/navigation-service/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for building/floor persistence.
var (
	// ErrBuildingNotFound is returned when a building is not found.
	ErrBuildingNotFound = errors.New("building not found")
	// ErrFloorNotFound is returned when a floor is not found.
	ErrFloorNotFound = errors.New("floor not found")
)

// BuildingRepository defines the interface for building and floor metadata access.
type BuildingRepository interface {
	// ListBuildings retrieves all buildings ordered by name.
	ListBuildings(ctx context.Context) ([]*entity.Building, error)

	// FindBuildingByID retrieves a building by its unique ID.
	// Returns ErrBuildingNotFound if it does not exist.
	FindBuildingByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)

	// ListFloorsByBuilding retrieves the floors of a building ordered by level.
	ListFloorsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error)

	// FindFloorByID retrieves a floor by its unique ID.
	// Returns ErrFloorNotFound if it does not exist.
	FindFloorByID(ctx context.Context, id uuid.UUID) (*entity.Floor, error)
}
