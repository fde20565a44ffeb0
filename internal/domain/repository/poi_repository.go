package repository

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	"github.com/AmbientEg/navigation-service/internal/errors"

	"github.com/google/uuid"
)

// ErrPOINotFound is returned when a POI is not found.
var ErrPOINotFound = errors.New("poi not found")

// POIRepository defines the interface for point-of-interest metadata access.
type POIRepository interface {
	// FindPOIByID retrieves a POI by its unique ID.
	// Returns ErrPOINotFound if it does not exist.
	FindPOIByID(ctx context.Context, id uuid.UUID) (*entity.POI, error)

	// ListPOIsByFloor retrieves all POIs on a floor ordered by name.
	ListPOIsByFloor(ctx context.Context, floorID uuid.UUID) ([]*entity.POI, error)
}
