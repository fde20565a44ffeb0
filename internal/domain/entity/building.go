package entity

import (
	"time"

	"github.com/google/uuid"
)

// Building is a physical building containing one or more navigable floors.
type Building struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the building.
	Name      string    // Display name, e.g. "Main Campus Hall".
	Address   string    // Human-readable street address.
	CreatedAt time.Time // Timestamp of when this building was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Floor is one level of a building. Waypoints and POIs are attached to a
// floor; segments may cross floors through stairs, elevators or escalators.
type Floor struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the floor.
	BuildingID uuid.UUID // The building this floor belongs to.
	Name       string    // Display name, e.g. "Ground Floor".
	Level      int       // Ordinal level within the building; 0 is ground.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
