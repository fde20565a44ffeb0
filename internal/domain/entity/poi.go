package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// POI is a named point of interest that can be the destination of a route
// request (a shop, a room, a service counter).
type POI struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the POI.
	FloorID   uuid.UUID // The floor this POI is located on.
	Name      string    // Display name, e.g. "Pharmacy".
	Category  string    // Free-form category, e.g. "shop", "restroom".
	Location  orb.Point // Geographic position, [lng, lat] order.
	CreatedAt time.Time
	UpdatedAt time.Time
}
