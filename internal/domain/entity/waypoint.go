// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// WaypointCategory classifies a routing waypoint (hallway junction, door,
// stairs/elevator access point, ...).
type WaypointCategory string

const (
	WaypointHallway   WaypointCategory = "hallway"
	WaypointDoor      WaypointCategory = "door"
	WaypointStairs    WaypointCategory = "stairs"
	WaypointElevator  WaypointCategory = "elevator"
	WaypointEscalator WaypointCategory = "escalator"
	WaypointOther     WaypointCategory = "other"
)

// WaypointCategories lists every known waypoint category in declaration order.
func WaypointCategories() []WaypointCategory {
	return []WaypointCategory{
		WaypointHallway,
		WaypointDoor,
		WaypointStairs,
		WaypointElevator,
		WaypointEscalator,
		WaypointOther,
	}
}

// StairsFree reports whether the waypoint category is usable without stairs.
// Stairs waypoints are only eligible for accessible routing when they keep at
// least one accessible segment after filtering.
func (c WaypointCategory) StairsFree() bool {
	return c != WaypointStairs
}

// Waypoint is a navigable point of a floor's routing graph. Immutable once
// loaded; the graph builder owns it for the duration of a build.
type Waypoint struct {
	ID       uuid.UUID        // The Global Unique Identifier (GUID) for the waypoint.
	FloorID  uuid.UUID        // The floor this waypoint belongs to.
	Location orb.Point        // Geographic position, [lng, lat] order.
	Category WaypointCategory // What kind of navigable point this is.
}
