package entity

import (
	"github.com/google/uuid"
)

// SegmentCategory classifies a connective segment between two waypoints.
type SegmentCategory string

const (
	SegmentHallway   SegmentCategory = "hallway"
	SegmentStairs    SegmentCategory = "stairs"
	SegmentElevator  SegmentCategory = "elevator"
	SegmentEscalator SegmentCategory = "escalator"
)

// FloorTransition reports whether the category may legally connect waypoints
// on different floors.
func (c SegmentCategory) FloorTransition() bool {
	switch c {
	case SegmentStairs, SegmentElevator, SegmentEscalator:
		return true
	default:
		return false
	}
}

// Segment is a weighted, logically undirected connection between two
// waypoints. Traversal cost applies equally in both directions; the graph
// builder stores it as two directed adjacency entries.
type Segment struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the segment.
	FromWaypointID uuid.UUID       // One endpoint of the segment.
	ToWaypointID   uuid.UUID       // The other endpoint of the segment.
	CostMeters     float64         // Non-negative traversal cost in meters.
	Category       SegmentCategory // hallway, stairs, elevator or escalator.
	Accessible     bool            // Usable by accessible-route requests.
}
