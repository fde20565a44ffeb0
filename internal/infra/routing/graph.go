// Package routing implements the in-process indoor routing core: graph
// assembly with accessibility filtering, nearest-waypoint resolution,
// deterministic shortest-path search and route narration. Everything in this
// package is a pure, read-only computation over an immutable graph snapshot
// and is safe for unbounded concurrent use.
package routing

import (
	"fmt"
	"sort"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"

	"github.com/google/uuid"
)

// Adjacency is one directed edge of a built graph. Logically undirected
// segments appear as two Adjacency entries, one per direction.
type Adjacency struct {
	To         uuid.UUID
	CostMeters float64
	Category   entity.SegmentCategory
	Accessible bool
}

// Graph is an immutable routing graph for one building at one point in time.
// Built fresh from raw records, never mutated afterwards; replaced wholesale
// on data change.
type Graph struct {
	waypoints      map[uuid.UUID]*entity.Waypoint
	adjacency      map[uuid.UUID][]Adjacency
	floorWaypoints map[uuid.UUID][]uuid.UUID
	accessibleOnly bool
}

// BuildGraph assembles the adjacency structure from raw waypoint and segment
// records. When accessibleOnly is true, segments flagged inaccessible are
// excluded entirely; waypoints left without adjacency stay in the graph as
// isolated nodes and surface as ErrNoPathFound downstream.
//
// Identical inputs produce an identical adjacency structure: adjacency lists
// follow segment input order and per-floor waypoint lists are sorted by ID.
func BuildGraph(waypoints []*entity.Waypoint, segments []*entity.Segment, accessibleOnly bool) (*Graph, error) {
	g := &Graph{
		waypoints:      make(map[uuid.UUID]*entity.Waypoint, len(waypoints)),
		adjacency:      make(map[uuid.UUID][]Adjacency, len(waypoints)),
		floorWaypoints: make(map[uuid.UUID][]uuid.UUID),
		accessibleOnly: accessibleOnly,
	}

	for _, wp := range waypoints {
		g.waypoints[wp.ID] = wp
		g.floorWaypoints[wp.FloorID] = append(g.floorWaypoints[wp.FloorID], wp.ID)
	}

	for _, ids := range g.floorWaypoints {
		sort.Slice(ids, func(i, j int) bool {
			return lessID(ids[i], ids[j])
		})
	}

	for _, seg := range segments {
		if seg.CostMeters < 0 {
			return nil, domainerrors.ErrInvalidSegmentCost.WrapMessage(
				fmt.Sprintf("segment %s has cost %f", seg.ID, seg.CostMeters))
		}

		from, fromOK := g.waypoints[seg.FromWaypointID]
		to, toOK := g.waypoints[seg.ToWaypointID]
		if !fromOK || !toOK {
			// Endpoint outside the loaded building scope; the segment cannot be
			// traversed and is left out, matching the store-side scoping query.
			continue
		}

		if from.FloorID != to.FloorID && !seg.Category.FloorTransition() {
			return nil, domainerrors.ErrInvalidFloorTransition.WrapMessage(
				fmt.Sprintf("segment %s (%s) connects floors %s and %s", seg.ID, seg.Category, from.FloorID, to.FloorID))
		}

		if accessibleOnly && !seg.Accessible {
			continue
		}

		g.adjacency[from.ID] = append(g.adjacency[from.ID], Adjacency{
			To:         to.ID,
			CostMeters: seg.CostMeters,
			Category:   seg.Category,
			Accessible: seg.Accessible,
		})
		g.adjacency[to.ID] = append(g.adjacency[to.ID], Adjacency{
			To:         from.ID,
			CostMeters: seg.CostMeters,
			Category:   seg.Category,
			Accessible: seg.Accessible,
		})
	}

	return g, nil
}

// Waypoint returns the waypoint with the given ID, if present.
func (g *Graph) Waypoint(id uuid.UUID) (*entity.Waypoint, bool) {
	wp, ok := g.waypoints[id]

	return wp, ok
}

// Contains reports whether the waypoint ID is part of the graph.
func (g *Graph) Contains(id uuid.UUID) bool {
	_, ok := g.waypoints[id]

	return ok
}

// Neighbors returns the outgoing adjacency entries of a waypoint. The
// returned slice is shared and must not be mutated.
func (g *Graph) Neighbors(id uuid.UUID) []Adjacency {
	return g.adjacency[id]
}

// FloorWaypointIDs returns the waypoint IDs on a floor, sorted ascending by
// ID for deterministic iteration.
func (g *Graph) FloorWaypointIDs(floorID uuid.UUID) []uuid.UUID {
	return g.floorWaypoints[floorID]
}

// Order returns the number of waypoints in the graph.
func (g *Graph) Order() int {
	return len(g.waypoints)
}

// AccessibleOnly reports whether inaccessible segments were filtered out at
// build time.
func (g *Graph) AccessibleOnly() bool {
	return g.accessibleOnly
}

// HasAccessibleAdjacency reports whether the waypoint keeps at least one
// accessible adjacency entry.
func (g *Graph) HasAccessibleAdjacency(id uuid.UUID) bool {
	for _, adj := range g.adjacency[id] {
		if adj.Accessible {
			return true
		}
	}

	return false
}

// lessID orders UUIDs bytewise; used wherever a deterministic tie-break by
// lowest waypoint identity is required.
func lessID(a, b uuid.UUID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
