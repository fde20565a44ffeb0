package routing

import (
	"container/heap"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"

	"github.com/google/uuid"
)

// RouteStep is one traversed segment of a computed path, with the cost and
// category retained for distance aggregation and narration.
type RouteStep struct {
	From       uuid.UUID
	To         uuid.UUID
	CostMeters float64
	Category   entity.SegmentCategory
	Accessible bool
}

// RoutePath is an ordered waypoint sequence from origin to destination.
// Steps has exactly one entry per consecutive waypoint pair.
type RoutePath struct {
	Waypoints      []*entity.Waypoint
	Steps          []RouteStep
	DistanceMeters float64
}

// frontierEntry is a node in the Dijkstra priority queue. seq records
// insertion order: among equal tentative distances the entry discovered first
// wins, which keeps repeated runs on identical input byte-for-byte identical.
type frontierEntry struct {
	id    uuid.UUID
	dist  float64
	seq   uint64
	index int // Index in the heap
}

// frontier implements heap.Interface for Dijkstra's algorithm
type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	entry := x.(*frontierEntry)
	entry.index = len(*f)
	*f = append(*f, entry)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*f = old[0 : n-1]

	return entry
}

// predecessor records how a waypoint was first reached at its settled
// distance, for path reconstruction.
type predecessor struct {
	from uuid.UUID
	via  Adjacency
}

// ShortestPath computes the minimum-cost path between two waypoints using
// Dijkstra's algorithm with lazy decrease-key: duplicates are pushed into the
// heap and stale entries skipped via the settled set. The search stops as
// soon as the target settles.
//
// Returns ErrUnknownWaypoint when either endpoint is absent from the graph
// and ErrNoPathFound when the frontier exhausts before reaching the target.
// Zero-cost edges are legal; negative costs are rejected at graph build time,
// which keeps the non-negativity precondition an input invariant here.
func ShortestPath(g *Graph, sourceID, targetID uuid.UUID) (*RoutePath, error) {
	if !g.Contains(sourceID) {
		return nil, domainerrors.ErrUnknownWaypoint.WrapMessage("source " + sourceID.String())
	}
	if !g.Contains(targetID) {
		return nil, domainerrors.ErrUnknownWaypoint.WrapMessage("target " + targetID.String())
	}

	dist := map[uuid.UUID]float64{sourceID: 0}
	settled := make(map[uuid.UUID]bool, g.Order())
	prev := make(map[uuid.UUID]predecessor)

	var seq uint64
	pq := make(frontier, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &frontierEntry{id: sourceID, dist: 0, seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*frontierEntry)
		if settled[current.id] {
			continue
		}
		settled[current.id] = true

		if current.id == targetID {
			return reconstruct(g, sourceID, targetID, current.dist, prev), nil
		}

		for _, adj := range g.Neighbors(current.id) {
			if settled[adj.To] {
				continue
			}

			newDist := current.dist + adj.CostMeters
			// Strict improvement only: an equal-distance rediscovery keeps the
			// earlier predecessor, matching the first-discovered tie-break.
			if known, ok := dist[adj.To]; ok && newDist >= known {
				continue
			}
			dist[adj.To] = newDist
			prev[adj.To] = predecessor{from: current.id, via: adj}
			seq++
			heap.Push(&pq, &frontierEntry{id: adj.To, dist: newDist, seq: seq})
		}
	}

	return nil, domainerrors.ErrNoPathFound.WrapMessage(
		"target " + targetID.String() + " unreachable from " + sourceID.String())
}

// reconstruct walks the predecessor map from target back to source and
// reverses the result.
func reconstruct(g *Graph, sourceID, targetID uuid.UUID, total float64, prev map[uuid.UUID]predecessor) *RoutePath {
	var revSteps []RouteStep
	at := targetID
	for at != sourceID {
		p := prev[at]
		revSteps = append(revSteps, RouteStep{
			From:       p.from,
			To:         at,
			CostMeters: p.via.CostMeters,
			Category:   p.via.Category,
			Accessible: p.via.Accessible,
		})
		at = p.from
	}

	path := &RoutePath{
		Waypoints:      make([]*entity.Waypoint, 0, len(revSteps)+1),
		Steps:          make([]RouteStep, 0, len(revSteps)),
		DistanceMeters: total,
	}

	source, _ := g.Waypoint(sourceID)
	path.Waypoints = append(path.Waypoints, source)
	for i := len(revSteps) - 1; i >= 0; i-- {
		step := revSteps[i]
		wp, _ := g.Waypoint(step.To)
		path.Waypoints = append(path.Waypoints, wp)
		path.Steps = append(path.Steps, step)
	}

	return path
}
