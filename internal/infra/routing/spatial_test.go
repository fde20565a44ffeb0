package routing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialIndex_ResolveNearest(t *testing.T) {
	f1 := testFloor(1)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.001, entity.WaypointHallway),
		testWaypoint(3, f1, 0.002, 0, entity.WaypointHallway),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 10, entity.SegmentHallway, true),
		testSegment(2, testID(2), testID(3), 10, entity.SegmentHallway, true),
	}, false)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 0)

	got, err := idx.Resolve(f1, orb.Point{0.0001, 0.0008}, false)
	require.NoError(t, err)
	assert.Equal(t, testID(2), got)
}

func TestSpatialIndex_UnknownFloor(t *testing.T) {
	f1 := testFloor(1)
	g, err := BuildGraph([]*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
	}, nil, false)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 0)

	_, err = idx.Resolve(testFloor(9), orb.Point{0, 0}, false)
	assert.True(t, errors.Is(err, domainerrors.ErrNoWaypointFound))
}

func TestSpatialIndex_EquidistantTieBreaksByLowestID(t *testing.T) {
	f1 := testFloor(1)
	// Waypoints 2 and 7 are the exact same point; the lower ID must win.
	waypoints := []*entity.Waypoint{
		testWaypoint(7, f1, 0, 0.0005, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.0005, entity.WaypointHallway),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(2), testID(7), 0, entity.SegmentHallway, true),
	}, false)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 0)

	got, err := idx.Resolve(f1, orb.Point{0, 0}, false)
	require.NoError(t, err)
	assert.Equal(t, testID(2), got)
}

func TestSpatialIndex_AccessibleOnlyEligibility(t *testing.T) {
	f1 := testFloor(1)
	// Waypoint 1 is a stairs waypoint whose only segment is inaccessible;
	// waypoint 2 is a hallway waypoint further away. Under an accessible-only
	// query the stairs waypoint is ineligible and the hallway one wins.
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0.0001, entity.WaypointStairs),
		testWaypoint(2, f1, 0, 0.001, entity.WaypointHallway),
		testWaypoint(3, f1, 0, 0.002, entity.WaypointHallway),
	}
	segments := []*entity.Segment{
		testSegment(1, testID(1), testID(2), 10, entity.SegmentStairs, false),
		testSegment(2, testID(2), testID(3), 10, entity.SegmentHallway, true),
	}

	g, err := BuildGraph(waypoints, segments, true)
	require.NoError(t, err)
	idx := NewSpatialIndex(g, 0)

	nearest, err := idx.Resolve(f1, orb.Point{0, 0}, false)
	require.NoError(t, err)
	assert.Equal(t, testID(1), nearest)

	accessible, err := idx.Resolve(f1, orb.Point{0, 0}, true)
	require.NoError(t, err)
	assert.Equal(t, testID(2), accessible)
}

func TestSpatialIndex_StairsFreeIsolatedWaypointStaysEligible(t *testing.T) {
	f1 := testFloor(1)
	// A hallway waypoint with no adjacency at all is still an eligible snap
	// target; unreachability surfaces later as no-path, not here.
	g, err := BuildGraph([]*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
	}, nil, true)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 0)

	got, err := idx.Resolve(f1, orb.Point{0.0001, 0.0001}, true)
	require.NoError(t, err)
	assert.Equal(t, testID(1), got)
}

func TestSpatialIndex_NoEligibleWaypoint(t *testing.T) {
	f1 := testFloor(1)
	// Only a stairs waypoint with no accessible adjacency: accessible-only
	// resolution finds nothing.
	g, err := BuildGraph([]*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointStairs),
	}, nil, true)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 0)

	_, err = idx.Resolve(f1, orb.Point{0, 0}, true)
	assert.True(t, errors.Is(err, domainerrors.ErrNoWaypointFound))
}

func TestSpatialIndex_GridMatchesLinearScan(t *testing.T) {
	f1 := testFloor(1)
	rng := rand.New(rand.NewSource(42))

	// Enough waypoints to trip the grid path.
	count := gridScanThreshold + 150
	waypoints := make([]*entity.Waypoint, 0, count)
	for i := 0; i < count; i++ {
		waypoints = append(waypoints, &entity.Waypoint{
			ID:       uuid.UUID{12: 0xCC, 13: byte(i >> 16), 14: byte(i >> 8), 15: byte(i)},
			FloorID:  f1,
			Location: orb.Point{121.5 + rng.Float64()*0.01, 25.0 + rng.Float64()*0.01},
			Category: entity.WaypointHallway,
		})
	}

	g, err := BuildGraph(waypoints, nil, false)
	require.NoError(t, err)

	idx := NewSpatialIndex(g, 25)
	require.True(t, idx.floors[f1].useGrid)

	bruteForce := func(p orb.Point) uuid.UUID {
		best := waypoints[0].ID
		bestDist := math.MaxFloat64
		for _, id := range g.FloorWaypointIDs(f1) {
			wp, _ := g.Waypoint(id)
			if d := haversineDistance(p, wp.Location); d < bestDist {
				bestDist = d
				best = id
			}
		}

		return best
	}

	for i := 0; i < 50; i++ {
		query := orb.Point{121.5 + rng.Float64()*0.012 - 0.001, 25.0 + rng.Float64()*0.012 - 0.001}
		got, err := idx.Resolve(f1, query, false)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(query), got, "query %v", query)
	}
}
