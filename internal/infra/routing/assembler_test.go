package routing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembledPath(t *testing.T, g *Graph, from, to uuid.UUID) *RoutePath {
	t.Helper()
	path, err := ShortestPath(g, from, to)
	require.NoError(t, err)

	return path
}

func TestAssemble_SingleFloor(t *testing.T) {
	f1 := testFloor(1)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.0001, entity.WaypointHallway),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 10, entity.SegmentHallway, true),
	}, true)
	require.NoError(t, err)

	assembler := NewRouteAssembler(NarrationConfig{}, nil)
	result := assembler.Assemble(assembledPath(t, g, testID(1), testID(2)))

	assert.Equal(t, 10.0, result.DistanceMeters)
	require.Len(t, result.Floors, 1)
	assert.Equal(t, f1, result.Floors[0].FloorID)
	assert.Equal(t, []orb.Point{{0, 0}, {0, 0.0001}}, result.Floors[0].Path)

	require.NotEmpty(t, result.Steps)
	assert.Equal(t, arrivalInstruction, result.Steps[len(result.Steps)-1])
	assert.Contains(t, result.Steps, "Continue for 10m")
}

func TestAssemble_MultiFloorGrouping(t *testing.T) {
	f1, f2 := testFloor(1), testFloor(2)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.0001, entity.WaypointElevator),
		testWaypoint(3, f2, 0, 0.0001, entity.WaypointElevator),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 5, entity.SegmentHallway, true),
		testSegment(2, testID(2), testID(3), 3, entity.SegmentElevator, true),
	}, true)
	require.NoError(t, err)

	labels := map[uuid.UUID]string{f1: "F1", f2: "F2"}
	assembler := NewRouteAssembler(NarrationConfig{}, func(id uuid.UUID) string { return labels[id] })
	result := assembler.Assemble(assembledPath(t, g, testID(1), testID(3)))

	assert.Equal(t, 8.0, result.DistanceMeters)
	require.Len(t, result.Floors, 2)
	assert.Equal(t, f1, result.Floors[0].FloorID)
	assert.Equal(t, f2, result.Floors[1].FloorID)
	assert.Len(t, result.Floors[0].Path, 2)
	assert.Len(t, result.Floors[1].Path, 1)

	var changes []int
	for i, step := range result.Steps {
		if strings.HasPrefix(step, "Change to floor") {
			changes = append(changes, i)
		}
	}
	require.Len(t, changes, 1)
	assert.Equal(t, "Change to floor F2 via elevator", result.Steps[changes[0]])
	assert.Equal(t, "Start on floor F1", result.Steps[0])
	assert.Equal(t, arrivalInstruction, result.Steps[len(result.Steps)-1])
}

func TestAssemble_GroupingIsExhaustive(t *testing.T) {
	f1, f2 := testFloor(1), testFloor(2)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.0001, entity.WaypointStairs),
		testWaypoint(3, f2, 0, 0.0001, entity.WaypointStairs),
		testWaypoint(4, f2, 0, 0.0002, entity.WaypointHallway),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 6, entity.SegmentHallway, true),
		testSegment(2, testID(2), testID(3), 4, entity.SegmentStairs, true),
		testSegment(3, testID(3), testID(4), 6, entity.SegmentHallway, true),
	}, false)
	require.NoError(t, err)

	path := assembledPath(t, g, testID(1), testID(4))
	result := NewRouteAssembler(NarrationConfig{}, nil).Assemble(path)

	// Concatenating the floor paths reproduces the waypoint coordinate
	// sequence with nothing omitted or duplicated across group boundaries.
	var concatenated []orb.Point
	for _, floor := range result.Floors {
		concatenated = append(concatenated, floor.Path...)
	}
	require.Len(t, concatenated, len(path.Waypoints))
	for i, wp := range path.Waypoints {
		assert.Equal(t, wp.Location, concatenated[i])
	}
}

func TestAssemble_MicroSegmentsCollapse(t *testing.T) {
	f1 := testFloor(1)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.00001, entity.WaypointHallway),
		testWaypoint(3, f1, 0, 0.00002, entity.WaypointHallway),
		testWaypoint(4, f1, 0, 0.00003, entity.WaypointHallway),
	}
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 1, entity.SegmentHallway, true),
		testSegment(2, testID(2), testID(3), 1, entity.SegmentHallway, true),
		testSegment(3, testID(3), testID(4), 1, entity.SegmentHallway, true),
	}, true)
	require.NoError(t, err)

	path := assembledPath(t, g, testID(1), testID(4))

	// The three 1 m segments form one 3 m run, below the 5 m default
	// threshold: no "Continue" instruction at all.
	result := NewRouteAssembler(NarrationConfig{}, nil).Assemble(path)
	for _, step := range result.Steps {
		assert.NotContains(t, step, "Continue")
	}

	// With a 2 m threshold the aggregated run is reported once.
	result = NewRouteAssembler(NarrationConfig{MinSegmentReportMeters: 2}, nil).Assemble(path)
	var continues int
	for _, step := range result.Steps {
		if strings.HasPrefix(step, "Continue") {
			continues++
		}
	}
	assert.Equal(t, 1, continues)
	assert.Contains(t, result.Steps, "Continue for 3m")
}

func TestAssemble_CategoryChangeSplitsRuns(t *testing.T) {
	f1 := testFloor(1)
	waypoints := []*entity.Waypoint{
		testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
		testWaypoint(2, f1, 0, 0.0001, entity.WaypointStairs),
		testWaypoint(3, f1, 0, 0.0002, entity.WaypointStairs),
	}
	// Stairs within one floor: legal, same-floor, different category.
	g, err := BuildGraph(waypoints, []*entity.Segment{
		testSegment(1, testID(1), testID(2), 8, entity.SegmentHallway, true),
		testSegment(2, testID(2), testID(3), 6, entity.SegmentStairs, true),
	}, false)
	require.NoError(t, err)

	result := NewRouteAssembler(NarrationConfig{}, nil).Assemble(assembledPath(t, g, testID(1), testID(3)))

	assert.Contains(t, result.Steps, "Continue for 8m")
	assert.Contains(t, result.Steps, "Continue for 6m")
}

func TestAssemble_Rounding(t *testing.T) {
	tests := []struct {
		name        string
		granularity float64
		meters      float64
		want        string
	}{
		{name: "one meter rounds down", granularity: 1, meters: 7.4, want: "Continue for 7m"},
		{name: "one meter rounds up", granularity: 1, meters: 7.6, want: "Continue for 8m"},
		{name: "half meter keeps fraction", granularity: 0.5, meters: 7.4, want: "Continue for 7.5m"},
		{name: "five meter buckets", granularity: 5, meters: 12.0, want: "Continue for 10m"},
	}

	f1 := testFloor(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			waypoints := []*entity.Waypoint{
				testWaypoint(1, f1, 0, 0, entity.WaypointHallway),
				testWaypoint(2, f1, 0, 0.0001, entity.WaypointHallway),
			}
			g, err := BuildGraph(waypoints, []*entity.Segment{
				testSegment(1, testID(1), testID(2), tt.meters, entity.SegmentHallway, true),
			}, false)
			require.NoError(t, err)

			assembler := NewRouteAssembler(NarrationConfig{
				MinSegmentReportMeters: 1,
				DistanceRoundingMeters: tt.granularity,
			}, nil)
			result := assembler.Assemble(assembledPath(t, g, testID(1), testID(2)))
			assert.Contains(t, result.Steps, tt.want, fmt.Sprintf("steps: %v", result.Steps))
		})
	}
}

func TestAssemble_SingleWaypoint(t *testing.T) {
	f1 := testFloor(1)
	wp := testWaypoint(1, f1, 0.0003, 0.0004, entity.WaypointHallway)

	result := NewRouteAssembler(NarrationConfig{}, nil).Assemble(&RoutePath{
		Waypoints: []*entity.Waypoint{wp},
	})

	assert.Equal(t, 0.0, result.DistanceMeters)
	require.Len(t, result.Floors, 1)
	assert.Equal(t, []orb.Point{{0.0003, 0.0004}}, result.Floors[0].Path)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, arrivalInstruction, result.Steps[1])
}
