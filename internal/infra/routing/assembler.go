package routing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// NarrationConfig controls how traversed segments are compressed into
// human-readable instructions.
type NarrationConfig struct {
	// MinSegmentReportMeters is the smallest same-category run length worth
	// its own "Continue" instruction; shorter runs are folded away.
	MinSegmentReportMeters float64

	// DistanceRoundingMeters is the granularity reported distances are
	// rounded to.
	DistanceRoundingMeters float64
}

// DefaultNarrationConfig returns the documented defaults: 5 m reporting
// threshold, 1 m rounding.
func DefaultNarrationConfig() NarrationConfig {
	return NarrationConfig{
		MinSegmentReportMeters: 5,
		DistanceRoundingMeters: 1,
	}
}

func (c NarrationConfig) withDefaults() NarrationConfig {
	def := DefaultNarrationConfig()
	if c.MinSegmentReportMeters <= 0 {
		c.MinSegmentReportMeters = def.MinSegmentReportMeters
	}
	if c.DistanceRoundingMeters <= 0 {
		c.DistanceRoundingMeters = def.DistanceRoundingMeters
	}

	return c
}

// FloorPath is the portion of a route crossing one floor, as an ordered
// [lng, lat] coordinate sequence.
type FloorPath struct {
	FloorID uuid.UUID
	Path    []orb.Point
}

// RouteResult is the assembled outcome of a route request: per-floor
// geometry, aggregate distance and narrated steps.
type RouteResult struct {
	Floors         []FloorPath
	DistanceMeters float64
	Steps          []string
}

// FloorLabeler maps a floor ID to the name used in narration. Implementations
// must be safe for concurrent use.
type FloorLabeler func(floorID uuid.UUID) string

// RouteAssembler converts an ordered waypoint path into floor-grouped
// geometry and narrated directions. Stateless; one instance serves all
// requests.
type RouteAssembler struct {
	cfg        NarrationConfig
	labelFloor FloorLabeler
}

// NewRouteAssembler builds an assembler. labelFloor may be nil, in which case
// floors are named by their ID.
func NewRouteAssembler(cfg NarrationConfig, labelFloor FloorLabeler) *RouteAssembler {
	if labelFloor == nil {
		labelFloor = func(floorID uuid.UUID) string { return floorID.String() }
	}

	return &RouteAssembler{cfg: cfg.withDefaults(), labelFloor: labelFloor}
}

// Assemble partitions the waypoint sequence into maximal same-floor runs,
// sums the traversed segment costs and narrates the path. A floor-transition
// segment straddles two groups and is attributed to neither; it is the reason
// two adjacent groups carry different floor IDs.
func (a *RouteAssembler) Assemble(path *RoutePath) *RouteResult {
	if path == nil || len(path.Waypoints) == 0 {
		return &RouteResult{Steps: []string{arrivalInstruction}}
	}

	result := &RouteResult{
		Floors:         a.groupByFloor(path),
		DistanceMeters: path.DistanceMeters,
		Steps:          a.narrate(path),
	}

	return result
}

const arrivalInstruction = "You have arrived at your destination"

func (a *RouteAssembler) groupByFloor(path *RoutePath) []FloorPath {
	var floors []FloorPath
	for _, wp := range path.Waypoints {
		n := len(floors)
		if n == 0 || floors[n-1].FloorID != wp.FloorID {
			floors = append(floors, FloorPath{FloorID: wp.FloorID})
			n++
		}
		floors[n-1].Path = append(floors[n-1].Path, wp.Location)
	}

	return floors
}

func (a *RouteAssembler) narrate(path *RoutePath) []string {
	steps := []string{fmt.Sprintf("Start on floor %s", a.labelFloor(path.Waypoints[0].FloorID))}

	var (
		runMeters   float64
		runCategory entity.SegmentCategory
	)

	flushRun := func() {
		if runMeters >= a.cfg.MinSegmentReportMeters {
			steps = append(steps, fmt.Sprintf("Continue for %sm", a.formatMeters(runMeters)))
		}
		runMeters = 0
	}

	for i, step := range path.Steps {
		fromFloor := path.Waypoints[i].FloorID
		toFloor := path.Waypoints[i+1].FloorID

		if fromFloor != toFloor {
			flushRun()
			steps = append(steps, fmt.Sprintf("Change to floor %s via %s", a.labelFloor(toFloor), step.Category))

			continue
		}

		if runMeters > 0 && step.Category != runCategory {
			flushRun()
		}
		runCategory = step.Category
		runMeters += step.CostMeters
	}
	flushRun()

	return append(steps, arrivalInstruction)
}

// formatMeters rounds to the configured granularity and trims trailing
// zeros, so a 1 m granularity prints "12" and a 0.5 m granularity "12.5".
func (a *RouteAssembler) formatMeters(meters float64) string {
	granularity := a.cfg.DistanceRoundingMeters
	rounded := math.Round(meters/granularity) * granularity

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
