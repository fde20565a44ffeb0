package routing

import (
	"math"

	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	earthRadiusM = 6371000.0

	// metersPerDegreeLat is close enough for cell sizing; exactness only
	// affects how many cells a ring search visits, not which waypoint wins.
	metersPerDegreeLat = 111320.0

	// Floors below this waypoint count are resolved by linear scan; larger
	// floors get a grid-bucket index.
	gridScanThreshold = 300

	defaultGridCellSizeM = 25.0
)

// SpatialIndex resolves an arbitrary coordinate on a floor to the nearest
// eligible waypoint of a built graph. Immutable after construction.
type SpatialIndex struct {
	graph  *Graph
	floors map[uuid.UUID]*floorIndex
}

type floorIndex struct {
	ids  []uuid.UUID // sorted ascending, shared with the graph
	grid map[gridKey][]uuid.UUID
	// grid geometry; zero-valued when the floor uses linear scan
	cellSizeLatDeg float64
	cellSizeLngDeg float64
	minLat         float64
	minLng         float64
	useGrid        bool
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewSpatialIndex builds the per-floor lookup structures for a graph.
// cellSizeM is the grid cell edge length in meters; values <= 0 fall back to
// the default.
func NewSpatialIndex(graph *Graph, cellSizeM float64) *SpatialIndex {
	if cellSizeM <= 0 {
		cellSizeM = defaultGridCellSizeM
	}

	idx := &SpatialIndex{
		graph:  graph,
		floors: make(map[uuid.UUID]*floorIndex, len(graph.floorWaypoints)),
	}

	for floorID, ids := range graph.floorWaypoints {
		fi := &floorIndex{ids: ids}
		if len(ids) > gridScanThreshold {
			fi.buildGrid(graph, cellSizeM)
		}
		idx.floors[floorID] = fi
	}

	return idx
}

// Resolve returns the ID of the nearest eligible waypoint to the query point
// on the given floor. For accessible-only queries a waypoint is eligible only
// if it keeps at least one accessible adjacency or is itself a stairs-free
// category. Equidistant candidates break by lowest waypoint ID.
// Returns ErrNoWaypointFound when the floor has no eligible waypoint.
func (s *SpatialIndex) Resolve(floorID uuid.UUID, point orb.Point, accessibleOnly bool) (uuid.UUID, error) {
	fi, ok := s.floors[floorID]
	if !ok || len(fi.ids) == 0 {
		return uuid.Nil, domainerrors.ErrNoWaypointFound
	}

	var (
		bestID   uuid.UUID
		bestDist = math.MaxFloat64
		found    bool
	)

	consider := func(id uuid.UUID) {
		if accessibleOnly && !s.eligible(id) {
			return
		}
		wp, _ := s.graph.Waypoint(id)
		dist := haversineDistance(point, wp.Location)
		if dist < bestDist || (dist == bestDist && found && lessID(id, bestID)) {
			bestDist = dist
			bestID = id
			found = true
		}
	}

	if fi.useGrid {
		fi.searchGrid(point, bestRef{&bestDist}, consider)
	} else {
		// ids are sorted ascending, so with a strict comparison the lowest ID
		// wins ties automatically; the explicit tie-break above covers the
		// grid path, where visit order follows cell layout.
		for _, id := range fi.ids {
			consider(id)
		}
	}

	if !found {
		return uuid.Nil, domainerrors.ErrNoWaypointFound
	}

	return bestID, nil
}

// eligible implements the accessible-only candidate filter.
func (s *SpatialIndex) eligible(id uuid.UUID) bool {
	if s.graph.HasAccessibleAdjacency(id) {
		return true
	}
	wp, ok := s.graph.Waypoint(id)

	return ok && wp.Category.StairsFree()
}

// bestRef lets the ring search read the running best distance maintained by
// the consider closure.
type bestRef struct {
	dist *float64
}

func (f *floorIndex) buildGrid(graph *Graph, cellSizeM float64) {
	f.grid = make(map[gridKey][]uuid.UUID)

	first, _ := graph.Waypoint(f.ids[0])
	f.minLat, f.minLng = first.Location.Lat(), first.Location.Lon()
	maxLat := f.minLat
	for _, id := range f.ids {
		wp, _ := graph.Waypoint(id)
		f.minLat = math.Min(f.minLat, wp.Location.Lat())
		f.minLng = math.Min(f.minLng, wp.Location.Lon())
		maxLat = math.Max(maxLat, wp.Location.Lat())
	}

	f.cellSizeLatDeg = cellSizeM / metersPerDegreeLat
	f.cellSizeLngDeg = cellSizeM / (metersPerDegreeLat * math.Max(0.1, math.Cos(maxLat*math.Pi/180)))

	for _, id := range f.ids {
		wp, _ := graph.Waypoint(id)
		f.grid[f.key(wp.Location)] = append(f.grid[f.key(wp.Location)], id)
	}
	f.useGrid = true
}

func (f *floorIndex) key(p orb.Point) gridKey {
	return gridKey{
		latCell: int(math.Floor((p.Lat() - f.minLat) / f.cellSizeLatDeg)),
		lngCell: int(math.Floor((p.Lon() - f.minLng) / f.cellSizeLngDeg)),
	}
}

// searchGrid visits grid cells in expanding rings around the query point and
// stops once the next ring cannot contain a closer waypoint than the current
// best. The ring lower bound is shrunk by a safety factor so the approximate
// degree-to-meter conversion never cuts off the true nearest cell.
func (f *floorIndex) searchGrid(point orb.Point, best bestRef, consider func(uuid.UUID)) {
	center := f.key(point)
	cellSizeM := f.cellSizeLatDeg * metersPerDegreeLat
	maxRing := f.maxSearchRing(point)

	for ring := 0; ring <= maxRing; ring++ {
		f.visitRing(center, ring, consider)

		if ring > 0 && *best.dist < math.MaxFloat64 {
			minPossible := float64(ring) * cellSizeM * 0.9
			if minPossible > *best.dist {
				break
			}
		}
	}
}

func (f *floorIndex) visitRing(center gridKey, ring int, consider func(uuid.UUID)) {
	if ring == 0 {
		for _, id := range f.grid[center] {
			consider(id)
		}

		return
	}

	for dLat := -ring; dLat <= ring; dLat++ {
		for dLng := -ring; dLng <= ring; dLng++ {
			if absInt(dLat) != ring && absInt(dLng) != ring {
				continue
			}
			key := gridKey{latCell: center.latCell + dLat, lngCell: center.lngCell + dLng}
			for _, id := range f.grid[key] {
				consider(id)
			}
		}
	}
}

// maxSearchRing bounds ring expansion so a query far outside the floor's
// bounding box still terminates after covering every cell.
func (f *floorIndex) maxSearchRing(point orb.Point) int {
	span := 1
	for key := range f.grid {
		span = maxInt(span, absInt(key.latCell-f.key(point).latCell))
		span = maxInt(span, absInt(key.lngCell-f.key(point).lngCell))
	}

	return span
}

// haversineDistance calculates the great-circle distance between two
// [lng, lat] points in meters.
func haversineDistance(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
