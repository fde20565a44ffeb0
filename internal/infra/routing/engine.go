package routing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/domain/repository"
	"github.com/AmbientEg/navigation-service/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// EngineConfig carries the tunables of the routing engine.
type EngineConfig struct {
	// CacheTTL bounds how long a graph snapshot is served before a rebuild;
	// zero disables expiry (snapshots live until invalidated).
	CacheTTL time.Duration

	// GridCellSizeMeters is the spatial index cell edge length.
	GridCellSizeMeters float64

	// Narration configures step aggregation and rounding.
	Narration NarrationConfig
}

// RouteRequest describes one routing query. The destination waypoint is
// pre-resolved by the caller (typically from a POI).
type RouteRequest struct {
	BuildingID            uuid.UUID
	OriginFloorID         uuid.UUID
	Origin                orb.Point // [lng, lat]
	DestinationWaypointID uuid.UUID
	AccessibleOnly        bool
}

// snapshot bundles a built graph with its spatial index. Immutable; the
// cache swaps whole snapshots, so in-flight requests holding an old one
// complete against stale-but-coherent data.
type snapshot struct {
	graph   *Graph
	spatial *SpatialIndex
	builtAt time.Time
}

type snapshotKey struct {
	buildingID     uuid.UUID
	accessibleOnly bool
}

// Engine composes graph assembly, origin resolution, shortest-path search and
// route assembly per request. Its only long-lived mutable state is the
// read-through snapshot cache.
type Engine struct {
	repo      repository.GraphRepository
	assembler *RouteAssembler
	logger    *slog.Logger
	cfg       EngineConfig

	mu        sync.RWMutex
	snapshots map[snapshotKey]*snapshot
}

// NewEngine creates a routing engine. labelFloor may be nil; it only affects
// narration wording.
func NewEngine(repo repository.GraphRepository, logger *slog.Logger, cfg EngineConfig, labelFloor FloorLabeler) *Engine {
	return &Engine{
		repo:      repo,
		assembler: NewRouteAssembler(cfg.Narration, labelFloor),
		logger:    logger,
		cfg:       cfg,
		snapshots: make(map[snapshotKey]*snapshot),
	}
}

// Route resolves the origin to its nearest eligible waypoint, finds the
// shortest path to the destination waypoint and assembles the result.
//
// Error kinds from the lower layers (ErrNoWaypointFound, ErrUnknownWaypoint,
// ErrNoPathFound, ErrInvalidSegmentCost) pass through unchanged. Origin
// resolving to the destination itself is the valid zero-length route, not an
// error.
func (e *Engine) Route(ctx context.Context, req RouteRequest) (result *RouteResult, err error) {
	defer func() {
		// Panics must not escape the engine boundary unclassified.
		if r := recover(); r != nil {
			e.logger.Error("routing engine panic", slog.Any("panic", r))
			result = nil
			err = domainerrors.ErrInternalError.WrapMessage("routing engine panic")
		}
	}()

	snap, err := e.snapshotFor(ctx, req.BuildingID, req.AccessibleOnly)
	if err != nil {
		return nil, err
	}

	originID, err := snap.spatial.Resolve(req.OriginFloorID, req.Origin, req.AccessibleOnly)
	if err != nil {
		return nil, err
	}

	if originID == req.DestinationWaypointID {
		// Degenerate but valid: a zero-length route with a single-point path.
		wp, _ := snap.graph.Waypoint(originID)

		return e.assembler.Assemble(&RoutePath{Waypoints: []*entity.Waypoint{wp}}), nil
	}

	path, err := ShortestPath(snap.graph, originID, req.DestinationWaypointID)
	if err != nil {
		return nil, err
	}

	return e.assembler.Assemble(path), nil
}

// ResolveWaypoint snaps a coordinate on a floor to its nearest eligible
// waypoint, against the same snapshot a subsequent Route call would use.
// Callers use it to turn a destination POI into a routable waypoint.
func (e *Engine) ResolveWaypoint(ctx context.Context, buildingID, floorID uuid.UUID, point orb.Point, accessibleOnly bool) (uuid.UUID, error) {
	snap, err := e.snapshotFor(ctx, buildingID, accessibleOnly)
	if err != nil {
		return uuid.Nil, err
	}

	return snap.spatial.Resolve(floorID, point, accessibleOnly)
}

// Invalidate drops the cached snapshots of a building. The external store
// must call this whenever the building's waypoint or segment data changes.
func (e *Engine) Invalidate(buildingID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.snapshots, snapshotKey{buildingID: buildingID, accessibleOnly: true})
	delete(e.snapshots, snapshotKey{buildingID: buildingID, accessibleOnly: false})
}

// snapshotFor serves a cached snapshot or builds a fresh one. A rebuild
// replaces the map entry atomically under the write lock; it never mutates a
// published snapshot.
func (e *Engine) snapshotFor(ctx context.Context, buildingID uuid.UUID, accessibleOnly bool) (*snapshot, error) {
	key := snapshotKey{buildingID: buildingID, accessibleOnly: accessibleOnly}

	e.mu.RLock()
	snap, ok := e.snapshots[key]
	e.mu.RUnlock()
	if ok && !e.expired(snap) {
		return snap, nil
	}

	waypoints, err := e.repo.ListWaypointsByBuilding(ctx, buildingID)
	if err != nil {
		return nil, errors.Wrap(err, "load waypoints")
	}
	segments, err := e.repo.ListSegmentsByBuilding(ctx, buildingID)
	if err != nil {
		return nil, errors.Wrap(err, "load segments")
	}

	graph, err := BuildGraph(waypoints, segments, accessibleOnly)
	if err != nil {
		return nil, err
	}

	fresh := &snapshot{
		graph:   graph,
		spatial: NewSpatialIndex(graph, e.cfg.GridCellSizeMeters),
		builtAt: time.Now(),
	}

	e.mu.Lock()
	e.snapshots[key] = fresh
	e.mu.Unlock()

	e.logger.Debug("routing graph snapshot built",
		slog.String("buildingID", buildingID.String()),
		slog.Bool("accessibleOnly", accessibleOnly),
		slog.Int("waypoints", graph.Order()))

	return fresh, nil
}

func (e *Engine) expired(snap *snapshot) bool {
	return e.cfg.CacheTTL > 0 && time.Since(snap.builtAt) > e.cfg.CacheTTL
}
