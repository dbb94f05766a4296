// Package navigator serves shortest-path queries over one shared, read-only
// occupancy grid, adding the operational layer around astar.
//
// What:
//
//   - Engine wraps a *gridmap.Grid and answers Route(ctx, start, goal).
//   - Every query gets an optional timeout, an expansion cap, an OpenTelemetry
//     span, Prometheus metrics and structured slog output.
//   - RouteAll fans a batch of queries out to a bounded pool of goroutines.
//   - Stats exposes lock-free counters for dashboards and tests.
//
// Metrics:
//
//   - gridpath_route_total{result}             found, no_path, error
//   - gridpath_route_duration_seconds          query latency
//   - gridpath_route_expanded_nodes            cells expanded per completed query
//   - gridpath_route_errors_total{error_type}  invalid_endpoint, limit, canceled, other
//
// Thread safety:
//
//	Engine is safe for concurrent use. Each query owns its own search state;
//	the grid is never mutated.
package navigator
