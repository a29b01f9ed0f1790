package ports

import (
	"context"
	"travel-itinerary-service/internal/domain"
)

// Port: a boundary for storing waypoints in their persisted route order.
type WaypointRepository interface {
	// Retrieve all waypoints in persisted order.
	ListWaypoints(ctx context.Context) ([]*domain.Waypoint, error)
	GetWaypoint(ctx context.Context, name string) (*domain.Waypoint, error)
	// Store a new waypoint directly after the first one so both route
	// anchors keep their positions. Fails with ErrDuplicateWaypoint.
	AddWaypoint(ctx context.Context, w *domain.Waypoint) error
	UpdateWaypoint(ctx context.Context, name string, visitDuration, visitCost float64) (*domain.Waypoint, error)
	DeleteWaypoint(ctx context.Context, name string) error
	// Replace the persisted order and edge data with the given route.
	SaveRoute(ctx context.Context, route *domain.Route) error
}
