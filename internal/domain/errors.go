package domain

import "errors"

var (
	// ErrEmptyInput is returned when a route is requested for zero waypoints.
	ErrEmptyInput = errors.New("no waypoints given")
	// ErrEmptyRoute is returned when walking a route without waypoints.
	ErrEmptyRoute = errors.New("route has no waypoints")
	// ErrInvalidStartIndex is returned when a walk starts outside the route.
	ErrInvalidStartIndex = errors.New("start index outside route")
	// ErrInvalidCeiling is returned for negative or NaN budget/time ceilings.
	ErrInvalidCeiling = errors.New("ceiling must be a non-negative number")
	// ErrWaypointNotFound is returned by repositories for unknown names.
	ErrWaypointNotFound = errors.New("waypoint not found")
	// ErrDuplicateWaypoint is returned when adding a name that already exists.
	ErrDuplicateWaypoint = errors.New("waypoint already exists")
)
