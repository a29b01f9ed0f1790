package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

var (
	// ErrInvalidWaypoint is returned for waypoint input that fails validation.
	ErrInvalidWaypoint = errors.New("invalid waypoint")
	// ErrGeocodeFailed wraps geocoder failures while adding a waypoint.
	ErrGeocodeFailed = errors.New("geocode failed")
)

type AddWaypointRequest struct {
	Name string
	// Coordinates is geocoded from Name when nil.
	Coordinates   *domain.Coordinates
	VisitDuration float64
	VisitCost     float64
}

// AddWaypoint validates and stores a new waypoint, geocoding it when needed.
func AddWaypoint(
	ctx context.Context,
	req AddWaypointRequest,
	repo ports.WaypointRepository,
	geocoder ports.Geocoder,
) (_ *domain.Waypoint, err error) {
	defer obs.Time(ctx, "services.AddWaypoint")(&err)

	name := strings.Join(strings.Fields(req.Name), " ")
	if name == "" {
		return nil, fmt.Errorf("add waypoint: name is required: %w", ErrInvalidWaypoint)
	}
	if err := validateVisit(req.VisitDuration, req.VisitCost); err != nil {
		return nil, fmt.Errorf("add waypoint %q: %w", name, err)
	}

	var coords domain.Coordinates
	if req.Coordinates != nil {
		coords = *req.Coordinates
	} else {
		if geocoder == nil {
			return nil, fmt.Errorf("add waypoint %q: coordinates required without a geocoder: %w", name, ErrInvalidWaypoint)
		}
		coords, err = geocoder.Geocode(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("add waypoint %q: %w: %w", name, ErrGeocodeFailed, err)
		}
	}
	if !coords.Valid() {
		return nil, fmt.Errorf("add waypoint %q: coordinates %v out of range: %w", name, coords, ErrInvalidWaypoint)
	}

	w := &domain.Waypoint{
		Name:          name,
		Coordinates:   coords,
		VisitDuration: req.VisitDuration,
		VisitCost:     req.VisitCost,
	}
	if err := repo.AddWaypoint(ctx, w); err != nil {
		return nil, fmt.Errorf("add waypoint %q: %w", name, err)
	}

	return w, nil
}

// UpdateWaypoint changes the visit duration and cost of a stored waypoint.
// An unknown name is reported before the new values are validated.
func UpdateWaypoint(
	ctx context.Context,
	name string,
	visitDuration, visitCost float64,
	repo ports.WaypointRepository,
) (*domain.Waypoint, error) {
	name = strings.TrimSpace(name)
	if _, err := repo.GetWaypoint(ctx, name); err != nil {
		return nil, fmt.Errorf("update waypoint %q: %w", name, err)
	}
	if err := validateVisit(visitDuration, visitCost); err != nil {
		return nil, fmt.Errorf("update waypoint %q: %w", name, err)
	}
	w, err := repo.UpdateWaypoint(ctx, name, visitDuration, visitCost)
	if err != nil {
		return nil, fmt.Errorf("update waypoint %q: %w", name, err)
	}
	return w, nil
}

func validateVisit(duration, cost float64) error {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return fmt.Errorf("visit duration %v must be non-negative: %w", duration, ErrInvalidWaypoint)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return fmt.Errorf("visit cost %v must be non-negative: %w", cost, ErrInvalidWaypoint)
	}
	return nil
}
