package dto

type WaypointResponse struct {
	Name                  string  `json:"name"`
	Lat                   float64 `json:"lat"`
	Lon                   float64 `json:"lon"`
	VisitDurationSeconds  float64 `json:"visit_duration_seconds"`
	VisitCost             float64 `json:"visit_cost"`
	DistanceToNextMeters  float64 `json:"distance_to_next_meters"`
	DurationToNextSeconds float64 `json:"duration_to_next_seconds"`
}

type ListWaypointsResponse struct {
	Waypoints []WaypointResponse `json:"waypoints"`
}

// Lat and Lon are optional; the name is geocoded when both are missing.
type AddWaypointRequest struct {
	Name                 string   `json:"name"`
	Lat                  *float64 `json:"lat"`
	Lon                  *float64 `json:"lon"`
	VisitDurationSeconds float64  `json:"visit_duration_seconds"`
	VisitCost            float64  `json:"visit_cost"`
}

type UpdateWaypointRequest struct {
	VisitDurationSeconds *float64 `json:"visit_duration_seconds"`
	VisitCost            *float64 `json:"visit_cost"`
}

type RebuildRouteRequest struct {
	WrapAround bool `json:"wrap_around"`
}

type RouteResponse struct {
	Waypoints            []WaypointResponse `json:"waypoints"`
	TotalDistanceMeters  float64            `json:"total_distance_meters"`
	TotalDurationSeconds float64            `json:"total_duration_seconds"`
}
