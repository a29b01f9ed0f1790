package dto

type ItineraryRequest struct {
	StartIndex  *int     `json:"start_index"`
	StartName   string   `json:"start_name"`
	Budget      *float64 `json:"budget"`
	TimeSeconds *float64 `json:"time_seconds"`
}

type ItineraryStopResponse struct {
	Name                  string  `json:"name"`
	VisitDurationSeconds  float64 `json:"visit_duration_seconds"`
	VisitCost             float64 `json:"visit_cost"`
	DistanceToNextMeters  float64 `json:"distance_to_next_meters"`
	DurationToNextSeconds float64 `json:"duration_to_next_seconds"`
}

type ItineraryResponse struct {
	StartIndex           int                     `json:"start_index"`
	Stops                []ItineraryStopResponse `json:"stops"`
	TotalCost            float64                 `json:"total_cost"`
	TotalDurationSeconds float64                 `json:"total_duration_seconds"`
	TotalDistanceMeters  float64                 `json:"total_distance_meters"`
}
