package handlers

import (
	"net/http"
	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Repo ports.WaypointRepository
}

// Plan walks the stored route from the requested start under the given
// budget and time ceilings.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.ItineraryRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if req.Budget == nil || req.TimeSeconds == nil {
		writeError(w, r, http.StatusBadRequest, "budget and time_seconds are required")
		return
	}

	svcReq := services.PlanItineraryRequest{
		StartIndex:  req.StartIndex,
		StartName:   req.StartName,
		Budget:      *req.Budget,
		TimeSeconds: *req.TimeSeconds,
	}

	it, err := services.PlanItinerary(r.Context(), svcReq, h.Repo)
	if err != nil {
		writeServiceError(w, r, "plan itinerary", err)
		return
	}

	res := dto.ItineraryResponse{
		StartIndex:           it.StartIndex,
		Stops:                make([]dto.ItineraryStopResponse, 0, it.Walk.Len()),
		TotalCost:            it.Totals.Cost,
		TotalDurationSeconds: it.Totals.DurationSeconds,
		TotalDistanceMeters:  it.Totals.DistanceMeters,
	}
	for _, s := range it.Walk.Stops {
		res.Stops = append(res.Stops, dto.ItineraryStopResponse{
			Name:                  s.Name,
			VisitDurationSeconds:  s.VisitDuration,
			VisitCost:             s.VisitCost,
			DistanceToNextMeters:  s.EdgeDistanceToNext,
			DurationToNextSeconds: s.EdgeDurationToNext,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
