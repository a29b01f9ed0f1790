package handlers

import (
	"net/http"
	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

// WaypointHandler exposes waypoint management endpoints.
// Geocoder may be nil, in which case new waypoints need coordinates.
type WaypointHandler struct {
	Repo     ports.WaypointRepository
	Geocoder ports.Geocoder
}

func (h *WaypointHandler) List(w http.ResponseWriter, r *http.Request) {
	waypoints, err := h.Repo.ListWaypoints(r.Context())
	if err != nil {
		writeServiceError(w, r, "list waypoints", err)
		return
	}

	res := dto.ListWaypointsResponse{
		Waypoints: make([]dto.WaypointResponse, 0, len(waypoints)),
	}
	for _, wp := range waypoints {
		res.Waypoints = append(res.Waypoints, toWaypointResponse(wp))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *WaypointHandler) Get(w http.ResponseWriter, r *http.Request) {
	wp, err := h.Repo.GetWaypoint(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, r, "get waypoint", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toWaypointResponse(wp))
}

func (h *WaypointHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddWaypointRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if (req.Lat == nil) != (req.Lon == nil) {
		writeError(w, r, http.StatusBadRequest, "lat and lon must be given together")
		return
	}

	svcReq := services.AddWaypointRequest{
		Name:          req.Name,
		VisitDuration: req.VisitDurationSeconds,
		VisitCost:     req.VisitCost,
	}
	if req.Lat != nil {
		svcReq.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	}

	added, err := services.AddWaypoint(r.Context(), svcReq, h.Repo, h.Geocoder)
	if err != nil {
		writeServiceError(w, r, "add waypoint", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toWaypointResponse(added))
}

func (h *WaypointHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateWaypointRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.VisitDurationSeconds == nil || req.VisitCost == nil {
		writeError(w, r, http.StatusBadRequest, "visit_duration_seconds and visit_cost are required")
		return
	}

	updated, err := services.UpdateWaypoint(r.Context(), r.PathValue("name"), *req.VisitDurationSeconds, *req.VisitCost, h.Repo)
	if err != nil {
		writeServiceError(w, r, "update waypoint", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toWaypointResponse(updated))
}

func (h *WaypointHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteWaypoint(r.Context(), r.PathValue("name")); err != nil {
		writeServiceError(w, r, "delete waypoint", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
