package handlers

import (
	"net/http"
	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

type RouteHandler struct {
	Repo              ports.WaypointRepository
	Provider          ports.DistanceProvider
	EnrichConcurrency int
}

// Get returns the stored route order with its cached legs.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	waypoints, err := h.Repo.ListWaypoints(r.Context())
	if err != nil {
		writeServiceError(w, r, "get route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(waypoints))
}

// Rebuild reorders the stored waypoints, refreshes their legs and persists the result.
func (h *RouteHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	var req dto.RebuildRouteRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	svcReq := services.RebuildRouteRequest{
		WrapAround:  req.WrapAround,
		Concurrency: h.EnrichConcurrency,
	}

	route, err := services.RebuildRoute(r.Context(), svcReq, h.Repo, h.Provider)
	if err != nil {
		writeServiceError(w, r, "rebuild route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(route.Waypoints()))
}
