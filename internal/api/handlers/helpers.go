package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"travel-itinerary-service/internal/api/dto"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object and rejects unknown fields.
// An empty body is accepted when allowEmpty is set and leaves dst unchanged.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps service and domain errors to HTTP statuses.
// Unexpected errors are logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrWaypointNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateWaypoint):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyRoute), errors.Is(err, domain.ErrEmptyInput):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidWaypoint),
		errors.Is(err, domain.ErrInvalidStartIndex),
		errors.Is(err, domain.ErrInvalidCeiling):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrGeocodeFailed):
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusBadGateway, "could not locate waypoint")
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toWaypointResponse(w *domain.Waypoint) dto.WaypointResponse {
	return dto.WaypointResponse{
		Name:                  w.Name,
		Lat:                   w.Coordinates.Lat,
		Lon:                   w.Coordinates.Lon,
		VisitDurationSeconds:  w.VisitDuration,
		VisitCost:             w.VisitCost,
		DistanceToNextMeters:  w.EdgeDistanceToNext,
		DurationToNextSeconds: w.EdgeDurationToNext,
	}
}

func toRouteResponse(waypoints []*domain.Waypoint) dto.RouteResponse {
	res := dto.RouteResponse{Waypoints: make([]dto.WaypointResponse, 0, len(waypoints))}
	for _, w := range waypoints {
		res.Waypoints = append(res.Waypoints, toWaypointResponse(w))
		res.TotalDistanceMeters += w.EdgeDistanceToNext
		res.TotalDurationSeconds += w.EdgeDurationToNext
	}
	return res
}
