package api

import (
	"net/http"
	"travel-itinerary-service/internal/api/handlers"
	"travel-itinerary-service/internal/metrics"
	"travel-itinerary-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the ports the HTTP layer needs.
type Dependencies struct {
	Repo              ports.WaypointRepository
	Provider          ports.DistanceProvider
	Geocoder          ports.Geocoder
	EnrichConcurrency int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	metrics.Register()

	mux := http.NewServeMux()

	waypoints := &handlers.WaypointHandler{Repo: deps.Repo, Geocoder: deps.Geocoder}
	route := &handlers.RouteHandler{
		Repo:              deps.Repo,
		Provider:          deps.Provider,
		EnrichConcurrency: deps.EnrichConcurrency,
	}
	itineraries := &handlers.ItineraryHandler{Repo: deps.Repo}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /waypoints", waypoints.List)
	mux.HandleFunc("POST /waypoints", waypoints.Add)
	mux.HandleFunc("GET /waypoints/{name}", waypoints.Get)
	mux.HandleFunc("PUT /waypoints/{name}", waypoints.Update)
	mux.HandleFunc("DELETE /waypoints/{name}", waypoints.Delete)

	mux.HandleFunc("GET /route", route.Get)
	mux.HandleFunc("POST /route/rebuild", route.Rebuild)

	mux.HandleFunc("POST /itineraries", itineraries.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
