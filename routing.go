package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ttpr0/go-citymap/routing"
	"golang.org/x/exp/slog"
)

// Router serving the planning api of all cities held by manager.
func NewRouter(manager *CityManager) *mux.Router {
	app := mux.NewRouter()
	MapPost(app, "/v0/plan", HandlePlanRequest(manager))
	MapGet(app, "/v0/path", HandlePathRequest(manager))
	MapGet(app, "/v0/graph", HandleGraphRequest(manager))
	app.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return app
}

//**********************************************************
// plan handler
//**********************************************************

func HandlePlanRequest(manager *CityManager) func(PlanRequest) Result {
	return func(req PlanRequest) Result {
		city_ := manager.GetCity(req.City)
		if !city_.HasValue() {
			return NotFound(fmt.Sprintf("city %s not found", req.City))
		}
		city := city_.Value

		t := time.Now()
		start, destination := *req.Start, *req.Destination
		plan, err := city.Planner.Plan(start, destination)
		plan_duration.WithLabelValues(city.Name).Observe(time.Since(t).Seconds())
		if err != nil {
			plan_results.WithLabelValues(city.Name, "failed").Inc()
			return _ErrorResult(err)
		}
		plan_results.WithLabelValues(city.Name, "ok").Inc()
		slog.Debug(fmt.Sprintf("planned %d -> %d in %s: pickup %s at %d", start, destination, city.Name, plan.Friend, plan.PickupLocation))
		return OK(PlanResponse{
			City: city.Name,
			Plan: plan,
		})
	}
}

//**********************************************************
// path handler
//**********************************************************

func HandlePathRequest(manager *CityManager) func(PathRequest) Result {
	return func(req PathRequest) Result {
		city_ := manager.GetCity(req.City)
		if !city_.HasValue() {
			return NotFound(fmt.Sprintf("city %s not found", req.City))
		}
		city := city_.Value
		start, end := *req.Start, *req.End
		if !city.Graph.IsLocation(start) || !city.Graph.IsLocation(end) {
			return BadRequest(fmt.Sprintf("locations must be in [0, %d)", city.Graph.LocationCount()))
		}

		var alg routing.IShortestPath = routing.NewDijkstra(city.Graph, start, end)
		if !alg.CalcShortestPath() {
			return NotFound(fmt.Sprintf("no road from %d to %d", start, end))
		}
		path := alg.GetShortestPath()
		return OK(PathResponse{
			City:      city.Name,
			Start:     path.Start(),
			End:       path.End(),
			Distance:  path.Length,
			Locations: path.Locations,
		})
	}
}

//**********************************************************
// graph handler
//**********************************************************

func HandleGraphRequest(manager *CityManager) func(GraphRequest) Result {
	return func(req GraphRequest) Result {
		city_ := manager.GetCity(req.City)
		if !city_.HasValue() {
			return NotFound(fmt.Sprintf("city %s not found", req.City))
		}
		g := city_.Value.Graph
		return OK(GraphResponse{
			City:        req.City,
			Locations:   g.LocationCount(),
			Roads:       g.RoadCount(),
			Tracks:      g.TrackCount(),
			Annotations: g.GetAnnotations(),
			Dump:        g.String(),
		})
	}
}

func _ErrorResult(err error) Result {
	switch {
	case errors.Is(err, routing.ErrInvalidIndex):
		return BadRequest(err.Error())
	case errors.Is(err, routing.ErrNoReachablePickup), errors.Is(err, routing.ErrDisconnectedTarget):
		return NotFound(err.Error())
	default:
		return Result{
			result: err.Error(),
			status: http.StatusInternalServerError,
		}
	}
}
