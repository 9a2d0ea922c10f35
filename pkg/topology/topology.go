package topology

import (
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/farebox/farebox/pkg/util"
	"github.com/jinzhu/copier"
	"golang.org/x/exp/slices"
)

// Operation is one route mutation request. Fields combine: a stop list
// replacement is applied before a toggle, so the toggle runs against
// the new list.
type Operation struct {
	Name   string
	Status tmf.RecordStatus

	ReplaceStations  []string
	ToggleStationRef string
}

// Apply runs an operation against a route snapshot and returns the
// updated route. The input is never mutated; on error the input is
// returned unchanged and the caller must not persist anything.
func Apply(route tmf.Route, op Operation) (tmf.Route, error) {
	var updated tmf.Route
	if err := copier.CopyWithOption(&updated, &route, copier.Option{DeepCopy: true}); err != nil {
		return route, err
	}

	if op.Name != "" {
		updated.Name = op.Name
	}

	if op.Status != "" {
		if !op.Status.Valid() {
			return route, tmf.NewInvalidArgument("route status", `must be "active" or "inactive"`)
		}

		updated.Status = op.Status
	}

	if len(op.ReplaceStations) > 0 {
		replaceStops(&updated, op.ReplaceStations)
	}

	if op.ToggleStationRef != "" {
		if err := toggleStop(&updated, op.ToggleStationRef); err != nil {
			return route, err
		}
	}

	return updated, nil
}

// replaceStops rebuilds the stop list, renumbered 1..N in the order
// supplied, all active. Endpoints default to the first and last
// element; a toggle later in the same operation may reassign them.
func replaceStops(route *tmf.Route, stationRefs []string) {
	stops := make([]tmf.RouteStop, 0, len(stationRefs))
	for index, stationRef := range stationRefs {
		stops = append(stops, tmf.RouteStop{
			StationRef: stationRef,
			Order:      index + 1,
			Status:     tmf.RecordStatusActive,
		})
	}

	route.Stops = stops
	route.StartPoint = stationRefs[0]
	route.EndPoint = stationRefs[len(stationRefs)-1]
}

func toggleStop(route *tmf.Route, stationRef string) error {
	stop := route.Stop(stationRef)
	if stop == nil {
		return tmf.NewNotFound("route stop", stationRef)
	}

	if stop.Status == tmf.RecordStatusActive {
		stop.Status = tmf.RecordStatusInactive
		return stopDeactivated(route, stop)
	}

	stop.Status = tmf.RecordStatusActive
	stopActivated(route, stop)

	return nil
}

// stopDeactivated reassigns an endpoint that just lost its stop to the
// nearest remaining active stop. Nearest is always decided by the Order
// field, not array position, so explicit reordering is respected even
// when toggles interleave with replacements.
func stopDeactivated(route *tmf.Route, stop *tmf.RouteStop) error {
	if route.StartPoint != stop.StationRef && route.EndPoint != stop.StationRef {
		return nil
	}

	active := activeStopsInOrder(route)
	if len(active) == 0 {
		return tmf.NewInvalidState("route", "no active station available to serve as endpoint")
	}

	if route.StartPoint == stop.StationRef {
		route.StartPoint = active[0].StationRef
	}
	if route.EndPoint == stop.StationRef {
		route.EndPoint = active[len(active)-1].StationRef
	}

	return nil
}

// stopActivated lets a re-activated stop claim an endpoint when it now
// sits outside the current endpoints, or when an endpoint is unset.
func stopActivated(route *tmf.Route, stop *tmf.RouteStop) {
	start := route.Stop(route.StartPoint)
	if route.StartPoint == "" || start == nil || stop.Order < start.Order {
		route.StartPoint = stop.StationRef
	}

	end := route.Stop(route.EndPoint)
	if route.EndPoint == "" || end == nil || stop.Order > end.Order {
		route.EndPoint = stop.StationRef
	}
}

func activeStopsInOrder(route *tmf.Route) []tmf.RouteStop {
	active := slices.Clone(route.Stops)
	util.InPlaceFilter(&active, func(stop tmf.RouteStop) bool {
		return stop.Status == tmf.RecordStatusActive
	})

	slices.SortFunc(active, func(a tmf.RouteStop, b tmf.RouteStop) int {
		return a.Order - b.Order
	})

	return active
}
