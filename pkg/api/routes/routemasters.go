package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/refdata"
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/farebox/farebox/pkg/topology"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slices"
)

func RouteMastersRouter(router fiber.Router) {
	router.Get("/", listRouteMasters)
	router.Post("/", createRouteMaster)
	router.Get("/:identifier", getRouteMaster)
	router.Patch("/:identifier", updateRouteMaster)
	router.Delete("/:identifier", deleteRouteMaster)
}

type routeSummary struct {
	PrimaryIdentifier string
	Name              string

	StartStationName string
	EndStationName   string

	TotalStations int

	Status tmf.RecordStatus
}

func listRouteMasters(c *fiber.Ctx) error {
	routesCollection := database.GetCollection("routes")

	cursor, err := routesCollection.Find(context.Background(), bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return apiError(c, err)
	}

	summaries := []routeSummary{}
	for cursor.Next(context.Background()) {
		var route tmf.Route
		if err := cursor.Decode(&route); err != nil {
			return apiError(c, err)
		}

		summaries = append(summaries, routeSummary{
			PrimaryIdentifier: route.PrimaryIdentifier,
			Name:              route.Name,
			StartStationName:  stationName(route.StartPoint),
			EndStationName:    stationName(route.EndPoint),
			TotalStations:     route.ActiveStopCount(),
			Status:            route.Status,
		})
	}

	return c.JSON(summaries)
}

type createRouteRequest struct {
	Name     string
	Stations []string
}

func createRouteMaster(c *fiber.Ctx) error {
	var request createRouteRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, tmf.NewInvalidArgument("route", "body must be valid JSON"))
	}

	if request.Name == "" || len(request.Stations) == 0 {
		return apiError(c, tmf.NewInvalidArgument("route", "a name and at least one station are required"))
	}

	routesCollection := database.GetCollection("routes")

	err := routesCollection.FindOne(context.Background(), bson.M{
		"name":    request.Name,
		"deleted": bson.M{"$ne": true},
	}).Err()
	if err == nil {
		return apiError(c, tmf.NewConflict("route", request.Name))
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return apiError(c, err)
	}

	now := time.Now()
	route := tmf.Route{
		PrimaryIdentifier:    fmt.Sprintf(tmf.RouteIDFormat, uuid.NewString()),
		Name:                 request.Name,
		Status:               tmf.RecordStatusActive,
		CreationDateTime:     now,
		ModificationDateTime: now,
	}

	route, err = topology.Apply(route, topology.Operation{ReplaceStations: request.Stations})
	if err != nil {
		return apiError(c, err)
	}

	if err := routeStore.SaveRoute(context.Background(), &route); err != nil {
		return apiError(c, err)
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(route)
}

type routeStopDetail struct {
	StationRef string
	Name       string
	Location   *tmf.Location

	Order  int
	Status tmf.RecordStatus
}

type routeDetail struct {
	PrimaryIdentifier string
	Name              string

	StartPoint string
	EndPoint   string

	Stops []routeStopDetail

	Status tmf.RecordStatus
}

func getRouteMaster(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	route, err := routeStore.GetRoute(context.Background(), identifier)
	if err != nil {
		return apiError(c, err)
	}
	if route == nil {
		return apiError(c, tmf.NewNotFound("route", identifier))
	}

	stops := slices.Clone(route.Stops)
	slices.SortFunc(stops, func(a tmf.RouteStop, b tmf.RouteStop) int {
		return a.Order - b.Order
	})

	detail := routeDetail{
		PrimaryIdentifier: route.PrimaryIdentifier,
		Name:              route.Name,
		StartPoint:        route.StartPoint,
		EndPoint:          route.EndPoint,
		Stops:             []routeStopDetail{},
		Status:            route.Status,
	}

	stationsCollection := database.GetCollection("stations")
	for _, stop := range stops {
		var station tmf.Station
		err := stationsCollection.FindOne(context.Background(), bson.M{
			"primaryidentifier": stop.StationRef,
			"deleted":           bson.M{"$ne": true},
		}).Decode(&station)
		if err != nil {
			// Stations removed from the master list disappear from the
			// route view, matching the list behaviour.
			continue
		}

		detail.Stops = append(detail.Stops, routeStopDetail{
			StationRef: stop.StationRef,
			Name:       station.Name,
			Location:   station.Location,
			Order:      stop.Order,
			Status:     stop.Status,
		})
	}

	return c.JSON(detail)
}

type updateRouteRequest struct {
	Name   string
	Status tmf.RecordStatus

	Stations         []string
	ToggleStationRef string
}

func updateRouteMaster(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var request updateRouteRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, tmf.NewInvalidArgument("route", "body must be valid JSON"))
	}

	if request.Stations != nil && len(request.Stations) == 0 {
		return apiError(c, tmf.NewInvalidArgument("route", "replacement station list must not be empty"))
	}

	route, err := routeStore.GetRoute(context.Background(), identifier)
	if err != nil {
		return apiError(c, err)
	}
	if route == nil {
		return apiError(c, tmf.NewNotFound("route", identifier))
	}

	updated, err := topology.Apply(*route, topology.Operation{
		Name:             request.Name,
		Status:           request.Status,
		ReplaceStations:  request.Stations,
		ToggleStationRef: request.ToggleStationRef,
	})
	if err != nil {
		return apiError(c, err)
	}

	updated.ModificationDateTime = time.Now()
	if err := routeStore.SaveRoute(context.Background(), &updated); err != nil {
		return apiError(c, err)
	}

	return c.JSON(updated)
}

func deleteRouteMaster(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	route, err := routeStore.GetRoute(context.Background(), identifier)
	if err != nil {
		return apiError(c, err)
	}
	if route == nil {
		return apiError(c, tmf.NewNotFound("route", identifier))
	}

	now := time.Now()
	route.Deleted = true
	route.DeletedAt = &now
	route.ModificationDateTime = now

	if err := routeStore.SaveRoute(context.Background(), route); err != nil {
		return apiError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func stationName(stationRef string) string {
	record, err := refDataStore.FindByID(context.Background(), refdata.KindStation, stationRef)
	if err != nil || record == nil {
		return "N/A"
	}

	return record.Name
}
