package faregen

import (
	"context"
	"math"
	"time"

	"github.com/farebox/farebox/pkg/refdata"
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"
)

type Generator struct {
	refData refdata.Store
	routes  refdata.RouteStore
	fares   FareResolver

	validate *validator.Validate
}

func NewGenerator(refData refdata.Store, routes refdata.RouteStore, fares FareResolver) *Generator {
	if fares == nil {
		fares = UnitFareResolver{}
	}

	return &Generator{
		refData:  refData,
		routes:   routes,
		fares:    fares,
		validate: validator.New(),
	}
}

// GenerateTicketMatrix expands a ticket selection into a fully priced
// draft. Generation is atomic: any unresolvable dimension returns an
// error and no document.
func (g *Generator) GenerateTicketMatrix(ctx context.Context, selection TicketSelection) (*tmf.PriceDefinition, error) {
	if err := g.validate.Struct(selection); err != nil {
		return nil, tmf.NewInvalidArgument("fare selection", err.Error())
	}

	dims, err := g.resolveDimensions(ctx, selection.TransportTypeRef, selection.TransportSubtypeRef,
		selection.SeatClassRefs, selection.PassengerSubcategoryRefs, selection.TaxMode, selection.TaxRuleRef)
	if err != nil {
		return nil, err
	}

	definition := &tmf.PriceDefinition{
		FareBasis:              selection.FareBasis,
		TransportType:          dims.transportType,
		TransportSubtype:       dims.transportSubtype,
		SeatClasses:            dims.seatClasses,
		PassengerSubcategories: dims.passengers,
		TaxMode:                selection.TaxMode,
		TaxRule:                dims.taxRule,
		Status:                 tmf.RecordStatusActive,
		CreationDateTime:       time.Now(),
	}

	switch selection.FareBasis {
	case tmf.FareBasisDistance:
		definition.Prices = g.expandDistance(dims)
	case tmf.FareBasisStationPair:
		route, err := g.routes.GetRoute(ctx, selection.RouteRef)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, tmf.NewNotFound("route", selection.RouteRef)
		}

		definition.Route = &tmf.Reference{Ref: route.PrimaryIdentifier, Name: route.Name}
		definition.Prices = g.expandStationPairs(ctx, route, dims)
	}

	return definition, nil
}

// expandDistance emits one row per seat class with no station pair
// attached: distance based fares are flat across the route.
func (g *Generator) expandDistance(dims dimensions) []tmf.PriceRow {
	rows := []tmf.PriceRow{}
	for _, seatClass := range dims.seatClasses {
		rows = append(rows, tmf.PriceRow{
			SeatClass:      seatClass,
			PassengerFares: g.priceCells(dims, seatClass),
		})
	}

	return rows
}

// expandStationPairs crosses every forward (from, upto) station pair
// of the route with every seat class. A route with fewer than 2
// resolvable stations yields an empty price list, not an error.
func (g *Generator) expandStationPairs(ctx context.Context, route *tmf.Route, dims dimensions) []tmf.PriceRow {
	stationNames := g.stationNamesInOrder(ctx, route)

	rows := []tmf.PriceRow{}
	for from := 0; from < len(stationNames); from++ {
		for upto := from + 1; upto < len(stationNames); upto++ {
			for _, seatClass := range dims.seatClasses {
				rows = append(rows, tmf.PriceRow{
					FromStation:    stationNames[from],
					ToStation:      stationNames[upto],
					SeatClass:      seatClass,
					PassengerFares: g.priceCells(dims, seatClass),
				})
			}
		}
	}

	return rows
}

// stationNamesInOrder walks the stop list by the stops' Order field.
// Stations that no longer resolve are skipped rather than priced under
// a dangling reference.
func (g *Generator) stationNamesInOrder(ctx context.Context, route *tmf.Route) []string {
	stops := slices.Clone(route.Stops)
	slices.SortFunc(stops, func(a tmf.RouteStop, b tmf.RouteStop) int {
		return a.Order - b.Order
	})

	names := []string{}
	for _, stop := range stops {
		station, err := g.refData.FindByID(ctx, refdata.KindStation, stop.StationRef)
		if err != nil || station == nil {
			continue
		}

		names = append(names, station.Name)
	}

	return names
}

func (g *Generator) priceCells(dims dimensions, seatClass tmf.Reference) []tmf.PassengerFare {
	cells := make([]tmf.PassengerFare, 0, len(dims.passengers))
	for _, passenger := range dims.passengers {
		fare := g.fares.BaseFare(seatClass, passenger)

		taxAmount := 0.0
		if dims.taxRule != nil {
			taxAmount = round2(fare * dims.taxRule.Percentage / 100)
		}

		cells = append(cells, tmf.PassengerFare{
			Passenger:  passenger,
			Fare:       fare,
			TaxAmount:  taxAmount,
			TotalPrice: fare + taxAmount,
		})
	}

	return cells
}

type dimensions struct {
	transportType    tmf.Reference
	transportSubtype tmf.Reference
	seatClasses      []tmf.Reference
	passengers       []tmf.Reference

	// nil when the tax mode is excluded, so every cell computes a zero
	// tax amount.
	taxRule *tmf.TaxRuleReference
}

func (g *Generator) resolveDimensions(ctx context.Context, transportTypeRef string, transportSubtypeRef string,
	seatClassRefs []string, passengerRefs []string, taxMode tmf.TaxMode, taxRuleRef string) (dimensions, error) {
	var dims dimensions

	transportType, err := g.refData.FindByID(ctx, refdata.KindTransportType, transportTypeRef)
	if err != nil {
		return dims, err
	}
	if transportType == nil {
		return dims, tmf.NewNotFound("transport type", transportTypeRef)
	}
	dims.transportType = tmf.Reference{Ref: transportType.PrimaryIdentifier, Name: transportType.Name}

	transportSubtype, err := g.refData.FindByID(ctx, refdata.KindTransportSubtype, transportSubtypeRef)
	if err != nil {
		return dims, err
	}
	if transportSubtype == nil {
		return dims, tmf.NewNotFound("transport subtype", transportSubtypeRef)
	}
	dims.transportSubtype = tmf.Reference{Ref: transportSubtype.PrimaryIdentifier, Name: transportSubtype.Name}

	for _, seatClassRef := range seatClassRefs {
		seatClass, err := g.refData.FindByID(ctx, refdata.KindSeatClass, seatClassRef)
		if err != nil {
			return dims, err
		}
		if seatClass == nil {
			return dims, tmf.NewNotFound("seat class", seatClassRef)
		}

		dims.seatClasses = append(dims.seatClasses, tmf.Reference{Ref: seatClass.PrimaryIdentifier, Name: seatClass.Name})
	}

	for _, passengerRef := range passengerRefs {
		subcategory, err := g.refData.FindSubcategoryByID(ctx, passengerRef)
		if err != nil {
			return dims, err
		}
		if subcategory == nil {
			return dims, tmf.NewNotFound("passenger subcategory", passengerRef)
		}

		dims.passengers = append(dims.passengers, tmf.Reference{Ref: subcategory.SubcategoryRef, Name: subcategory.Name})
	}

	if taxMode == tmf.TaxModeIncluded {
		taxRule, err := g.refData.FindTaxRule(ctx, taxRuleRef)
		if err != nil {
			return dims, err
		}
		if taxRule == nil {
			return dims, tmf.NewNotFound("tax rule", taxRuleRef)
		}

		dims.taxRule = &tmf.TaxRuleReference{
			Ref:        taxRule.PrimaryIdentifier,
			Name:       taxRule.Name,
			Percentage: taxRule.Percentage,
		}
	}

	return dims, nil
}

// round2 rounds to 2 decimal places, half up. Applied to the tax
// amount before summation so TotalPrice is always exactly
// Fare + TaxAmount.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
