package faregen

import (
	"context"
	"time"

	"github.com/farebox/farebox/pkg/tmf"
)

// GeneratePassMatrix expands a pass selection into one sub-table per
// seat class, one fare block per selected duration tag, one cell per
// passenger subcategory. Cell pricing is identical to the ticket path.
func (g *Generator) GeneratePassMatrix(ctx context.Context, selection PassSelection) (*tmf.PassDefinition, error) {
	if err := g.validate.Struct(selection); err != nil {
		return nil, tmf.NewInvalidArgument("pass selection", err.Error())
	}

	dims, err := g.resolveDimensions(ctx, selection.TransportTypeRef, selection.TransportSubtypeRef,
		selection.SeatClassRefs, selection.PassengerSubcategoryRefs, selection.TaxMode, selection.TaxRuleRef)
	if err != nil {
		return nil, err
	}

	definition := &tmf.PassDefinition{
		TransportType:          dims.transportType,
		TransportSubtype:       dims.transportSubtype,
		SeatClasses:            dims.seatClasses,
		PassengerSubcategories: dims.passengers,
		Durations:              selection.Durations,
		TaxMode:                selection.TaxMode,
		TaxRule:                dims.taxRule,
		Status:                 tmf.RecordStatusActive,
		CreationDateTime:       time.Now(),
	}

	for _, seatClass := range dims.seatClasses {
		table := tmf.PassFareTable{SeatClass: seatClass}

		for _, duration := range selection.Durations {
			table.Durations = append(table.Durations, tmf.PassDurationFares{
				Duration:       duration,
				PassengerFares: g.priceCells(dims, seatClass),
			})
		}

		definition.Prices = append(definition.Prices, table)
	}

	return definition, nil
}
