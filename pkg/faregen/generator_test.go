package faregen

import (
	"context"
	"fmt"
	"testing"

	"github.com/farebox/farebox/pkg/refdata"
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	records       map[refdata.Kind]map[string]string
	subcategories map[string]string
	taxRules      map[string]float64
}

func (s *fakeStore) ListActive(ctx context.Context, kind refdata.Kind) ([]refdata.Record, error) {
	records := []refdata.Record{}
	for ref, name := range s.records[kind] {
		records = append(records, refdata.Record{PrimaryIdentifier: ref, Name: name})
	}

	return records, nil
}

func (s *fakeStore) FindByID(ctx context.Context, kind refdata.Kind, ref string) (*refdata.Record, error) {
	name, found := s.records[kind][ref]
	if !found {
		return nil, nil
	}

	return &refdata.Record{PrimaryIdentifier: ref, Name: name}, nil
}

func (s *fakeStore) FindSubcategoryByID(ctx context.Context, ref string) (*refdata.SubcategoryIndexEntry, error) {
	name, found := s.subcategories[ref]
	if !found {
		return nil, nil
	}

	return &refdata.SubcategoryIndexEntry{SubcategoryRef: ref, Name: name}, nil
}

func (s *fakeStore) FindTaxRule(ctx context.Context, ref string) (*tmf.TaxRule, error) {
	percentage, found := s.taxRules[ref]
	if !found {
		return nil, nil
	}

	return &tmf.TaxRule{PrimaryIdentifier: ref, Name: "GST", Percentage: percentage}, nil
}

type fakeRouteStore struct {
	routes map[string]*tmf.Route
}

func (s *fakeRouteStore) GetRoute(ctx context.Context, ref string) (*tmf.Route, error) {
	return s.routes[ref], nil
}

func (s *fakeRouteStore) SaveRoute(ctx context.Context, route *tmf.Route) error {
	s.routes[route.PrimaryIdentifier] = route

	return nil
}

func testStore() *fakeStore {
	return &fakeStore{
		records: map[refdata.Kind]map[string]string{
			refdata.KindStation: {
				"station-a": "Alderton",
				"station-b": "Bridgefield",
				"station-c": "Carrow",
				"station-d": "Duncraig",
			},
			refdata.KindSeatClass: {
				"seat-standard": "Standard",
				"seat-premium":  "Premium",
			},
			refdata.KindTransportType:    {"type-bus": "Bus"},
			refdata.KindTransportSubtype: {"subtype-express": "Express"},
		},
		subcategories: map[string]string{
			"passenger-adult": "Adult",
			"passenger-child": "Child",
		},
		taxRules: map[string]float64{"tax-gst": 12},
	}
}

func testRouteStore() *fakeRouteStore {
	return &fakeRouteStore{
		routes: map[string]*tmf.Route{
			"farebox-route-test": {
				PrimaryIdentifier: "farebox-route-test",
				Name:              "Airport Express",
				StartPoint:        "station-a",
				EndPoint:          "station-d",
				Stops: []tmf.RouteStop{
					{StationRef: "station-d", Order: 4, Status: tmf.RecordStatusActive},
					{StationRef: "station-a", Order: 1, Status: tmf.RecordStatusActive},
					{StationRef: "station-b", Order: 2, Status: tmf.RecordStatusActive},
					{StationRef: "station-c", Order: 3, Status: tmf.RecordStatusActive},
				},
				Status: tmf.RecordStatusActive,
			},
		},
	}
}

func ticketSelection() TicketSelection {
	return TicketSelection{
		TransportTypeRef:         "type-bus",
		TransportSubtypeRef:      "subtype-express",
		SeatClassRefs:            []string{"seat-standard", "seat-premium"},
		PassengerSubcategoryRefs: []string{"passenger-adult", "passenger-child"},
		FareBasis:                tmf.FareBasisStationPair,
		RouteRef:                 "farebox-route-test",
		TaxMode:                  tmf.TaxModeIncluded,
		TaxRuleRef:               "tax-gst",
	}
}

func TestGenerateTicketMatrixStationPairs(t *testing.T) {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	// 4 stations give C(4,2) = 6 forward pairs, crossed with 2 seat
	// classes.
	require.Len(t, definition.Prices, 12)

	require.NotNil(t, definition.Route)
	assert.Equal(t, "Airport Express", definition.Route.Name)

	first := definition.Prices[0]
	assert.Equal(t, "Alderton", first.FromStation)
	assert.Equal(t, "Bridgefield", first.ToStation)

	last := definition.Prices[len(definition.Prices)-1]
	assert.Equal(t, "Carrow", last.FromStation)
	assert.Equal(t, "Duncraig", last.ToStation)

	for _, row := range definition.Prices {
		assert.Len(t, row.PassengerFares, 2)
	}
}

func TestGenerateTicketMatrixDistance(t *testing.T) {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	selection := ticketSelection()
	selection.FareBasis = tmf.FareBasisDistance
	selection.RouteRef = ""

	definition, err := generator.GenerateTicketMatrix(context.Background(), selection)
	require.NoError(t, err)

	require.Len(t, definition.Prices, 2)
	assert.Nil(t, definition.Route)

	for _, row := range definition.Prices {
		assert.Empty(t, row.FromStation)
		assert.Empty(t, row.ToStation)
		assert.Len(t, row.PassengerFares, 2)
	}
}

func TestGenerateTicketMatrixTaxIncluded(t *testing.T) {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	require.NotNil(t, definition.TaxRule)
	assert.Equal(t, 12.0, definition.TaxRule.Percentage)

	for _, row := range definition.Prices {
		for _, cell := range row.PassengerFares {
			assert.Equal(t, 1.0, cell.Fare)
			assert.Equal(t, 0.12, cell.TaxAmount)
			assert.Equal(t, 1.12, cell.TotalPrice)
		}
	}
}

func TestGenerateTicketMatrixTaxExcluded(t *testing.T) {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	selection := ticketSelection()
	selection.TaxMode = tmf.TaxModeExcluded
	selection.TaxRuleRef = ""

	definition, err := generator.GenerateTicketMatrix(context.Background(), selection)
	require.NoError(t, err)

	assert.Nil(t, definition.TaxRule)

	for _, row := range definition.Prices {
		for _, cell := range row.PassengerFares {
			assert.Equal(t, 0.0, cell.TaxAmount)
			assert.Equal(t, 1.0, cell.TotalPrice)
		}
	}
}

type oddFareResolver struct{}

func (oddFareResolver) BaseFare(seatClass tmf.Reference, passenger tmf.Reference) float64 {
	return 13.57
}

func TestGenerateTicketMatrixRoundsTaxNotTotal(t *testing.T) {
	store := testStore()
	store.taxRules["tax-gst"] = 17.5

	generator := NewGenerator(store, testRouteStore(), oddFareResolver{})

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	for _, row := range definition.Prices {
		for _, cell := range row.PassengerFares {
			// 13.57 * 17.5% = 2.37475, rounded half up to 2.37
			assert.Equal(t, 2.37, cell.TaxAmount)
			assert.Equal(t, cell.Fare+cell.TaxAmount, cell.TotalPrice)
		}
	}
}

func TestGenerateTicketMatrixSingleStationRoute(t *testing.T) {
	routeStore := testRouteStore()
	routeStore.routes["farebox-route-test"].Stops = []tmf.RouteStop{
		{StationRef: "station-a", Order: 1, Status: tmf.RecordStatusActive},
	}

	generator := NewGenerator(testStore(), routeStore, nil)

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	assert.Empty(t, definition.Prices)
}

func TestGenerateTicketMatrixSkipsUnresolvableStations(t *testing.T) {
	store := testStore()
	delete(store.records[refdata.KindStation], "station-b")

	generator := NewGenerator(store, testRouteStore(), nil)

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	// 3 resolvable stations give C(3,2) = 3 pairs, crossed with 2 seat
	// classes.
	assert.Len(t, definition.Prices, 6)

	for _, row := range definition.Prices {
		assert.NotEqual(t, "Bridgefield", row.FromStation)
		assert.NotEqual(t, "Bridgefield", row.ToStation)
	}
}

func TestGenerateTicketMatrixUnresolvableDimensions(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*TicketSelection)
	}{
		{"transport type", func(s *TicketSelection) { s.TransportTypeRef = "type-nowhere" }},
		{"transport subtype", func(s *TicketSelection) { s.TransportSubtypeRef = "subtype-nowhere" }},
		{"seat class", func(s *TicketSelection) { s.SeatClassRefs = []string{"seat-standard", "seat-nowhere"} }},
		{"passenger subcategory", func(s *TicketSelection) { s.PassengerSubcategoryRefs = []string{"passenger-nowhere"} }},
		{"tax rule", func(s *TicketSelection) { s.TaxRuleRef = "tax-nowhere" }},
		{"route", func(s *TicketSelection) { s.RouteRef = "farebox-route-nowhere" }},
	}

	generator := NewGenerator(testStore(), testRouteStore(), nil)

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			selection := ticketSelection()
			testCase.mutate(&selection)

			definition, err := generator.GenerateTicketMatrix(context.Background(), selection)

			assert.ErrorIs(t, err, tmf.ErrNotFound)
			assert.Nil(t, definition)
		})
	}
}

func TestGenerateTicketMatrixValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*TicketSelection)
	}{
		{"no seat classes", func(s *TicketSelection) { s.SeatClassRefs = nil }},
		{"no passengers", func(s *TicketSelection) { s.PassengerSubcategoryRefs = nil }},
		{"unknown fare basis", func(s *TicketSelection) { s.FareBasis = "zone_based" }},
		{"station pair without route", func(s *TicketSelection) { s.RouteRef = "" }},
		{"included tax without rule", func(s *TicketSelection) { s.TaxRuleRef = "" }},
		{"unknown tax mode", func(s *TicketSelection) { s.TaxMode = "deferred" }},
	}

	generator := NewGenerator(testStore(), testRouteStore(), nil)

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			selection := ticketSelection()
			testCase.mutate(&selection)

			definition, err := generator.GenerateTicketMatrix(context.Background(), selection)

			assert.ErrorIs(t, err, tmf.ErrInvalidArgument)
			assert.Nil(t, definition)
		})
	}
}

func TestGenerateTicketMatrixRetryAfterFix(t *testing.T) {
	store := testStore()
	delete(store.records[refdata.KindSeatClass], "seat-premium")

	generator := NewGenerator(store, testRouteStore(), nil)

	_, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.ErrorIs(t, err, tmf.ErrNotFound)

	store.records[refdata.KindSeatClass]["seat-premium"] = "Premium"

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)
	assert.Len(t, definition.Prices, 12)
}

func TestGenerateTicketMatrixResolvesDisplayNames(t *testing.T) {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	definition, err := generator.GenerateTicketMatrix(context.Background(), ticketSelection())
	require.NoError(t, err)

	assert.Equal(t, tmf.Reference{Ref: "type-bus", Name: "Bus"}, definition.TransportType)
	assert.Equal(t, tmf.Reference{Ref: "subtype-express", Name: "Express"}, definition.TransportSubtype)

	passengerNames := map[string]string{}
	for _, passenger := range definition.PassengerSubcategories {
		passengerNames[passenger.Ref] = passenger.Name
	}
	assert.Equal(t, map[string]string{
		"passenger-adult": "Adult",
		"passenger-child": "Child",
	}, passengerNames)
}

func ExampleGenerator_GenerateTicketMatrix() {
	generator := NewGenerator(testStore(), testRouteStore(), nil)

	selection := ticketSelection()
	selection.SeatClassRefs = []string{"seat-standard"}
	selection.PassengerSubcategoryRefs = []string{"passenger-adult"}

	definition, _ := generator.GenerateTicketMatrix(context.Background(), selection)

	row := definition.Prices[0]
	cell := row.PassengerFares[0]
	fmt.Printf("%s to %s: %.2f\n", row.FromStation, row.ToStation, cell.TotalPrice)
	// Output: Alderton to Bridgefield: 1.12
}
