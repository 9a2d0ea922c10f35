package faregen

import "github.com/farebox/farebox/pkg/tmf"

// TicketSelection is the ephemeral dimension selection a one-off
// ticket matrix is generated from. Structural problems are
// InvalidArgument; identifiers that fail to resolve are NotFound.
type TicketSelection struct {
	TransportTypeRef    string `validate:"required"`
	TransportSubtypeRef string `validate:"required"`

	SeatClassRefs            []string `validate:"min=1,dive,required"`
	PassengerSubcategoryRefs []string `validate:"min=1,dive,required"`

	FareBasis tmf.FareBasis `validate:"required,oneof=distance_based station_pair_based"`
	RouteRef  string        `validate:"required_if=FareBasis station_pair_based"`

	TaxMode    tmf.TaxMode `validate:"required,oneof=included excluded"`
	TaxRuleRef string      `validate:"required_if=TaxMode included"`
}

// PassSelection is the subscription/pass variant. Passes are never
// station-pair priced, the selection instead carries duration tags.
type PassSelection struct {
	TransportTypeRef    string `validate:"required"`
	TransportSubtypeRef string `validate:"required"`

	SeatClassRefs            []string `validate:"min=1,dive,required"`
	PassengerSubcategoryRefs []string `validate:"min=1,dive,required"`

	Durations []tmf.PassDuration `validate:"min=1,dive,oneof=daily monthly quarterly semi_annual annual"`

	TaxMode    tmf.TaxMode `validate:"required,oneof=included excluded"`
	TaxRuleRef string      `validate:"required_if=TaxMode included"`
}
