package tmf

import "time"

const PassDefinitionIDFormat = "farebox-passprice-%s"

type PassDurationFares struct {
	Duration PassDuration `groups:"detailed"`

	PassengerFares []PassengerFare `groups:"detailed"`
}

// PassFareTable is one seat class's sub-table: one block of passenger
// fares per selected pass duration. Passes are never station-pair
// priced.
type PassFareTable struct {
	SeatClass Reference `groups:"detailed"`

	Durations []PassDurationFares `groups:"detailed"`
}

// PassDefinition is the persisted output of the subscription/pass fare
// matrix generation.
type PassDefinition struct {
	PrimaryIdentifier string `groups:"basic,detailed"`

	TransportType    Reference `groups:"basic,detailed"`
	TransportSubtype Reference `groups:"basic,detailed"`

	SeatClasses            []Reference `groups:"detailed"`
	PassengerSubcategories []Reference `groups:"detailed"`

	Durations []PassDuration `groups:"basic,detailed"`

	TaxMode TaxMode           `groups:"basic,detailed"`
	TaxRule *TaxRuleReference `groups:"basic,detailed"`

	Prices []PassFareTable `groups:"detailed"`

	Status RecordStatus `groups:"basic,detailed"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime time.Time `groups:"detailed"`
}
