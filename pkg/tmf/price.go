package tmf

import "time"

const PriceDefinitionIDFormat = "farebox-ticketprice-%s"

// Reference is a resolved dimension: identifier plus display name, so
// downstream consumers never need a second lookup.
type Reference struct {
	Ref  string `groups:"basic,detailed"`
	Name string `groups:"basic,detailed"`
}

type TaxRuleReference struct {
	Ref        string  `groups:"basic,detailed"`
	Name       string  `groups:"basic,detailed"`
	Percentage float64 `groups:"basic,detailed"`
}

// PassengerFare is one fully priced cell. TotalPrice is always exactly
// Fare + TaxAmount; TaxAmount is rounded before the summation.
type PassengerFare struct {
	Passenger Reference `groups:"detailed"`

	Fare       float64 `groups:"detailed"`
	TaxAmount  float64 `groups:"detailed"`
	TotalPrice float64 `groups:"detailed"`
}

// PriceRow groups the cells of one seat class, and for station-pair
// based fares one (from, upto) station pair. FromStation/ToStation are
// empty under a distance based fare basis.
type PriceRow struct {
	FromStation string `groups:"detailed"`
	ToStation   string `groups:"detailed"`

	SeatClass Reference `groups:"detailed"`

	PassengerFares []PassengerFare `groups:"detailed"`
}

// PriceDefinition is the persisted output of the ticket fare matrix
// generation. It is written once and only ever replaced wholesale.
type PriceDefinition struct {
	PrimaryIdentifier string `groups:"basic,detailed"`

	FareBasis FareBasis `groups:"basic,detailed"`

	TransportType    Reference `groups:"basic,detailed"`
	TransportSubtype Reference `groups:"basic,detailed"`

	SeatClasses            []Reference `groups:"detailed"`
	PassengerSubcategories []Reference `groups:"detailed"`

	Route *Reference `groups:"basic,detailed"`

	TaxMode TaxMode           `groups:"basic,detailed"`
	TaxRule *TaxRuleReference `groups:"basic,detailed"`

	Prices []PriceRow `groups:"detailed"`

	Status RecordStatus `groups:"basic,detailed"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime time.Time `groups:"detailed"`
}
