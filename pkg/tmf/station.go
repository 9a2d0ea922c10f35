package tmf

import "time"

const StationIDFormat = "farebox-station-%s"

type Station struct {
	PrimaryIdentifier string `groups:"basic"`

	Name        string `groups:"basic"`
	StationCode string `groups:"basic"`

	Location *Location `groups:"basic"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}

type Location struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}
