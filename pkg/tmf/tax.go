package tmf

import "time"

type TaxRule struct {
	PrimaryIdentifier string `groups:"basic"`

	Name       string  `groups:"basic"`
	Percentage float64 `groups:"basic"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}
