package tmf

import "time"

// PassengerCategory embeds its subcategories directly. Subcategory
// identifiers are unique document-wide, which is what allows the
// subcategory index (pkg/refdata) to resolve one without knowing its
// parent.
type PassengerCategory struct {
	PrimaryIdentifier string `groups:"basic"`

	Name string `groups:"basic"`

	Subcategories []PassengerSubcategory `groups:"detailed"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}

type PassengerSubcategory struct {
	PrimaryIdentifier string `groups:"basic"`

	Name        string `groups:"basic"`
	Description string `groups:"detailed"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`
}
