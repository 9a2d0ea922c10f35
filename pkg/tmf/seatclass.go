package tmf

import "time"

type SeatClass struct {
	PrimaryIdentifier string `groups:"basic"`

	Name string `groups:"basic"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}
