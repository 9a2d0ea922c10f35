package faregen

import "github.com/farebox/farebox/pkg/tmf"

// FareResolver supplies the base fare of a single matrix cell. The
// expansion logic never needs to know where fares come from, which is
// what lets a real fare table replace the placeholder without touching
// it.
type FareResolver interface {
	BaseFare(seatClass tmf.Reference, passenger tmf.Reference) float64
}

// UnitFareResolver is the default: every cell starts at a unit fare
// and callers override after generation.
type UnitFareResolver struct{}

func (UnitFareResolver) BaseFare(seatClass tmf.Reference, passenger tmf.Reference) float64 {
	return 1
}
