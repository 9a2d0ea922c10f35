package refdata

import (
	"context"

	"github.com/farebox/farebox/pkg/tmf"
)

type Kind string

const (
	KindStation           Kind = "station"
	KindRoute             Kind = "route"
	KindSeatClass         Kind = "seat_class"
	KindTaxRule           Kind = "tax_rule"
	KindTransportType     Kind = "transport_type"
	KindTransportSubtype  Kind = "transport_subtype"
	KindPassengerCategory Kind = "passenger_category"
)

// Record is the id+name projection every fare dimension resolves to.
type Record struct {
	PrimaryIdentifier string
	Name              string
}

// SubcategoryIndexEntry materialises one embedded passenger
// subcategory as subcategoryref -> parent category, so lookups never
// scan-and-unwind the whole passenger_categories collection.
type SubcategoryIndexEntry struct {
	SubcategoryRef    string
	ParentCategoryRef string
	Name              string
}

// Store reads active, non-deleted reference records. Lookups that
// miss return (nil, nil), the caller decides whether that is fatal.
type Store interface {
	ListActive(ctx context.Context, kind Kind) ([]Record, error)
	FindByID(ctx context.Context, kind Kind, ref string) (*Record, error)
	FindSubcategoryByID(ctx context.Context, ref string) (*SubcategoryIndexEntry, error)
	FindTaxRule(ctx context.Context, ref string) (*tmf.TaxRule, error)
}

type RouteStore interface {
	GetRoute(ctx context.Context, ref string) (*tmf.Route, error)
	SaveRoute(ctx context.Context, route *tmf.Route) error
}
