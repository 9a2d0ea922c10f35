package tmf

import "time"

const RouteIDFormat = "farebox-route-%s"

// Route owns an ordered list of stops plus the two distinguished
// endpoint references. StartPoint and EndPoint always reference a stop
// in the list; among the active stops StartPoint is the lowest-order
// one and EndPoint the highest-order one. pkg/topology is the only
// place allowed to rewrite the stop list.
type Route struct {
	PrimaryIdentifier string `groups:"basic"`

	Name string `groups:"basic"`

	StartPoint string `groups:"basic"`
	EndPoint   string `groups:"basic"`

	Stops []RouteStop `groups:"detailed"`

	Status RecordStatus `groups:"basic"`

	Deleted   bool       `groups:"internal"`
	DeletedAt *time.Time `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}

// RouteStop is a station's membership record within one route. Its
// status is independent of the station's own global status.
type RouteStop struct {
	StationRef string `groups:"basic"`

	// 1-based, renumbered whenever the stop list is replaced wholesale.
	Order int `groups:"basic"`

	Status RecordStatus `groups:"basic"`
}

func (route *Route) Stop(stationRef string) *RouteStop {
	for index := range route.Stops {
		if route.Stops[index].StationRef == stationRef {
			return &route.Stops[index]
		}
	}

	return nil
}

func (route *Route) ActiveStopCount() int {
	count := 0
	for _, stop := range route.Stops {
		if stop.Status == RecordStatusActive {
			count += 1
		}
	}

	return count
}
