package structs

import (
	"fmt"
)

//*******************************************
// graph structs
//*******************************************

// Undirected road, used by the traveler.
type RoadEdge struct {
	From   int32 `json:"from" yaml:"from" csv:"from"`
	To     int32 `json:"to" yaml:"to" csv:"to"`
	Weight int32 `json:"weight" yaml:"weight" csv:"weight"`
}

// Directed transit connection, only friends ride these.
type TransitEdge struct {
	From   int32 `json:"from" yaml:"from" csv:"from"`
	To     int32 `json:"to" yaml:"to" csv:"to"`
	Weight int32 `json:"weight" yaml:"weight" csv:"weight"`
}

type Friend struct {
	Name     string `json:"name" yaml:"name" csv:"name"`
	Location int32  `json:"location" yaml:"location" csv:"location"`
}

// Adjacency entry of a location.
type Edge struct {
	To     int32
	Weight int32
}

//*******************************************
// pickup annotation
//*******************************************

// Which friend can reach a location within the hop limit.
//
// Friend is empty if no friend reaches the location. TransitTime is the
// summed track weight along the fewest-hop route and is informational only.
type PickupAnnotation struct {
	Friend      string `json:"friend"`
	Location    int32  `json:"location"`
	Hops        int32  `json:"hops"`
	TransitTime int32  `json:"transit_time"`
}

func (self PickupAnnotation) HasFriend() bool {
	return self.Friend != ""
}

func (self PickupAnnotation) String() string {
	if !self.HasFriend() {
		return "(none)"
	}
	return fmt.Sprintf("(%s, %d, %d hops)", self.Friend, self.Location, self.Hops)
}
