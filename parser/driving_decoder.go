package parser

import (
	. "github.com/ttpr0/go-citymap/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	// travel speed in km/h
	DecodeSpeed(tags Dict[string, string]) int32
}

type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !driving_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}
func (self *DrivingDecoder) DecodeSpeed(tags Dict[string, string]) int32 {
	typ := _GetType(tags.Get("highway"))
	return _GetTravelSpeed(typ, tags.Get("maxspeed"), tags.Get("tracktype"), tags.Get("surface"))
}
