package parser

import (
	"github.com/paulmach/orb"
	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
)

//*******************************************
// parser structs
//*******************************************

// Raw edge lists of a city, input of graph.BuildGraph.
type City struct {
	Roads   List[structs.RoadEdge]
	Tracks  List[structs.TransitEdge]
	Friends List[structs.Friend]
}

type TempNode struct {
	Point orb.Point
	Count int32
}
type OSMEdge struct {
	NodeA  int32
	NodeB  int32
	Length float64
	Speed  int32
}

// Roads parsed from an osm extract. Locations holds the coordinate of
// every location id.
type OSMRoads struct {
	Roads     List[structs.RoadEdge]
	Locations List[orb.Point]
}

//*******************************************
// road types
//*******************************************

type RoadType int8

const (
	MOTORWAY       RoadType = 1
	MOTORWAY_LINK  RoadType = 2
	TRUNK          RoadType = 3
	TRUNK_LINK     RoadType = 4
	PRIMARY        RoadType = 5
	PRIMARY_LINK   RoadType = 6
	SECONDARY      RoadType = 7
	SECONDARY_LINK RoadType = 8
	TERTIARY       RoadType = 9
	TERTIARY_LINK  RoadType = 10
	RESIDENTIAL    RoadType = 11
	LIVING_STREET  RoadType = 12
	UNCLASSIFIED   RoadType = 13
	ROAD           RoadType = 14
	TRACK          RoadType = 15
)
