package graph

import (
	"fmt"
	"strings"

	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	LocationCount() int
	RoadCount() int
	TrackCount() int
	IsLocation(loc int32) bool
	GetAnnotation(loc int32) structs.PickupAnnotation
	GetAnnotations() Array[structs.PickupAnnotation]
	GetFriends() List[structs.Friend]
}

// Read-only view over the adjacency of a graph.
type IGraphExplorer interface {
	// Iterates through the adjacency of a location calling the callback for every edge.
	//
	// typ selects the sub-graph (roads are undirected, tracks only outgoing).
	ForAdjacentEdges(loc int32, typ Adjacency, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) int32
}

type EdgeRef struct {
	OtherID int32
	Weight  int32
	Type    Adjacency
}

func (self EdgeRef) IsTrack() bool {
	return self.Type == ADJACENT_TRACKS
}

//*******************************************
// city-graph
//******************************************

// Road graph with directed transit tracks and precomputed pickup annotations.
//
// Immutable after BuildGraph, safe for concurrent readers.
type CityGraph struct {
	road_adjacency    Array[List[structs.Edge]]
	transit_adjacency Array[List[structs.Edge]]
	annotations       Array[structs.PickupAnnotation]
	friends           List[structs.Friend]

	road_count  int
	track_count int
}

func (self *CityGraph) GetGraphExplorer() IGraphExplorer {
	return &CityGraphExplorer{
		graph: self,
	}
}
func (self *CityGraph) LocationCount() int {
	return self.road_adjacency.Length()
}
func (self *CityGraph) RoadCount() int {
	return self.road_count
}
func (self *CityGraph) TrackCount() int {
	return self.track_count
}
func (self *CityGraph) IsLocation(loc int32) bool {
	return loc >= 0 && int(loc) < self.road_adjacency.Length()
}
func (self *CityGraph) GetAnnotation(loc int32) structs.PickupAnnotation {
	return self.annotations[loc]
}
func (self *CityGraph) GetAnnotations() Array[structs.PickupAnnotation] {
	return self.annotations
}
func (self *CityGraph) GetFriends() List[structs.Friend] {
	return self.friends
}

// Human readable dump of every location's adjacency and pickup annotation.
func (self *CityGraph) String() string {
	var b strings.Builder
	for i := 0; i < self.LocationCount(); i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Location %d: roads [", i)
		for j, e := range self.road_adjacency[i] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d->%d (%d)", i, e.To, e.Weight)
		}
		b.WriteString("] tracks [")
		for j, e := range self.transit_adjacency[i] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d->%d (%d)", i, e.To, e.Weight)
		}
		fmt.Fprintf(&b, "] pickup %v", self.annotations[i])
	}
	return b.String()
}

//*******************************************
// city-graph explorer
//******************************************

type CityGraphExplorer struct {
	graph *CityGraph
}

func (self *CityGraphExplorer) ForAdjacentEdges(loc int32, typ Adjacency, callback func(EdgeRef)) {
	if typ == ADJACENT_ROADS || typ == ADJACENT_ALL {
		for _, e := range self.graph.road_adjacency[loc] {
			callback(EdgeRef{
				OtherID: e.To,
				Weight:  e.Weight,
				Type:    ADJACENT_ROADS,
			})
		}
	}
	if typ == ADJACENT_TRACKS || typ == ADJACENT_ALL {
		for _, e := range self.graph.transit_adjacency[loc] {
			callback(EdgeRef{
				OtherID: e.To,
				Weight:  e.Weight,
				Type:    ADJACENT_TRACKS,
			})
		}
	}
}
func (self *CityGraphExplorer) GetEdgeWeight(edge EdgeRef) int32 {
	return edge.Weight
}
