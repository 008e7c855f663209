package routing

import (
	"math"

	. "github.com/ttpr0/go-citymap/util"
)

// Distance of locations not reached by a search.
const INF int32 = math.MaxInt32

type IShortestPath interface {
	CalcShortestPath() bool
	GetShortestPath() Path
}

// Sequence of locations from start to end inclusive.
type Path struct {
	Locations List[int32]
	Length    int32
}

func (self Path) Start() int32 {
	return self.Locations[0]
}
func (self Path) End() int32 {
	return self.Locations.Last()
}

// Returns the distance of loc, empty if the search never reached it.
func Distance(dist Array[int32], loc int32) Optional[int32] {
	if loc < 0 || int(loc) >= dist.Length() || dist[loc] == INF {
		return None[int32]()
	}
	return Some(dist[loc])
}
