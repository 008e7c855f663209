package routing

import (
	"fmt"

	"github.com/ttpr0/go-citymap/graph"
	. "github.com/ttpr0/go-citymap/util"
)

type PQItem struct {
	item int32
	dist int32
}

// Computes distances from start to every location over the roads.
//
// Unreached locations keep INF and a predecessor of -1. Locations are
// re-enqueued on every improvement, outdated heap entries are skipped.
func CalcShortestPaths(g graph.IGraph, start int32) (Array[int32], Array[int32], error) {
	if !g.IsLocation(start) {
		return nil, nil, fmt.Errorf("start %d (locations: %d): %w", start, g.LocationCount(), ErrInvalidIndex)
	}
	dist := NewArray[int32](g.LocationCount())
	dist.Fill(INF)
	pred := NewArray[int32](g.LocationCount())
	pred.Fill(-1)

	heap := NewPriorityQueue[PQItem, int32](100)
	explorer := g.GetGraphExplorer()

	dist[start] = 0
	heap.Enqueue(PQItem{start, 0}, 0)
	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		if dist[curr_id] < curr_item.dist {
			continue
		}
		explorer.ForAdjacentEdges(curr_id, graph.ADJACENT_ROADS, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			new_length := int64(dist[curr_id]) + int64(explorer.GetEdgeWeight(ref))
			if new_length < int64(dist[other_id]) {
				dist[other_id] = int32(new_length)
				pred[other_id] = curr_id
				heap.Enqueue(PQItem{other_id, int32(new_length)}, int32(new_length))
			}
		})
	}
	return dist, pred, nil
}

// Walks the predecessors back from end and returns the path in travel order.
//
// The caller has to make sure end was reached, otherwise the result is [end].
func ReconstructPath(end int32, pred Array[int32]) List[int32] {
	path := NewList[int32](10)
	for curr := end; curr != -1; curr = pred[curr] {
		path.Add(curr)
	}
	path.Reverse()
	return path
}

// Shortest road path between two locations.
func ShortestPath(g graph.IGraph, start, end int32) (Path, error) {
	if !g.IsLocation(end) {
		return Path{}, fmt.Errorf("end %d (locations: %d): %w", end, g.LocationCount(), ErrInvalidIndex)
	}
	dist, pred, err := CalcShortestPaths(g, start)
	if err != nil {
		return Path{}, err
	}
	length := Distance(dist, end)
	if !length.HasValue() {
		return Path{}, fmt.Errorf("no road from %d to %d: %w", start, end, ErrDisconnectedTarget)
	}
	return Path{
		Locations: ReconstructPath(end, pred),
		Length:    length.Value,
	}, nil
}

//*******************************************
// dijkstra
//*******************************************

// Two-location search usable through IShortestPath.
type Dijkstra struct {
	g     graph.IGraph
	start int32
	end   int32
	path  Optional[Path]
}

func NewDijkstra(g graph.IGraph, start, end int32) *Dijkstra {
	return &Dijkstra{
		g:     g,
		start: start,
		end:   end,
	}
}

func (self *Dijkstra) CalcShortestPath() bool {
	path, err := ShortestPath(self.g, self.start, self.end)
	if err != nil {
		self.path = None[Path]()
		return false
	}
	self.path = Some(path)
	return true
}

func (self *Dijkstra) GetShortestPath() Path {
	return self.path.Value
}
