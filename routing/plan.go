package routing

import (
	"fmt"

	"github.com/ttpr0/go-citymap/graph"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

//*******************************************
// plan
//*******************************************

// Route from start to destination that passes the pickup location.
//
// TotalTime only counts the traveler's road time, the friend's own
// transit time is reported in FriendTransitTime.
type Plan struct {
	TotalTime         int32   `json:"total_time"`
	Route             []int32 `json:"route"`
	Friend            string  `json:"friend"`
	PickupLocation    int32   `json:"pickup_location"`
	PickupHops        int32   `json:"pickup_hops"`
	FriendTransitTime int32   `json:"friend_transit_time"`
}

type PlannerOption func(*Planner)

// Runs the sweeps from start and destination concurrently.
func WithParallelSweeps() PlannerOption {
	return func(planner *Planner) { planner.parallel = true }
}

type Planner struct {
	g        graph.IGraph
	parallel bool
}

func NewPlanner(g graph.IGraph, options ...PlannerOption) *Planner {
	planner := &Planner{g: g}
	for _, option := range options {
		option(planner)
	}
	return planner
}

// Finds the pickup minimizing the traveler's total road time.
//
// Ties on total time go to the pickup with fewer hops, then to the lowest
// location id.
func (self *Planner) Plan(start, destination int32) (Plan, error) {
	if !self.g.IsLocation(start) {
		return Plan{}, fmt.Errorf("start %d (locations: %d): %w", start, self.g.LocationCount(), ErrInvalidIndex)
	}
	if !self.g.IsLocation(destination) {
		return Plan{}, fmt.Errorf("destination %d (locations: %d): %w", destination, self.g.LocationCount(), ErrInvalidIndex)
	}

	from_start, pred_start, from_dest, pred_dest, err := self._Sweep(start, destination)
	if err != nil {
		return Plan{}, err
	}

	candidates := 0
	best := None[Plan]()
	for _, annotation := range self.g.GetAnnotations() {
		if !annotation.HasFriend() {
			continue
		}
		candidates += 1
		loc := annotation.Location
		to_pickup := Distance(from_start, loc)
		from_pickup := Distance(from_dest, loc)
		if !to_pickup.HasValue() || !from_pickup.HasValue() {
			continue
		}
		total_64 := int64(to_pickup.Value) + int64(from_pickup.Value)
		if total_64 >= int64(INF) {
			continue
		}
		total := int32(total_64)
		if best.HasValue() {
			curr := best.Value
			if total > curr.TotalTime || (total == curr.TotalTime && annotation.Hops >= curr.PickupHops) {
				continue
			}
		}
		best = Some(Plan{
			TotalTime:         total,
			Friend:            annotation.Friend,
			PickupLocation:    loc,
			PickupHops:        annotation.Hops,
			FriendTransitTime: annotation.TransitTime,
		})
	}
	if candidates == 0 {
		return Plan{}, ErrNoReachablePickup
	}
	if !best.HasValue() {
		return Plan{}, fmt.Errorf("no pickup connects %d and %d: %w", start, destination, ErrDisconnectedTarget)
	}

	plan := best.Value
	plan.Route = _BuildRoute(plan.PickupLocation, pred_start, pred_dest)

	slog.Debug(fmt.Sprintf("planned %v -> %v: pickup %v at %v, total %v", start, destination, plan.Friend, plan.PickupLocation, plan.TotalTime))
	return plan, nil
}

// Distances and predecessors from start and from destination.
func (self *Planner) _Sweep(start, destination int32) (Array[int32], Array[int32], Array[int32], Array[int32], error) {
	var from_start, pred_start, from_dest, pred_dest Array[int32]
	if !self.parallel {
		var err error
		from_start, pred_start, err = CalcShortestPaths(self.g, start)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		from_dest, pred_dest, err = CalcShortestPaths(self.g, destination)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return from_start, pred_start, from_dest, pred_dest, nil
	}

	var group errgroup.Group
	group.Go(func() error {
		var err error
		from_start, pred_start, err = CalcShortestPaths(self.g, start)
		return err
	})
	group.Go(func() error {
		var err error
		from_dest, pred_dest, err = CalcShortestPaths(self.g, destination)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, nil, nil, err
	}
	return from_start, pred_start, from_dest, pred_dest, nil
}

// Joins start->pickup and pickup->destination, the pickup appears once.
// Roads are undirected, so the destination's predecessors walked from the
// pickup give the second leg in reverse.
func _BuildRoute(pickup int32, pred_start Array[int32], pred_dest Array[int32]) []int32 {
	first := ReconstructPath(pickup, pred_start)
	second := ReconstructPath(pickup, pred_dest)
	second.Reverse()
	route := make([]int32, 0, first.Length()+second.Length()-1)
	route = append(route, first...)
	route = append(route, second[1:]...)
	return route
}
