package graph

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// build graphs
//*******************************************

// Builds the city graph from raw edge lists.
//
// The number of locations is the largest road endpoint plus one (one
// location if there are no roads). Tracks and friends must stay inside
// that range. Twice the summed road weight and the summed track weight
// must stay below math.MaxInt32, so no route or transit time can overflow.
func BuildGraph(roads []structs.RoadEdge, tracks []structs.TransitEdge, friends []structs.Friend) (*CityGraph, error) {
	size, err := _LocationCount(roads)
	if err != nil {
		return nil, err
	}
	road_adjacency, err := _BuildRoadAdjacency(size, roads)
	if err != nil {
		return nil, err
	}
	transit_adjacency, err := _BuildTransitAdjacency(size, tracks)
	if err != nil {
		return nil, err
	}
	friend_list := NewList[structs.Friend](len(friends))
	for i, friend := range friends {
		if friend.Name == "" {
			return nil, fmt.Errorf("friend %d has no name: %w", i, ErrInvalidFriend)
		}
		if friend.Location < 0 || int(friend.Location) >= size {
			return nil, fmt.Errorf("friend %q at location %d (locations: %d): %w", friend.Name, friend.Location, size, ErrInvalidIndex)
		}
		friend_list.Add(friend)
	}
	annotations := _ComputePickups(size, transit_adjacency, friend_list)

	slog.Debug(fmt.Sprintf("built city graph: %v locations, %v roads, %v tracks, %v friends", size, len(roads), len(tracks), len(friends)))

	return &CityGraph{
		road_adjacency:    road_adjacency,
		transit_adjacency: transit_adjacency,
		annotations:       annotations,
		friends:           friend_list,
		road_count:        len(roads),
		track_count:       len(tracks),
	}, nil
}

//*******************************************
// build graph components
//*******************************************

func _LocationCount(roads []structs.RoadEdge) (int, error) {
	max_id := int32(0)
	for i, road := range roads {
		if road.From < 0 || road.To < 0 {
			return 0, fmt.Errorf("road %d (%d, %d): %w", i, road.From, road.To, ErrInvalidIndex)
		}
		max_id = max(max_id, road.From, road.To)
	}
	return int(max_id) + 1, nil
}

func _BuildRoadAdjacency(size int, roads []structs.RoadEdge) (Array[List[structs.Edge]], error) {
	adjacency := NewArray[List[structs.Edge]](size)
	total := int64(0)
	for i, road := range roads {
		if road.Weight < 0 {
			return nil, fmt.Errorf("road %d (%d, %d, %d): %w", i, road.From, road.To, road.Weight, ErrNegativeWeight)
		}
		total += int64(road.Weight)
		adjacency[road.From].Add(structs.Edge{To: road.To, Weight: road.Weight})
		adjacency[road.To].Add(structs.Edge{To: road.From, Weight: road.Weight})
	}
	// a plan adds two road distances
	if 2*total >= math.MaxInt32 {
		return nil, fmt.Errorf("summed road weight %d: %w", total, ErrWeightOverflow)
	}
	return adjacency, nil
}

func _BuildTransitAdjacency(size int, tracks []structs.TransitEdge) (Array[List[structs.Edge]], error) {
	adjacency := NewArray[List[structs.Edge]](size)
	total := int64(0)
	for i, track := range tracks {
		if track.From < 0 || track.To < 0 || int(track.From) >= size || int(track.To) >= size {
			return nil, fmt.Errorf("track %d (%d, %d) (locations: %d): %w", i, track.From, track.To, size, ErrInvalidIndex)
		}
		if track.Weight < 0 {
			return nil, fmt.Errorf("track %d (%d, %d, %d): %w", i, track.From, track.To, track.Weight, ErrNegativeWeight)
		}
		total += int64(track.Weight)
		adjacency[track.From].Add(structs.Edge{To: track.To, Weight: track.Weight})
	}
	if total >= math.MaxInt32 {
		return nil, fmt.Errorf("summed track weight %d: %w", total, ErrWeightOverflow)
	}
	return adjacency, nil
}

type _FrontierItem struct {
	loc    int32
	hops   int32
	time   int32
	friend int
}

// Multi-source breadth-first search over the tracks, seeded with every
// friend's origin at hop 0 in input order.
//
// A location is claimed by the first frontier item reaching it, so on
// equal hop counts the friend listed first wins. Items at MAX_PICKUP_HOPS
// are not expanded.
func _ComputePickups(size int, transit_adjacency Array[List[structs.Edge]], friends List[structs.Friend]) Array[structs.PickupAnnotation] {
	annotations := NewArray[structs.PickupAnnotation](size)
	for i := range annotations {
		annotations[i] = structs.PickupAnnotation{Location: int32(i), Hops: -1}
	}
	claimed := NewArray[bool](size)
	frontier := NewList[_FrontierItem](friends.Length())

	for i, friend := range friends {
		if claimed[friend.Location] {
			continue
		}
		claimed[friend.Location] = true
		annotations[friend.Location] = structs.PickupAnnotation{
			Friend:   friend.Name,
			Location: friend.Location,
			Hops:     0,
		}
		frontier.Add(_FrontierItem{loc: friend.Location, hops: 0, time: 0, friend: i})
	}

	for head := 0; head < frontier.Length(); head++ {
		item := frontier[head]
		if item.hops >= MAX_PICKUP_HOPS {
			continue
		}
		for _, e := range transit_adjacency[item.loc] {
			if claimed[e.To] {
				continue
			}
			claimed[e.To] = true
			next := _FrontierItem{
				loc:    e.To,
				hops:   item.hops + 1,
				time:   item.time + e.Weight,
				friend: item.friend,
			}
			annotations[e.To] = structs.PickupAnnotation{
				Friend:      friends[item.friend].Name,
				Location:    e.To,
				Hops:        next.hops,
				TransitTime: next.time,
			}
			frontier.Add(next)
		}
	}
	return annotations
}
