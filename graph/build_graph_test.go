package graph

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-citymap/structs"
)

func exampleCity() ([]structs.RoadEdge, []structs.TransitEdge, []structs.Friend) {
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 4}, {From: 0, To: 3, Weight: 2}, {From: 2, To: 0, Weight: 3}, {From: 3, To: 1, Weight: 2}, {From: 2, To: 4, Weight: 2}, {From: 4, To: 5, Weight: 3}}
	tracks := []structs.TransitEdge{{From: 1, To: 3, Weight: 3}, {From: 3, To: 4, Weight: 2}, {From: 4, To: 3, Weight: 2}, {From: 4, To: 5, Weight: 4}, {From: 5, To: 1, Weight: 6}}
	friends := []structs.Friend{{Name: "Grizz", Location: 1}, {Name: "Ice", Location: 3}}
	return roads, tracks, friends
}

func TestBuildGraphAdjacency(t *testing.T) {
	roads, tracks, friends := exampleCity()
	g, err := BuildGraph(roads, tracks, friends)
	require.NoError(t, err)

	assert.Equal(t, 6, g.LocationCount())
	assert.Equal(t, 6, g.RoadCount())
	assert.Equal(t, 5, g.TrackCount())
	assert.True(t, g.IsLocation(5))
	assert.False(t, g.IsLocation(6))
	assert.False(t, g.IsLocation(-1))

	explorer := g.GetGraphExplorer()
	others := []int32{}
	explorer.ForAdjacentEdges(0, ADJACENT_ROADS, func(ref EdgeRef) {
		assert.False(t, ref.IsTrack())
		others = append(others, ref.OtherID)
	})
	assert.Equal(t, []int32{1, 3, 2}, others)

	// every road shows up in both directions
	degree := 0
	for i := 0; i < g.LocationCount(); i++ {
		explorer.ForAdjacentEdges(int32(i), ADJACENT_ROADS, func(ref EdgeRef) { degree++ })
	}
	assert.Equal(t, 2*len(roads), degree)

	tracks_from_4 := []int32{}
	explorer.ForAdjacentEdges(4, ADJACENT_TRACKS, func(ref EdgeRef) {
		assert.True(t, ref.IsTrack())
		tracks_from_4 = append(tracks_from_4, ref.OtherID)
	})
	assert.Equal(t, []int32{3, 5}, tracks_from_4)

	all := 0
	explorer.ForAdjacentEdges(4, ADJACENT_ALL, func(ref EdgeRef) { all++ })
	assert.Equal(t, 4, all)
}

func TestBuildGraphAnnotations(t *testing.T) {
	roads, tracks, friends := exampleCity()
	g, err := BuildGraph(roads, tracks, friends)
	require.NoError(t, err)

	expected := []structs.PickupAnnotation{
		{Friend: "", Location: 0, Hops: -1},
		{Friend: "Grizz", Location: 1, Hops: 0},
		{Friend: "", Location: 2, Hops: -1},
		{Friend: "Ice", Location: 3, Hops: 0},
		{Friend: "Ice", Location: 4, Hops: 1, TransitTime: 2},
		{Friend: "Ice", Location: 5, Hops: 2, TransitTime: 6},
	}
	for i, want := range expected {
		assert.Equal(t, want, g.GetAnnotation(int32(i)), "location %d", i)
	}
	assert.Len(t, g.GetAnnotations(), 6)
	assert.Len(t, g.GetFriends(), 2)
}

func TestHopLimit(t *testing.T) {
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 4}, {From: 0, To: 3, Weight: 2}, {From: 2, To: 0, Weight: 3}, {From: 3, To: 1, Weight: 2}, {From: 2, To: 4, Weight: 2}, {From: 2, To: 5, Weight: 2}}
	tracks := []structs.TransitEdge{{From: 1, To: 3, Weight: 4}, {From: 3, To: 4, Weight: 2}, {From: 4, To: 5, Weight: 1}, {From: 5, To: 1, Weight: 6}}
	g, err := BuildGraph(roads, tracks, []structs.Friend{{Name: "Grizz", Location: 1}})
	require.NoError(t, err)

	assert.Equal(t, int32(0), g.GetAnnotation(1).Hops)
	assert.Equal(t, int32(1), g.GetAnnotation(3).Hops)
	assert.Equal(t, int32(2), g.GetAnnotation(4).Hops)
	// three hops away
	assert.False(t, g.GetAnnotation(5).HasFriend())

	for _, a := range g.GetAnnotations() {
		assert.LessOrEqual(t, a.Hops, MAX_PICKUP_HOPS)
	}
}

func TestFewestHopsWin(t *testing.T) {
	// 0 reaches 3 over two tracks or directly, the direct track is fewer hops
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}}
	tracks := []structs.TransitEdge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 3, Weight: 1}, {From: 0, To: 3, Weight: 50}}
	g, err := BuildGraph(roads, tracks, []structs.Friend{{Name: "Ann", Location: 0}})
	require.NoError(t, err)

	a := g.GetAnnotation(3)
	assert.Equal(t, int32(1), a.Hops)
	assert.Equal(t, int32(50), a.TransitTime)
}

func TestEqualHopsFirstFriendWins(t *testing.T) {
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}}
	tracks := []structs.TransitEdge{{From: 2, To: 1, Weight: 1}, {From: 0, To: 1, Weight: 1}}
	friends := []structs.Friend{{Name: "First", Location: 0}, {Name: "Second", Location: 2}}
	g, err := BuildGraph(roads, tracks, friends)
	require.NoError(t, err)
	assert.Equal(t, "First", g.GetAnnotation(1).Friend)

	friends = []structs.Friend{{Name: "Second", Location: 2}, {Name: "First", Location: 0}}
	g, err = BuildGraph(roads, tracks, friends)
	require.NoError(t, err)
	assert.Equal(t, "Second", g.GetAnnotation(1).Friend)
}

func TestOriginsNeverOverwritten(t *testing.T) {
	// Bob's origin is one hop from Ann, it stays Bob's at hop 0
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 1}}
	tracks := []structs.TransitEdge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 0, Weight: 1}}
	friends := []structs.Friend{{Name: "Ann", Location: 0}, {Name: "Bob", Location: 1}, {Name: "Cid", Location: 1}}
	g, err := BuildGraph(roads, tracks, friends)
	require.NoError(t, err)

	assert.Equal(t, structs.PickupAnnotation{Friend: "Ann", Location: 0, Hops: 0}, g.GetAnnotation(0))
	assert.Equal(t, structs.PickupAnnotation{Friend: "Bob", Location: 1, Hops: 0}, g.GetAnnotation(1))
}

func TestSingleLocationGraph(t *testing.T) {
	g, err := BuildGraph(nil, nil, []structs.Friend{{Name: "Solo", Location: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.LocationCount())
	assert.Equal(t, "Solo", g.GetAnnotation(0).Friend)
}

func TestBuildGraphErrors(t *testing.T) {
	roads := []structs.RoadEdge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}}

	_, err := BuildGraph([]structs.RoadEdge{{From: 0, To: -1, Weight: 2}}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = BuildGraph(roads, []structs.TransitEdge{{From: 0, To: 3, Weight: 1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = BuildGraph(roads, nil, []structs.Friend{{Name: "Far", Location: 7}})
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: -2}}, nil, nil)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	_, err = BuildGraph(roads, []structs.TransitEdge{{From: 0, To: 1, Weight: -1}}, nil)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	_, err = BuildGraph(roads, nil, []structs.Friend{{Name: "", Location: 0}})
	assert.ErrorIs(t, err, ErrInvalidFriend)
}

func TestBuildGraphWeightOverflow(t *testing.T) {
	_, err := BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: 2000000000}, {From: 1, To: 2, Weight: 2000000000}}, nil, []structs.Friend{{Name: "Far", Location: 2}})
	assert.ErrorIs(t, err, ErrWeightOverflow)

	_, err = BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: math.MaxInt32}}, nil, nil)
	assert.ErrorIs(t, err, ErrWeightOverflow)

	_, err = BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: 2}}, []structs.TransitEdge{{From: 0, To: 1, Weight: 1500000000}, {From: 1, To: 0, Weight: 1500000000}}, nil)
	assert.ErrorIs(t, err, ErrWeightOverflow)

	// largest accepted road total
	g, err := BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: 536870911}, {From: 1, To: 2, Weight: 536870911}}, []structs.TransitEdge{{From: 0, To: 1, Weight: math.MaxInt32 - 1}}, []structs.Friend{{Name: "Near", Location: 0}})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32-1), g.GetAnnotation(1).TransitTime)
}

func TestGraphString(t *testing.T) {
	g, err := BuildGraph([]structs.RoadEdge{{From: 0, To: 1, Weight: 2}}, []structs.TransitEdge{{From: 0, To: 1, Weight: 3}}, []structs.Friend{{Name: "Sarah", Location: 0}})
	require.NoError(t, err)

	dump := g.String()
	lines := strings.Split(dump, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Location 0: roads [0->1 (2)] tracks [0->1 (3)] pickup (Sarah, 0, 0 hops)", lines[0])
	assert.Equal(t, "Location 1: roads [1->0 (2)] tracks [] pickup (Sarah, 1, 1 hops)", lines[1])
}
