package routing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-citymap/graph"
	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
)

func exampleRoads() []structs.RoadEdge {
	return []structs.RoadEdge{{From: 0, To: 1, Weight: 4}, {From: 0, To: 3, Weight: 2}, {From: 2, To: 0, Weight: 3}, {From: 3, To: 1, Weight: 2}, {From: 2, To: 4, Weight: 2}, {From: 4, To: 5, Weight: 3}}
}

func buildGraph(t *testing.T, roads []structs.RoadEdge, tracks []structs.TransitEdge, friends []structs.Friend) *graph.CityGraph {
	t.Helper()
	g, err := graph.BuildGraph(roads, tracks, friends)
	require.NoError(t, err)
	return g
}

// random connected graph, a spanning chain plus extra roads
func randomRoads(rng *rand.Rand, n int, extra int) []structs.RoadEdge {
	roads := make([]structs.RoadEdge, 0, n+extra)
	for i := 1; i < n; i++ {
		roads = append(roads, structs.RoadEdge{From: int32(rng.Intn(i)), To: int32(i), Weight: int32(1 + rng.Intn(20))})
	}
	for i := 0; i < extra; i++ {
		roads = append(roads, structs.RoadEdge{From: int32(rng.Intn(n)), To: int32(rng.Intn(n)), Weight: int32(1 + rng.Intn(20))})
	}
	return roads
}

// all pairs distances by floyd-warshall
func allPairs(n int, roads []structs.RoadEdge) [][]int32 {
	dist := make([][]int32, n)
	for i := range dist {
		dist[i] = make([]int32, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = INF
			}
		}
	}
	for _, r := range roads {
		if r.Weight < dist[r.From][r.To] {
			dist[r.From][r.To] = r.Weight
			dist[r.To][r.From] = r.Weight
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k] == INF || dist[k][j] == INF {
					continue
				}
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

func TestCalcShortestPaths(t *testing.T) {
	g := buildGraph(t, exampleRoads(), nil, nil)

	dist, pred, err := CalcShortestPaths(g, 2)
	require.NoError(t, err)
	assert.Equal(t, Array[int32]{3, 7, 0, 5, 2, 5}, dist)
	assert.Equal(t, Array[int32]{2, 0, -1, 0, 2, 4}, pred)

	assert.Equal(t, List[int32]{2, 0, 1}, ReconstructPath(1, pred))
	assert.Equal(t, List[int32]{2, 4, 5}, ReconstructPath(5, pred))
	assert.Equal(t, List[int32]{2}, ReconstructPath(2, pred))
}

func TestShortestPath(t *testing.T) {
	g := buildGraph(t, exampleRoads(), nil, nil)

	path, err := ShortestPath(g, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, List[int32]{5, 4, 2, 0, 3}, path.Locations)
	assert.Equal(t, int32(10), path.Length)
	assert.Equal(t, int32(5), path.Start())
	assert.Equal(t, int32(3), path.End())

	path, err = ShortestPath(g, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, List[int32]{4}, path.Locations)
	assert.Equal(t, int32(0), path.Length)
}

func TestShortestPathErrors(t *testing.T) {
	g := buildGraph(t, []structs.RoadEdge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}, nil, nil)

	_, err := ShortestPath(g, 0, 3)
	assert.ErrorIs(t, err, ErrDisconnectedTarget)

	_, err = ShortestPath(g, 0, 4)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, _, err = CalcShortestPaths(g, -1)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	dist, _, err := CalcShortestPaths(g, 0)
	require.NoError(t, err)
	assert.False(t, Distance(dist, 3).HasValue())
	assert.False(t, Distance(dist, 9).HasValue())
	assert.Equal(t, int32(1), Distance(dist, 1).Value)
}

func TestDijkstra(t *testing.T) {
	g := buildGraph(t, exampleRoads(), nil, nil)

	var alg IShortestPath = NewDijkstra(g, 2, 5)
	require.True(t, alg.CalcShortestPath())
	assert.Equal(t, int32(5), alg.GetShortestPath().Length)

	g = buildGraph(t, []structs.RoadEdge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}, nil, nil)
	alg = NewDijkstra(g, 0, 2)
	assert.False(t, alg.CalcShortestPath())
}

func TestDistancesMatchAllPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 40
	roads := randomRoads(rng, n, 80)
	g := buildGraph(t, roads, nil, nil)
	expected := allPairs(n, roads)

	for a := 0; a < n; a++ {
		dist, pred, err := CalcShortestPaths(g, int32(a))
		require.NoError(t, err)
		for b := 0; b < n; b++ {
			require.Equal(t, expected[a][b], dist[b], "distance %d -> %d", a, b)

			// the reconstructed path has the reported length
			path := ReconstructPath(int32(b), pred)
			require.Equal(t, int32(a), path[0])
			length := int32(0)
			for i := 1; i < path.Length(); i++ {
				length += expected[path[i-1]][path[i]]
			}
			require.Equal(t, dist[b], length)
		}
	}
}

func TestDistanceSymmetryAndTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 25
	g := buildGraph(t, randomRoads(rng, n, 40), nil, nil)

	dists := make([]Array[int32], n)
	for i := 0; i < n; i++ {
		dist, _, err := CalcShortestPaths(g, int32(i))
		require.NoError(t, err)
		dists[i] = dist
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			require.Equal(t, dists[a][b], dists[b][a], "symmetry %d, %d", a, b)
			for c := 0; c < n; c++ {
				require.LessOrEqual(t, dists[a][c], dists[a][b]+dists[b][c], "triangle %d, %d, %d", a, b, c)
			}
		}
	}
}
