package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-citymap/routing"
	"github.com/ttpr0/go-citymap/structs"
)

func TestReadCityYAML(t *testing.T) {
	city, err := ReadCity("./testdata/city.yaml")
	require.NoError(t, err)

	assert.Len(t, city.Roads, 6)
	assert.Len(t, city.Tracks, 5)
	assert.Equal(t, structs.RoadEdge{From: 2, To: 0, Weight: 3}, city.Roads[2])
	assert.Equal(t, structs.TransitEdge{From: 5, To: 1, Weight: 6}, city.Tracks[4])
	assert.Equal(t, []structs.Friend{{Name: "Grizz", Location: 1}, {Name: "Ice", Location: 3}}, []structs.Friend(city.Friends))

	g, err := city.BuildGraph()
	require.NoError(t, err)
	plan, err := routing.NewPlanner(g).Plan(2, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(5), plan.TotalTime)
	assert.Equal(t, []int32{2, 4, 5}, plan.Route)
	assert.Equal(t, "Ice", plan.Friend)
}

func TestReadCityJSON(t *testing.T) {
	city, err := ReadCity("./testdata/city.json")
	require.NoError(t, err)

	g, err := city.BuildGraph()
	require.NoError(t, err)
	plan, err := routing.NewPlanner(g).Plan(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(0), plan.TotalTime)
	assert.Equal(t, []int32{1}, plan.Route)
	assert.Equal(t, "Sarah", plan.Friend)
}

func TestReadCityCSV(t *testing.T) {
	city, err := ReadCity("./testdata/csv")
	require.NoError(t, err)

	assert.Len(t, city.Roads, 5)
	assert.Len(t, city.Tracks, 3)
	assert.Len(t, city.Friends, 2)

	g, err := city.BuildGraph()
	require.NoError(t, err)
	plan, err := routing.NewPlanner(g).Plan(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(0), plan.TotalTime)
	assert.Equal(t, "Minnie", plan.Friend)
	assert.Equal(t, int32(5), plan.PickupLocation)
}

func TestReadCityErrors(t *testing.T) {
	_, err := ReadCity("./testdata/city.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ReadCity("./testdata/missing.yaml")
	assert.Error(t, err)

	// gtfs directory has no roads.csv
	_, err = ReadCity("./testdata/gtfs")
	assert.Error(t, err)
}
