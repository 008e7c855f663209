package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ttpr0/go-citymap/graph"
	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
)

var ErrUnknownFormat = errors.New("unknown city format")

//*******************************************
// city files
//*******************************************

// Layout of yaml and json city files, edges are [from, to, weight].
type CityFile struct {
	Roads   [][3]int32       `yaml:"roads" json:"roads"`
	Tracks  [][3]int32       `yaml:"tracks" json:"tracks"`
	Friends []structs.Friend `yaml:"friends" json:"friends"`
}

// Reads a city from a yaml/json file or a directory of csv files.
func ReadCity(path string) (*City, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return ReadCityCSV(path)
	}
	return ReadCityFile(path)
}

func ReadCityFile(file string) (*City, error) {
	var city_file CityFile
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		city_file, err = ReadYAMLFromFile[CityFile](file)
	case ".json":
		city_file, err = ReadJSONFromFile[CityFile](file)
	default:
		return nil, fmt.Errorf("%s: %w", file, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	city := &City{
		Roads:   NewList[structs.RoadEdge](len(city_file.Roads)),
		Tracks:  NewList[structs.TransitEdge](len(city_file.Tracks)),
		Friends: NewList[structs.Friend](len(city_file.Friends)),
	}
	for _, r := range city_file.Roads {
		city.Roads.Add(structs.RoadEdge{From: r[0], To: r[1], Weight: r[2]})
	}
	for _, t := range city_file.Tracks {
		city.Tracks.Add(structs.TransitEdge{From: t[0], To: t[1], Weight: t[2]})
	}
	for _, f := range city_file.Friends {
		city.Friends.Add(f)
	}
	return city, nil
}

// Reads roads.csv, tracks.csv and friends.csv from dir, tracks.csv is optional.
func ReadCityCSV(dir string) (*City, error) {
	roads, err := ReadCSVFromFile[structs.RoadEdge](filepath.Join(dir, "roads.csv"), ',')
	if err != nil {
		return nil, err
	}
	tracks := NewList[structs.TransitEdge](0)
	tracks_file := filepath.Join(dir, "tracks.csv")
	if _, err := os.Stat(tracks_file); err == nil {
		tracks, err = ReadCSVFromFile[structs.TransitEdge](tracks_file, ',')
		if err != nil {
			return nil, err
		}
	}
	friends, err := ReadFriendsCSV(filepath.Join(dir, "friends.csv"))
	if err != nil {
		return nil, err
	}
	return &City{
		Roads:   roads,
		Tracks:  tracks,
		Friends: friends,
	}, nil
}

func ReadFriendsCSV(file string) (List[structs.Friend], error) {
	return ReadCSVFromFile[structs.Friend](file, ',')
}

// Reads roads from an osm extract, tracks from an optional gtfs feed and
// friends from a csv file whose locations refer to the parsed locations.
func ReadOSMCity(ctx context.Context, pbf_file string, gtfs_path string, friends_file string, max_snap float64) (*City, error) {
	roads, err := ParseRoads(ctx, pbf_file, &DrivingDecoder{})
	if err != nil {
		return nil, err
	}
	tracks := NewList[structs.TransitEdge](0)
	if gtfs_path != "" {
		tracks, err = ParseTracks(gtfs_path, roads.Locations, max_snap)
		if err != nil {
			return nil, err
		}
	}
	friends, err := ReadFriendsCSV(friends_file)
	if err != nil {
		return nil, err
	}
	return &City{
		Roads:   roads.Roads,
		Tracks:  tracks,
		Friends: friends,
	}, nil
}

func (self *City) BuildGraph() (*graph.CityGraph, error) {
	return graph.BuildGraph(self.Roads, self.Tracks, self.Friends)
}
