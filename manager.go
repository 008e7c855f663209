package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/ttpr0/go-citymap/graph"
	"github.com/ttpr0/go-citymap/parser"
	"github.com/ttpr0/go-citymap/routing"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

// Loads every configured city once, the graphs are read-only afterwards.
func NewCityManager(ctx context.Context, config Config) (*CityManager, error) {
	manager := &CityManager{
		cities: NewDict[string, *CityEntry](config.Cities.Length()),
	}
	for name, options := range config.Cities {
		entry, err := LoadCity(ctx, name, options, config.ParallelSweeps)
		if err != nil {
			return nil, fmt.Errorf("failed to load city %s: %w", name, err)
		}
		manager.cities.Set(name, entry)
	}
	return manager, nil
}

type CityManager struct {
	cities Dict[string, *CityEntry]
}

type CityEntry struct {
	Name    string
	Graph   *graph.CityGraph
	Planner *routing.Planner
}

func LoadCity(ctx context.Context, name string, options CityOptions, parallel bool) (*CityEntry, error) {
	var city *parser.City
	var err error
	switch options.Format {
	case "osm":
		city, err = parser.ReadOSMCity(ctx, options.Source, options.GTFS, options.Friends, options.MaxSnap)
	default:
		city, err = parser.ReadCity(options.Source)
	}
	if err != nil {
		return nil, err
	}
	g, err := city.BuildGraph()
	if err != nil {
		return nil, err
	}
	planner_options := NewList[routing.PlannerOption](1)
	if parallel {
		planner_options.Add(routing.WithParallelSweeps())
	}
	slog.Info(fmt.Sprintf("loaded city %s: %v locations, %v roads, %v tracks", name, g.LocationCount(), g.RoadCount(), g.TrackCount()))
	return &CityEntry{
		Name:    name,
		Graph:   g,
		Planner: routing.NewPlanner(g, planner_options...),
	}, nil
}

func (self *CityManager) GetCity(name string) Optional[*CityEntry] {
	if self.cities.ContainsKey(name) {
		return Some(self.cities.Get(name))
	}
	return None[*CityEntry]()
}

func (self *CityManager) CityNames() List[string] {
	names := NewList[string](self.cities.Length())
	for name := range self.cities {
		names.Add(name)
	}
	sort.Strings(names)
	return names
}
