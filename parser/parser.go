package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

// Stream of osm objects, satisfied by *osmpbf.Scanner.
type IOSMScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

type ScanPass byte

const (
	COUNT_PASS ScanPass = 0
	NODE_PASS  ScanPass = 1
	WAY_PASS   ScanPass = 2
)

// Parses the road network of an osm pbf extract.
//
// Ways are split at junction nodes, every junction or way end becomes a
// location. Road weights are travel times in seconds.
func ParseRoads(ctx context.Context, pbf_file string, decoder IOSMDecoder) (*OSMRoads, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, fmt.Errorf("failed to open osm file: %w", err)
	}
	defer file.Close()

	return ParseRoadsFrom(func(pass ScanPass) (IOSMScanner, error) {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
		scanner.SkipRelations = true
		scanner.SkipNodes = pass != NODE_PASS
		scanner.SkipWays = pass == NODE_PASS
		return scanner, nil
	}, decoder)
}

// Runs the three parsing passes over scanners opened by open.
func ParseRoadsFrom(open func(ScanPass) (IOSMScanner, error), decoder IOSMDecoder) (*OSMRoads, error) {
	osm_nodes := NewDict[int64, TempNode](1000)
	index_mapping := NewDict[int64, int32](1000)
	roads := &OSMRoads{
		Roads:     NewList[structs.RoadEdge](1000),
		Locations: NewList[orb.Point](1000),
	}
	edges := NewList[OSMEdge](1000)

	passes := []func(IOSMScanner) error{
		func(scanner IOSMScanner) error {
			return _InitWayHandler(scanner, decoder, osm_nodes)
		},
		func(scanner IOSMScanner) error {
			return _NodeHandler(scanner, osm_nodes, index_mapping, roads)
		},
		func(scanner IOSMScanner) error {
			return _WayHandler(scanner, decoder, osm_nodes, index_mapping, &edges)
		},
	}
	for i, pass := range passes {
		scanner, err := open(ScanPass(i))
		if err != nil {
			return nil, err
		}
		err = pass(scanner)
		scanner.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to scan osm file: %w", err)
		}
	}

	for _, e := range edges {
		roads.Roads.Add(structs.RoadEdge{
			From:   e.NodeA,
			To:     e.NodeB,
			Weight: _TravelTime(e.Length, e.Speed),
		})
	}
	slog.Debug(fmt.Sprintf("parsed osm: %v locations, %v roads", roads.Locations.Length(), roads.Roads.Length()))
	return roads, nil
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner IOSMScanner, decoder IOSMDecoder, osm_nodes Dict[int64, TempNode]) error {
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			if l < 2 {
				continue
			}
			for i := 0; i < l; i++ {
				ndref := int64(nodes[i])
				node := osm_nodes[ndref]
				node.Count += 1
				osm_nodes[ndref] = node
			}
			// way ends always become locations
			for _, ndref := range []int64{int64(nodes[0]), int64(nodes[l-1])} {
				node := osm_nodes[ndref]
				node.Count += 1
				osm_nodes[ndref] = node
			}
		default:
			continue
		}
	}
	return scanner.Err()
}

func _NodeHandler(scanner IOSMScanner, osm_nodes Dict[int64, TempNode], index_mapping Dict[int64, int32], roads *OSMRoads) error {
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := int64(object.ID)
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			on := osm_nodes.Get(id)
			on.Point = orb.Point{object.Lon, object.Lat}
			osm_nodes.Set(id, on)
			if on.Count > 1 {
				index_mapping.Set(id, int32(roads.Locations.Length()))
				roads.Locations.Add(on.Point)
			}
		default:
			continue
		}
	}
	return scanner.Err()
}

func _WayHandler(scanner IOSMScanner, decoder IOSMDecoder, osm_nodes Dict[int64, TempNode], index_mapping Dict[int64, int32], edges *List[OSMEdge]) error {
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			if len(nodes) < 2 {
				continue
			}
			speed := decoder.DecodeSpeed(tags)
			start := int64(nodes[0])
			prev := osm_nodes.Get(start).Point
			length := 0.0
			for i := 1; i < len(nodes); i++ {
				curr := int64(nodes[i])
				on := osm_nodes.Get(curr)
				length += geo.Distance(prev, on.Point)
				prev = on.Point
				if on.Count > 1 {
					a, ok_a := index_mapping[start]
					b, ok_b := index_mapping[curr]
					if ok_a && ok_b && curr != start {
						edges.Add(OSMEdge{NodeA: a, NodeB: b, Length: length, Speed: speed})
					}
					start = curr
					length = 0
				}
			}
		default:
			continue
		}
	}
	return scanner.Err()
}
