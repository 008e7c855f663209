package parser

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/ttpr0/go-citymap/structs"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// gtfs parser
//*******************************************

type GTFSStop struct {
	StopID string  `csv:"stop_id"`
	Lat    float64 `csv:"stop_lat"`
	Lon    float64 `csv:"stop_lon"`
}

type GTFSStopTime struct {
	TripID    string `csv:"trip_id"`
	Arrival   string `csv:"arrival_time"`
	Departure string `csv:"departure_time"`
	StopID    string `csv:"stop_id"`
	Sequence  int    `csv:"stop_sequence"`
}

// Builds tracks from a gtfs feed directory (stops.txt, stop_times.txt).
//
// Every stop is snapped to the closest location, stops farther away than
// max_snap meters are dropped (max_snap <= 0 disables the limit).
// Consecutive stops of a trip become a track weighted by the scheduled
// ride time, parallel tracks keep the fastest ride.
func ParseTracks(gtfs_path string, locations List[orb.Point], max_snap float64) (List[structs.TransitEdge], error) {
	stops, err := ReadCSVFromFile[GTFSStop](filepath.Join(gtfs_path, "stops.txt"), ',')
	if err != nil {
		return nil, fmt.Errorf("failed to read gtfs stops: %w", err)
	}
	stop_times, err := ReadCSVFromFile[GTFSStopTime](filepath.Join(gtfs_path, "stop_times.txt"), ',')
	if err != nil {
		return nil, fmt.Errorf("failed to read gtfs stop times: %w", err)
	}

	stop_mapping := NewDict[string, int32](stops.Length())
	for _, stop := range stops {
		loc, ok := _SnapToLocation(orb.Point{stop.Lon, stop.Lat}, locations, max_snap)
		if !ok {
			continue
		}
		stop_mapping[stop.StopID] = loc
	}

	trips := NewDict[string, List[GTFSStopTime]](100)
	trip_ids := NewList[string](100)
	for _, st := range stop_times {
		if !trips.ContainsKey(st.TripID) {
			trip_ids.Add(st.TripID)
		}
		trip := trips[st.TripID]
		trip.Add(st)
		trips[st.TripID] = trip
	}

	tracks := NewList[structs.TransitEdge](100)
	track_index := NewDict[Tuple[int32, int32], int](100)
	for _, trip_id := range trip_ids {
		trip := trips[trip_id]
		sort.SliceStable(trip, func(i, j int) bool { return trip[i].Sequence < trip[j].Sequence })
		for i := 1; i < trip.Length(); i++ {
			curr := trip[i-1]
			next := trip[i]
			from, ok_from := stop_mapping[curr.StopID]
			to, ok_to := stop_mapping[next.StopID]
			if !ok_from || !ok_to || from == to {
				continue
			}
			departure, err := _ParseGTFSTime(curr.Departure)
			if err != nil {
				return nil, fmt.Errorf("trip %s: %w", trip_id, err)
			}
			arrival, err := _ParseGTFSTime(next.Arrival)
			if err != nil {
				return nil, fmt.Errorf("trip %s: %w", trip_id, err)
			}
			weight := max(arrival-departure, 0)
			key := MakeTuple(from, to)
			if index, ok := track_index[key]; ok {
				tracks[index].Weight = min(tracks[index].Weight, weight)
				continue
			}
			track_index[key] = tracks.Length()
			tracks.Add(structs.TransitEdge{From: from, To: to, Weight: weight})
		}
	}
	slog.Debug(fmt.Sprintf("parsed gtfs: %v of %v stops snapped, %v tracks", stop_mapping.Length(), stops.Length(), tracks.Length()))
	return tracks, nil
}

func _SnapToLocation(point orb.Point, locations List[orb.Point], max_snap float64) (int32, bool) {
	closest := int32(-1)
	closest_dist := math.Inf(1)
	for i, loc := range locations {
		d := geo.Distance(point, loc)
		if d < closest_dist {
			closest = int32(i)
			closest_dist = d
		}
	}
	if closest == -1 || (max_snap > 0 && closest_dist > max_snap) {
		return -1, false
	}
	return closest, true
}
