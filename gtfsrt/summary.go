package gtfsrt

import (
	"sort"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Summary is a compact description of a feed, used by the CLI.
type Summary struct {
	Version          string   `json:"gtfs_realtime_version"`
	Incrementality   string   `json:"incrementality,omitempty"`
	HeaderTimestamp  int64    `json:"timestamp"`
	Entities         int      `json:"entities"`
	Deleted          int      `json:"deleted"`
	TripUpdates      int      `json:"trip_updates"`
	StopTimeUpdates  int      `json:"stop_time_updates"`
	VehiclePositions int      `json:"vehicle_positions"`
	Alerts           int      `json:"alerts"`
	RouteIDs         []string `json:"route_ids"`
	LatestVehicleTS  int64    `json:"latest_vehicle_timestamp,omitempty"`
}

// Summarize walks every entity of a feed once.
func Summarize(fm *gtfsrtpb.FeedMessage) Summary {
	s := Summary{RouteIDs: []string{}}
	if fm == nil {
		return s
	}
	if h := fm.GetHeader(); h != nil {
		s.Version = h.GetGtfsRealtimeVersion()
		if h.Incrementality != nil {
			s.Incrementality = h.GetIncrementality().String()
		}
		s.HeaderTimestamp = int64(h.GetTimestamp())
	}

	routes := map[string]struct{}{}
	for _, e := range fm.GetEntity() {
		s.Entities++
		if e.GetIsDeleted() {
			s.Deleted++
		}
		if tu := e.GetTripUpdate(); tu != nil {
			s.TripUpdates++
			s.StopTimeUpdates += len(tu.GetStopTimeUpdate())
			if id := tu.GetTrip().GetRouteId(); id != "" {
				routes[id] = struct{}{}
			}
		}
		if vp := e.GetVehicle(); vp != nil {
			s.VehiclePositions++
			if id := vp.GetTrip().GetRouteId(); id != "" {
				routes[id] = struct{}{}
			}
			if ts := int64(vp.GetTimestamp()); ts > s.LatestVehicleTS {
				s.LatestVehicleTS = ts
			}
		}
		if a := e.GetAlert(); a != nil {
			s.Alerts++
			for _, ie := range a.GetInformedEntity() {
				if id := ie.GetRouteId(); id != "" {
					routes[id] = struct{}{}
				}
			}
		}
	}

	for id := range routes {
		s.RouteIDs = append(s.RouteIDs, id)
	}
	sort.Strings(s.RouteIDs)
	return s
}
