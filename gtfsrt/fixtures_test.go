package gtfsrt

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// newTestFeed builds a feed with one entity of each kind.
func newTestFeed() *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("tu-1"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{
						TripId:  proto.String("trip-1"),
						RouteId: proto.String("14"),
					},
					StopTimeUpdate: []*gtfsrtpb.TripUpdate_StopTimeUpdate{
						{
							StopId:  proto.String("15551"),
							Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000300)},
						},
						{
							StopId:    proto.String("15552"),
							Departure: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000600), Delay: proto.Int32(30)},
						},
					},
				},
			},
			{
				Id: proto.String("vp-1"),
				Vehicle: &gtfsrtpb.VehiclePosition{
					Trip:      &gtfsrtpb.TripDescriptor{TripId: proto.String("trip-1"), RouteId: proto.String("14")},
					Position:  &gtfsrtpb.Position{Latitude: proto.Float32(37.77), Longitude: proto.Float32(-122.42)},
					Timestamp: proto.Uint64(1700000100),
				},
			},
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					ActivePeriod:   []*gtfsrtpb.TimeRange{{Start: proto.Uint64(1699990000), End: proto.Uint64(1700090000)}},
					InformedEntity: []*gtfsrtpb.EntitySelector{{RouteId: proto.String("38")}},
					Effect:         gtfsrtpb.Alert_DETOUR.Enum(),
				},
			},
		},
	}
}

func marshalFeed(t *testing.T, fm *gtfsrtpb.FeedMessage) []byte {
	t.Helper()
	b, err := proto.Marshal(fm)
	require.NoError(t, err)
	return b
}
