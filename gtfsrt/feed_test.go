package gtfsrt

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestParse_RoundTrip(t *testing.T) {
	fm, err := Parse(marshalFeed(t, newTestFeed()))
	require.NoError(t, err)

	assert.Equal(t, "2.0", fm.GetHeader().GetGtfsRealtimeVersion())
	assert.Equal(t, uint64(1700000000), fm.GetHeader().GetTimestamp())
	assert.Len(t, fm.GetEntity(), 3)
}

func TestParse_InvalidBytes(t *testing.T) {
	_, err := Parse([]byte("not a protobuf"))
	assert.Error(t, err)
}

func TestParse_MissingRequiredHeader(t *testing.T) {
	b, err := proto.MarshalOptions{AllowPartial: true}.Marshal(&gtfsrtpb.FeedMessage{})
	require.NoError(t, err)

	_, err = Parse(b)
	assert.Error(t, err, "header is a required field")
}

func TestToValue_UsesProtoNames(t *testing.T) {
	v, err := ToValue(newTestFeed())
	require.NoError(t, err)

	header := v.Get("header")
	version, _ := header.Get("gtfs_realtime_version").AsString()
	assert.Equal(t, "2.0", version)

	ts, ok := header.Get("timestamp").AsString()
	assert.True(t, ok, "uint64 fields are rendered as strings")
	assert.Equal(t, "1700000000", ts)

	inc, _ := header.Get("incrementality").AsString()
	assert.Equal(t, "FULL_DATASET", inc)

	tu := v.Get("entity").Index(0).Get("trip_update")
	assert.Equal(t, 2, tu.Get("stop_time_update").Len())
	stop, _ := tu.Get("stop_time_update").Index(0).Get("stop_id").AsString()
	assert.Equal(t, "15551", stop)

	_, camel := tu.Lookup("stopTimeUpdate")
	assert.False(t, camel)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"tripupdates":      KindTripUpdates,
		"trip-updates":     KindTripUpdates,
		"vp":               KindVehiclePositions,
		"service-alerts":   KindServiceAlerts,
		"vehiclepositions": KindVehiclePositions,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("positions")
	assert.Error(t, err)

	assert.Equal(t, "transit/servicealerts", KindServiceAlerts.Endpoint())
}

func TestSummarize(t *testing.T) {
	s := Summarize(newTestFeed())

	assert.Equal(t, "2.0", s.Version)
	assert.Equal(t, "FULL_DATASET", s.Incrementality)
	assert.Equal(t, int64(1700000000), s.HeaderTimestamp)
	assert.Equal(t, 3, s.Entities)
	assert.Equal(t, 1, s.TripUpdates)
	assert.Equal(t, 2, s.StopTimeUpdates)
	assert.Equal(t, 1, s.VehiclePositions)
	assert.Equal(t, 1, s.Alerts)
	assert.Equal(t, []string{"14", "38"}, s.RouteIDs)
	assert.Equal(t, int64(1700000100), s.LatestVehicleTS)
}

func TestSummarize_Nil(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Entities)
	assert.Empty(t, s.RouteIDs)
}
