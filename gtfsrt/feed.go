package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

// Kind names one of the realtime feeds published per agency.
type Kind string

const (
	KindTripUpdates      Kind = "tripupdates"
	KindVehiclePositions Kind = "vehiclepositions"
	KindServiceAlerts    Kind = "servicealerts"
)

// Kinds lists every realtime feed in the order the API documents them.
var Kinds = []Kind{KindTripUpdates, KindVehiclePositions, KindServiceAlerts}

// Endpoint returns the API path serving this feed.
func (k Kind) Endpoint() string {
	return "transit/" + string(k)
}

// ParseKind accepts the endpoint name or the CLI spelling ("trip-updates").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tripupdates", "trip-updates", "tu":
		return KindTripUpdates, nil
	case "vehiclepositions", "vehicle-positions", "vp":
		return KindVehiclePositions, nil
	case "servicealerts", "service-alerts", "alerts":
		return KindServiceAlerts, nil
	}
	return "", fmt.Errorf("unknown realtime feed %q", s)
}

// Parse unmarshals a GTFS-Realtime FeedMessage. Required fields such as
// header.gtfs_realtime_version must be present.
func Parse(data []byte) (*gtfsrtpb.FeedMessage, error) {
	fm := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(data, fm); err != nil {
		return nil, err
	}
	return fm, nil
}

var projection = protojson.MarshalOptions{UseProtoNames: true}

// ToValue projects a message onto a value.Value. Keys keep their proto names
// (trip_update, stop_time_update, ...), enums are rendered by name and 64-bit
// integers are rendered as decimal strings.
func ToValue(msg proto.Message) (value.Value, error) {
	b, err := projection.Marshal(msg)
	if err != nil {
		return value.Value{}, err
	}
	return value.Parse(b)
}
