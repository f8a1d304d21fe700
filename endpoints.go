package fiveoneone

import (
	"context"
	"net/url"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfs"
	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfsrt"
	"github.com/theoremus-urban-solutions/go-fiveoneone/utils"
	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

const (
	// EndpointGTFSOperators lists operators with a downloadable GTFS dataset.
	EndpointGTFSOperators = "transit/gtfsoperators"

	// EndpointDataFeeds serves an operator's GTFS feed.
	// Required params: operator_id. Optional: historic=YYYY-MM
	EndpointDataFeeds = "transit/datafeeds"

	// EndpointStopTimetable returns scheduled departures at a stop.
	// Required params: operatorref, monitoringref, format
	EndpointStopTimetable = "transit/stoptimetable"

	// EndpointOperators lists all operators known to the API.
	EndpointOperators = "transit/operators"

	// EndpointStopMonitoring returns real-time arrival predictions.
	// Required params: agency, format. Optional: stopcode
	EndpointStopMonitoring = "transit/StopMonitoring"
)

// GTFSOperators lists the transit operators that have a GTFS dataset available
// for download, with each operator's ID, name and the date its feed was last
// updated.
func (c *Client) GTFSOperators(ctx context.Context) (value.Value, error) {
	var v value.Value
	err := c.requestJSON(ctx, EndpointGTFSOperators, nil, &v)
	return v, err
}

// GTFSFeedList queries the datafeeds endpoint for an operator as JSON.
func (c *Client) GTFSFeedList(ctx context.Context, operatorID string) (value.Value, error) {
	var v value.Value
	err := c.requestJSON(ctx, EndpointDataFeeds, url.Values{"operator_id": {operatorID}}, &v)
	return v, err
}

// ScheduledDeparturesAtStop returns the stop timetable for one stop of an
// operator.
func (c *Client) ScheduledDeparturesAtStop(ctx context.Context, operatorID, stopID string) (value.Value, error) {
	params := url.Values{
		"operatorref":   {operatorID},
		"monitoringref": {stopID},
		"format":        {"json"},
	}
	var v value.Value
	err := c.requestJSON(ctx, EndpointStopTimetable, params, &v)
	return v, err
}

// GTFSFeedDownload saves an operator's GTFS feed ZIP to disk and returns the
// path written.
//
// A non-empty dest that does not end in ".zip" gets ".zip" appended and is
// then used as the file path. With an empty dest the file lands in the working
// directory under the name from the server's Content-Disposition header.
// When both month and year are given the archived feed for that month is
// requested instead of the current one.
func (c *Client) GTFSFeedDownload(ctx context.Context, operatorID, dest, month, year string) (string, error) {
	if dest != "" && !strings.HasSuffix(strings.ToLower(dest), ".zip") {
		dest += ".zip"
	}
	params := url.Values{"operator_id": {operatorID}}
	if month != "" && year != "" {
		params.Set("historic", utils.HistoricMonth(year, month))
	}
	return c.download(ctx, EndpointDataFeeds, params, dest)
}

// Download streams any endpoint to disk using the same destination rules as
// GTFSFeedDownload, without the ".zip" suffix handling.
func (c *Client) Download(ctx context.Context, endpoint string, params url.Values, dest string) (string, error) {
	return c.download(ctx, endpoint, params, dest)
}

// Operators returns transit/operators as a generic tree.
func (c *Client) Operators(ctx context.Context) (value.Value, error) {
	var v value.Value
	err := c.requestJSON(ctx, EndpointOperators, url.Values{"format": {"json"}}, &v)
	return v, err
}

// OperatorList returns transit/operators decoded into records.
func (c *Client) OperatorList(ctx context.Context) ([]gtfs.Operator, error) {
	var ops []gtfs.Operator
	err := c.requestJSON(ctx, EndpointOperators, url.Values{"format": {"json"}}, &ops)
	return ops, err
}

// StopMonitoring returns real-time predictions for an agency, optionally
// narrowed to a single stop code.
func (c *Client) StopMonitoring(ctx context.Context, agency, stopCode string) (value.Value, error) {
	params := url.Values{
		"agency": {agency},
		"format": {"json"},
	}
	if stopCode != "" {
		params.Set("stopcode", stopCode)
	}
	var v value.Value
	err := c.requestJSON(ctx, EndpointStopMonitoring, params, &v)
	return v, err
}

// TripUpdates fetches and decodes the agency's GTFS-RT trip updates.
func (c *Client) TripUpdates(ctx context.Context, agency string) (value.Value, error) {
	return c.realtime(ctx, gtfsrt.KindTripUpdates, agency)
}

// VehiclePositions fetches and decodes the agency's GTFS-RT vehicle positions.
func (c *Client) VehiclePositions(ctx context.Context, agency string) (value.Value, error) {
	return c.realtime(ctx, gtfsrt.KindVehiclePositions, agency)
}

// ServiceAlerts fetches and decodes the agency's GTFS-RT service alerts.
func (c *Client) ServiceAlerts(ctx context.Context, agency string) (value.Value, error) {
	return c.realtime(ctx, gtfsrt.KindServiceAlerts, agency)
}

// Realtime is TripUpdates, VehiclePositions or ServiceAlerts selected by kind.
func (c *Client) Realtime(ctx context.Context, kind gtfsrt.Kind, agency string) (value.Value, error) {
	return c.realtime(ctx, kind, agency)
}

// RealtimeBytes returns the undecoded protobuf payload of a realtime feed.
func (c *Client) RealtimeBytes(ctx context.Context, kind gtfsrt.Kind, agency string) ([]byte, error) {
	return c.requestBytes(ctx, kind.Endpoint(), url.Values{"agency": {agency}})
}

// FeedMessage returns a realtime feed as the typed protobuf message.
func (c *Client) FeedMessage(ctx context.Context, kind gtfsrt.Kind, agency string) (*gtfsrtpb.FeedMessage, error) {
	data, err := c.RealtimeBytes(ctx, kind, agency)
	if err != nil {
		return nil, err
	}
	fm, err := gtfsrt.Parse(data)
	if err != nil {
		return nil, &DecodeError{Format: "protobuf", Err: err}
	}
	return fm, nil
}

func (c *Client) realtime(ctx context.Context, kind gtfsrt.Kind, agency string) (value.Value, error) {
	data, err := c.RealtimeBytes(ctx, kind, agency)
	if err != nil {
		return value.Value{}, err
	}
	return DecodeFeedMessage(data, WithTimestampConversion(c.convertTimestamps))
}
