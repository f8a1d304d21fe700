// Package gtfsrt decodes GTFS-Realtime protobuf feeds.
//
// It supports the three 511 realtime feeds:
//   - Trip Updates: real-time arrival/departure predictions
//   - Vehicle Positions: current vehicle locations
//   - Service Alerts: disruptions and service changes
//
// Parse turns raw bytes into a FeedMessage, ToValue projects it onto a
// value.Value using the proto field names, and ConvertTimestamps rewrites
// epoch seconds under "time" and "timestamp" keys into ISO8601 strings.
package gtfsrt
