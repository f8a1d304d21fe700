/*
Package gtfs defines plain record types for 511 operators and GTFS static
tables.

The client downloads GTFS feeds as ZIP archives but does not unpack them. These
types describe the rows a caller gets after parsing the archive's CSV files
with their own tooling. The csv tags match the GTFS column names, so a
gocsv-style unmarshaller can fill them directly:

	var stops []gtfs.Stop
	err := gocsv.UnmarshalFile(stopsFile, &stops)

Foreign keys (Trip.RouteID -> Route.RouteID, StopTime.TripID -> Trip.TripID,
StopTime.StopID -> Stop.StopID) are informational only. Nothing here resolves
or checks them.

Operator mirrors one element of the transit/operators JSON response and has
both json and csv tags.
*/
package gtfs
