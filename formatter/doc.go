// Package formatter renders client results for the command line.
//
// This package is organized into:
// - json.go: JSON serialization, compact or indented
// - csv.go: CSV serialization of record slices via gocsv
package formatter
