// Package utils provides small helpers shared by the client packages.
//
// It contains:
//   - ISO8601 formatting of Unix epoch seconds
//   - Lenient integer parsing for epoch values carried as strings
//   - Query value helpers
package utils
