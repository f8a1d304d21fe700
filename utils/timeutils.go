package utils

import (
	"strconv"
	"strings"
	"time"
)

// isoOffsetLayout renders UTC as "+00:00" rather than "Z".
const isoOffsetLayout = "2006-01-02T15:04:05-07:00"

// Bounds of 0001-01-01T00:00:00 and 9999-12-31T23:59:59 UTC.
const (
	minISOEpoch int64 = -62135596800
	maxISOEpoch int64 = 253402300799
)

// ISO8601FromUnixSeconds converts a Unix timestamp to an ISO8601 string in UTC
// with an explicit "+00:00" offset.
func ISO8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(isoOffsetLayout)
}

// ISO8601FromUnixSecondsChecked is ISO8601FromUnixSeconds for untrusted input.
// It reports false when the instant falls outside years 1-9999, which have no
// four digit ISO8601 representation.
func ISO8601FromUnixSecondsChecked(sec int64) (string, bool) {
	if sec < minISOEpoch || sec > maxISOEpoch {
		return "", false
	}
	return ISO8601FromUnixSeconds(sec), true
}

// ParseEpochSeconds parses a base-10 integer, tolerating surrounding whitespace
// and a leading sign.
func ParseEpochSeconds(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// HistoricMonth formats the YYYY-MM value used by historic feed requests.
// Single digit months are zero padded.
func HistoricMonth(year, month string) string {
	month = strings.TrimSpace(month)
	if len(month) == 1 {
		month = "0" + month
	}
	return strings.TrimSpace(year) + "-" + month
}
