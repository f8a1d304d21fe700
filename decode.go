package fiveoneone

import (
	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfsrt"
	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

type decodeOptions struct {
	convertTimestamps bool
}

// DecodeOption adjusts DecodeFeedMessage.
type DecodeOption func(*decodeOptions)

// WithoutTimestampConversion keeps "time" and "timestamp" values as the epoch
// seconds the feed carries.
func WithoutTimestampConversion() DecodeOption {
	return func(o *decodeOptions) { o.convertTimestamps = false }
}

// WithTimestampConversion sets whether epoch seconds are rewritten.
func WithTimestampConversion(enabled bool) DecodeOption {
	return func(o *decodeOptions) { o.convertTimestamps = enabled }
}

// DecodeFeedMessage parses GTFS-Realtime protobuf bytes into a value.Value
// keyed by proto field names. By default every "time" and "timestamp" member
// holding epoch seconds is replaced by an ISO8601 UTC string. Bytes that are
// not a valid FeedMessage yield a *DecodeError.
func DecodeFeedMessage(data []byte, opts ...DecodeOption) (value.Value, error) {
	o := decodeOptions{convertTimestamps: true}
	for _, opt := range opts {
		opt(&o)
	}

	fm, err := gtfsrt.Parse(data)
	if err != nil {
		return value.Value{}, &DecodeError{Format: "protobuf", Err: err}
	}
	v, err := gtfsrt.ToValue(fm)
	if err != nil {
		return value.Value{}, &DecodeError{Format: "protobuf", Err: err}
	}
	if o.convertTimestamps {
		v = gtfsrt.ConvertTimestamps(v)
	}
	return v, nil
}
