package fiveoneone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFeedMessage_TimestampRoundTrip(t *testing.T) {
	v, err := DecodeFeedMessage(testFeedBytes(t))
	require.NoError(t, err)

	ts, ok := v.Path("header", "timestamp").AsString()
	require.True(t, ok)
	assert.Equal(t, "2023-11-14T22:13:20+00:00", ts)

	version, _ := v.Path("header", "gtfs_realtime_version").AsString()
	assert.Equal(t, "2.0", version)
}

func TestDecodeFeedMessage_WithoutConversion(t *testing.T) {
	v, err := DecodeFeedMessage(testFeedBytes(t), WithoutTimestampConversion())
	require.NoError(t, err)

	ts, _ := v.Path("header", "timestamp").AsString()
	assert.Equal(t, "1700000000", ts)
}

func TestDecodeFeedMessage_Invalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"text":      []byte("not a protobuf"),
		"truncated": testFeedBytes(t)[:10],
		"empty":     {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeFeedMessage(data)

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr), "got %T: %v", err, err)
			assert.Equal(t, "protobuf", decErr.Format)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}
