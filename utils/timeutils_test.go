package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISO8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "epoch", input: 0, expected: "1970-01-01T00:00:00+00:00"},
		{name: "specific timestamp", input: 1700000000, expected: "2023-11-14T22:13:20+00:00"},
		{name: "negative timestamp", input: -86400, expected: "1969-12-31T00:00:00+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ISO8601FromUnixSeconds(tt.input))
		})
	}
}

func TestISO8601FromUnixSecondsChecked(t *testing.T) {
	s, ok := ISO8601FromUnixSecondsChecked(123)
	assert.True(t, ok)
	assert.Equal(t, "1970-01-01T00:02:03+00:00", s)

	_, ok = ISO8601FromUnixSecondsChecked(1 << 50)
	assert.False(t, ok, "year beyond 9999 should be rejected")
}

func TestParseEpochSeconds(t *testing.T) {
	n, ok := ParseEpochSeconds(" 1700000000 ")
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000), n)

	n, ok = ParseEpochSeconds("-5")
	assert.True(t, ok)
	assert.Equal(t, int64(-5), n)

	for _, bad := range []string{"", "12.5", "abc", "99999999999999999999"} {
		_, ok := ParseEpochSeconds(bad)
		assert.False(t, ok, bad)
	}
}

func TestHistoricMonth(t *testing.T) {
	assert.Equal(t, "2024-03", HistoricMonth("2024", "3"))
	assert.Equal(t, "2024-11", HistoricMonth("2024", "11"))
}
