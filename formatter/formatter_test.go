package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfs"
	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

func TestBuildJSON_Compact(t *testing.T) {
	v := value.Object(map[string]value.Value{"time": value.String("2023-11-14T22:13:20+00:00")})

	b, err := NewResponseBuilder(false).BuildJSON(v)
	require.NoError(t, err)
	assert.Equal(t, `{"time":"2023-11-14T22:13:20+00:00"}`, string(b))
}

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	err := NewResponseBuilder(true).WriteJSON(&buf, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestWriteCSV_Operators(t *testing.T) {
	var buf bytes.Buffer
	ops := []gtfs.Operator{
		{ID: "AC", Name: "AC TRANSIT", Monitored: true},
		{ID: "SF", Name: "San Francisco Municipal Transportation Agency"},
	}
	require.NoError(t, WriteCSV(&buf, ops))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,name,short_name"))
	assert.True(t, strings.HasPrefix(lines[1], "AC,AC TRANSIT,"))
	assert.True(t, strings.HasSuffix(lines[1], ",true,"))
}

func TestWriteCSV_RejectsNonTabular(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(&buf, value.Null()), ErrNotTabular)
	assert.ErrorIs(t, WriteCSV(&buf, []string{"a"}), ErrNotTabular)
	assert.ErrorIs(t, WriteCSV(&buf, nil), ErrNotTabular)
}
