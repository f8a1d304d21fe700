package gtfsrt

import (
	"github.com/theoremus-urban-solutions/go-fiveoneone/utils"
	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

// timestampKeys are rewritten wherever they occur, independent of the entity
// type that carries them.
var timestampKeys = map[string]struct{}{
	"time":      {},
	"timestamp": {},
}

// ConvertTimestamps returns a copy of v in which every object member named
// "time" or "timestamp" holding an integer (a number, or a string of decimal
// digits) is replaced by its ISO8601 UTC rendering. A member under one of
// those keys that is not an integer is walked like any other value, so
// {"time": {"nested": ...}} keeps its shape.
func ConvertTimestamps(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindObject:
		fields := v.Fields()
		out := make(map[string]value.Value, len(fields))
		for k, child := range fields {
			if _, ok := timestampKeys[k]; ok {
				if iso, ok := epochToISO(child); ok {
					out[k] = value.String(iso)
					continue
				}
			}
			out[k] = ConvertTimestamps(child)
		}
		return value.Object(out)
	case value.KindArray:
		items := v.Items()
		out := make([]value.Value, len(items))
		for i, item := range items {
			out[i] = ConvertTimestamps(item)
		}
		return value.Array(out...)
	}
	return v
}

func epochToISO(v value.Value) (string, bool) {
	var sec int64
	switch v.Kind() {
	case value.KindNumber:
		n, ok := v.Int64()
		if !ok {
			return "", false
		}
		sec = n
	case value.KindString:
		s, _ := v.AsString()
		n, ok := utils.ParseEpochSeconds(s)
		if !ok {
			return "", false
		}
		sec = n
	default:
		return "", false
	}
	return utils.ISO8601FromUnixSecondsChecked(sec)
}
