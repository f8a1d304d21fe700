package formatter

import (
	"errors"
	"io"
	"reflect"

	"github.com/gocarina/gocsv"
)

// ErrNotTabular is returned when CSV output is requested for a result that is
// not a slice of structs.
var ErrNotTabular = errors.New("result cannot be rendered as CSV")

// WriteCSV writes a slice of csv-tagged structs, header row first.
func WriteCSV(w io.Writer, records any) error {
	t := reflect.TypeOf(records)
	if t == nil || t.Kind() != reflect.Slice {
		return ErrNotTabular
	}
	elem := t.Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return ErrNotTabular
	}
	return gocsv.Marshal(records, w)
}
