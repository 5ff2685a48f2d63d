package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// IST is the zone used for wall clock times sent without an offset.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// DateTime accepts RFC 3339 timestamps and the datetime-local values the
// booking form sends.
type DateTime struct {
	time.Time
}

func ParseDateTime(value string) (DateTime, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateTime{t}, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, IST); err == nil {
			return DateTime{t}, nil
		}
	}

	return DateTime{}, fmt.Errorf("invalid datetime %q", value)
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	if value == "" {
		*d = DateTime{}
		return nil
	}

	parsed, err := ParseDateTime(value)
	if err != nil {
		// the decoder fills in the offending field for type errors
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(value), Type: reflect.TypeOf(d).Elem()}
	}

	*d = parsed
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(time.RFC3339))
}
