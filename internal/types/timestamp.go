package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayouts are the accepted date formats for request bodies and query
// strings, most specific first. Layouts without an offset are read as UTC.
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s in any of DateLayouts and returns it in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or an RFC 3339 datetime", s)
}

// Timestamp is a JSON date accepted in any of DateLayouts. A JSON null
// leaves it zero so required checks can report the field.
type Timestamp time.Time

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = Timestamp(t)
	return nil
}

// Time returns ts as a time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}
