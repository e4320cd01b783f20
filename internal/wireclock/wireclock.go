// Package wireclock carries timestamps in the service's canonical wire
// format: "YYYY-MM-DD HH:MM:SS", seconds precision, no timezone suffix.
package wireclock

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const Layout = "2006-01-02 15:04:05"

// Time wraps time.Time so that every JSON and database round trip uses
// the wire layout. Values are normalized to UTC at second precision.
type Time struct {
	time.Time
}

func Now() Time { return From(time.Now()) }

func From(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Second)}
}

// Parse reads a wire-format timestamp.
func Parse(s string) (Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Time{}, err
	}
	return Time{t}, nil
}

func (t Time) String() string { return t.Format(Layout) }

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*t = Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("wireclock: not a JSON string: %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer so GORM stores the underlying time.
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

// Scan implements sql.Scanner; drivers hand back time.Time, []byte or string
// depending on the engine.
func (t *Time) Scan(v any) error {
	switch val := v.(type) {
	case nil:
		*t = Time{}
		return nil
	case time.Time:
		*t = From(val)
		return nil
	case []byte:
		return t.scanString(string(val))
	case string:
		return t.scanString(val)
	default:
		return fmt.Errorf("wireclock: cannot scan %T", v)
	}
}

func (t *Time) scanString(s string) error {
	if parsed, err := Parse(s); err == nil {
		*t = parsed
		return nil
	}
	// Engines that hand back text may use RFC 3339 or the sqlite
	// sub-second layout rather than the wire format.
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = From(parsed)
			return nil
		}
	}
	return fmt.Errorf("wireclock: cannot scan %q", s)
}

// GormDataType tells GORM to treat the wrapper as a plain time column.
func (Time) GormDataType() string { return "time" }
