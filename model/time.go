// model/time.go
package model

import (
	"fmt"
	"strings"
	"time"
)

// localDateTimeLayout is the wire format for all timestamps: a local
// date-time without timezone offset. The server parses this pattern
// literally, so it must be preserved exactly on round trip.
const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a timestamp serialized as yyyy-MM-ddTHH:mm:ss.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime truncates t to second precision, matching what the wire
// format can carry.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.Truncate(time.Second)}
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(localDateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	// A quoted empty string is malformed, not a missing value.
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("parse local date-time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// String returns the wire representation.
func (t LocalDateTime) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(localDateTimeLayout)
}
