package domain

import (
	"strings"
	"time"
)

// timeLayouts lists the timestamp shapes the board API is known to emit.
// The backend serialises LocalDateTime values without a zone offset, so the
// plain RFC 3339 parser alone is not enough.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Time is a time.Time that tolerates the backend's zone-less timestamps.
// Zone-less values are interpreted as UTC.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	var err error
	for _, layout := range timeLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return err
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}
