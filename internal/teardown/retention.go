package teardown

import (
	"fmt"
	"strings"
	"time"
)

// retentionLayouts are tried in order. Values without a zone are read as UTC.
var retentionLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseRetentionDate parses a DeleteOnOrAfter tag value.
func ParseRetentionDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range retentionLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format %q: expected YYYY-MM-DD or an RFC 3339 timestamp", value)
}

// RetentionElapsed reports whether now is on or after the retention date.
func RetentionElapsed(value string, now time.Time) (bool, time.Time, error) {
	t, err := ParseRetentionDate(value)
	if err != nil {
		return false, time.Time{}, err
	}
	return !now.UTC().Before(t), t, nil
}
