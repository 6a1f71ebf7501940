package teardown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionElapsed(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		value   string
		now     time.Time
		want    bool
		wantErr bool
	}{
		{name: "past date", value: "2025-01-01", now: now, want: true},
		{name: "future date", value: "2099-01-01", now: now, want: false},
		{name: "same day at midnight", value: "2025-06-01", now: now, want: true},
		{name: "day before", value: "2025-06-01", now: now.Add(-time.Second), want: false},
		{name: "RFC 3339 in the past", value: "2025-05-31T23:59:59Z", now: now, want: true},
		{name: "RFC 3339 with offset", value: "2025-06-01T01:00:00+02:00", now: now, want: true},
		{name: "naive timestamp read as UTC", value: "2025-06-01T00:00:01", now: now, want: false},
		{name: "non-UTC clock", value: "2025-06-01", now: time.Date(2025, 5, 31, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600)), want: true},
		{name: "garbage", value: "next tuesday", now: now, wantErr: true},
		{name: "empty", value: "", now: now, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _, err := RetentionElapsed(tt.value, tt.now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRetentionDate_ReturnsUTC(t *testing.T) {
	t.Parallel()
	got, err := ParseRetentionDate("2025-06-01T02:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
