package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_UsesReferenceZone(t *testing.T) {
	// 14:30 UTC on Dec 13 is already Dec 14 in Sydney (UTC+11 in summer).
	now := time.Date(2025, 12, 13, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-12-14", Today(now))

	// 12:00 UTC is still Dec 13 23:00 in Sydney.
	now = time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-12-13", Today(now))
}

func TestToday_WinterOffset(t *testing.T) {
	// AEST is UTC+10 in July.
	now := time.Date(2025, 7, 1, 13, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-01", Today(now))
	now = time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-02", Today(now))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "canonical", in: "2025-12-14", want: "2025-12-14"},
		{name: "toDateString", in: "Wed Dec 11 2025", want: "2025-12-11"},
		{name: "toDateString padded day", in: "Wed Dec 03 2025", want: "2025-12-03"},
		{name: "month day year", in: "Dec 11 2025", want: "2025-12-11"},
		{name: "us slashes", in: "12/11/2025", want: "2025-12-11"},
		{name: "iso slashes", in: "2025/12/11", want: "2025-12-11"},
		{name: "rfc3339 projected into sydney", in: "2025-12-13T14:30:00Z", want: "2025-12-14"},
		{name: "surrounding whitespace", in: " 2025-12-14 ", want: "2025-12-14"},
		{name: "impossible day", in: "2025-02-30", wantErr: true},
		{name: "garbage", in: "yesterday-ish", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "same day", a: "2025-12-14", b: "2025-12-14", want: 0},
		{name: "next day", a: "2025-12-13", b: "2025-12-14", want: 1},
		{name: "gap", a: "2025-12-10", b: "2025-12-14", want: 4},
		{name: "backwards", a: "2025-12-15", b: "2025-12-14", want: -1},
		{name: "month boundary", a: "2025-11-30", b: "2025-12-01", want: 1},
		{name: "year boundary", a: "2025-12-31", b: "2026-01-01", want: 1},
		{name: "leap day", a: "2024-02-28", b: "2024-03-01", want: 2},
		{name: "across sydney DST start", a: "2025-10-04", b: "2025-10-06", want: 2},
		{name: "across sydney DST end", a: "2025-04-05", b: "2025-04-07", want: 2},
		{name: "legacy against canonical", a: "Wed Dec 11 2025", b: "2025-12-14", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayDistance(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayDistance_SelfIsZero(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 800; i += 7 {
		day := start.AddDate(0, 0, i).Format(DayLayout)
		d, err := DayDistance(day, day)
		require.NoError(t, err)
		assert.Zero(t, d, day)
	}
}

func TestDayDistance_InvalidInput(t *testing.T) {
	_, err := DayDistance("not a date", "2025-12-14")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = DayDistance("2025-12-14", "2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("2025-12-14"))
	assert.False(t, IsCanonical("Wed Dec 11 2025"))
	assert.False(t, IsCanonical("2025-1-4"))
	assert.False(t, IsCanonical("2025-02-30"))
}
