package wallpaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpandQuery(t *testing.T) {
	july := time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)
	january := time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query string
		now   time.Time
		want  string
	}{
		{"no tokens", "mountain lake", july, "mountain lake"},
		{"season summer", "${season} forest", july, "summer forest"},
		{"season winter", "${season} forest", january, "winter forest"},
		{"month", "${month} skyline", july, "july skyline"},
		{"year", "best of ${year}", january, "best of 2026"},
		{"multiple tokens", "${season} ${month} ${year}", july, "summer july 2025"},
		{"unknown token untouched", "${planet} landscape", july, "${planet} landscape"},
		{"repeated token", "${season} and ${season}", july, "summer and summer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandQuery(tt.query, tt.now))
		})
	}
}

func TestSeasonFor(t *testing.T) {
	cases := map[time.Month]string{
		time.December:  "winter",
		time.January:   "winter",
		time.February:  "winter",
		time.March:     "spring",
		time.May:       "spring",
		time.June:      "summer",
		time.August:    "summer",
		time.September: "autumn",
		time.November:  "autumn",
	}
	for month, want := range cases {
		now := time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, seasonFor(now), "month %s", month)
	}
}
