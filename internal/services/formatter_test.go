package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatItinerary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline headers are split onto their own lines",
			in:   "Day 1: Morning: Visit the temple. Afternoon: Lunch.",
			want: "\n\nDay 1:\n\nMorning:\nVisit the temple.\n\nAfternoon:\nLunch.",
		},
		{
			name: "indented bullets are normalized",
			in:   "Evening:\n - Ramen\n - Stroll",
			want: "\n\nEvening:\n\n- Ramen\n\n- Stroll",
		},
		{
			name: "long blank runs collapse",
			in:   "Intro\n\n\n\n - Tip",
			want: "Intro\n\n- Tip",
		},
		{
			name: "text without headers is unchanged",
			in:   "Try the ramen near the station.",
			want: "Try the ramen near the station.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatItinerary(tt.in))
		})
	}
}

func TestFormatItinerary_Idempotent(t *testing.T) {
	samples := []string{
		"Day 1: Morning: a\n - b\nDay 2: Evening: c   Night: d",
		"Day 1:\nMorning:\n- Temple\nAfternoon: Lunch\n\n\n\nDay 2:   Night: Bar",
		"Here is your plan.\n\nDay 10: Morning: Fly home.",
		"",
	}

	for _, s := range samples {
		once := FormatItinerary(s)
		assert.Equal(t, once, FormatItinerary(once), "input %q", s)
	}
}
