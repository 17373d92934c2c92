package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocationExtractor_Extract(t *testing.T) {
	extractor := NewAllocationExtractor()

	tests := []struct {
		name string
		text string
		want Allocations
	}{
		{
			name: "two places in order",
			text: "5 days in Kyoto and 2 days in Osaka",
			want: Allocations{{Place: "Kyoto", Days: 5}, {Place: "Osaka", Days: 2}},
		},
		{
			name: "place is capitalized and stripped of punctuation",
			text: "3 days in osaka, then home",
			want: Allocations{{Place: "Osaka", Days: 3}},
		},
		{
			name: "keywords are case-insensitive",
			text: "4 DAYS In KYOTO",
			want: Allocations{{Place: "Kyoto", Days: 4}},
		},
		{
			name: "repeated place keeps position and takes the later count",
			text: "2 days in Kyoto, 1 days in Nara, 6 days in kyoto.",
			want: Allocations{{Place: "Kyoto", Days: 6}, {Place: "Nara", Days: 1}},
		},
		{
			name: "spelled-out numbers are ignored",
			text: "five days in Kyoto",
			want: Allocations{},
		},
		{
			name: "pattern without a place at the end",
			text: "I want 3 days in",
			want: Allocations{},
		},
		{
			name: "no allocation phrase",
			text: "Japan for 7 days",
			want: Allocations{},
		},
		{
			name: "empty text",
			text: "",
			want: Allocations{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.text))
		})
	}
}

func TestAllocations_Get(t *testing.T) {
	allocations := Allocations{{Place: "Kyoto", Days: 5}}

	days, ok := allocations.Get("Kyoto")
	assert.True(t, ok)
	assert.Equal(t, 5, days)

	_, ok = allocations.Get("Osaka")
	assert.False(t, ok)
}
