package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_InitialPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	got := builder.InitialPrompt(
		"5 days in Kyoto and 2 days in Osaka",
		[]string{"Historic", "Foodie"},
		Allocations{{Place: "Kyoto", Days: 5}, {Place: "Osaka", Days: 2}},
	)

	assert.Equal(t,
		"Create a detailed day-by-day travel itinerary for a 5 days in Kyoto and 2 days in Osaka "+
			"with preferences: Historic, Foodie. Each day should be split into Morning, Afternoon, "+
			"Evening, and Night activities, and provide detailed suggestions for each timeframe. "+
			"Ensure the itinerary respects the following allocations: 5 days in Kyoto, 2 days in Osaka.",
		got)
}

func TestPromptBuilder_InitialPromptWithoutExtras(t *testing.T) {
	got := NewPromptBuilder().InitialPrompt("Japan for 7 days", nil, nil)

	assert.Contains(t, got, "for a Japan for 7 days with preferences: . Each day")
	assert.NotContains(t, got, "allocations")
}

func TestPromptBuilder_FollowUpPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	extend := builder.FollowUpPrompt("add 3 days", Command{Action: CommandExtend, Days: 3})
	assert.Contains(t, extend, "integrate 3 more days into the trip")

	shrink := builder.FollowUpPrompt("reduce the duration by 2 days", Command{Action: CommandShrink, Days: 2})
	assert.Contains(t, shrink, "shorten the existing itinerary by removing 2 days")

	raw := "Swap the museum for a hike"
	assert.Equal(t, raw, builder.FollowUpPrompt(raw, Command{Action: CommandNone}))
}
