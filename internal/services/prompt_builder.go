package services

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type PromptBuilderInterface interface {
	InitialPrompt(tripDescription string, preferences []string, allocations Allocations) string
	FollowUpPrompt(userText string, cmd Command) string
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilderInterface {
	return &PromptBuilder{}
}

// InitialPrompt renders the preference clause even when no preference was
// detected, leaving "preferences: ." in the text.
func (p *PromptBuilder) InitialPrompt(tripDescription string, preferences []string, allocations Allocations) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Create a detailed day-by-day travel itinerary for a %s with preferences: %s. ",
		tripDescription, strings.Join(preferences, ", ")))
	prompt.WriteString("Each day should be split into Morning, Afternoon, Evening, and Night activities, ")
	prompt.WriteString("and provide detailed suggestions for each timeframe.")

	if len(allocations) > 0 {
		clauses := lo.Map(allocations, func(a Allocation, _ int) string {
			return fmt.Sprintf("%d days in %s", a.Days, a.Place)
		})
		prompt.WriteString(fmt.Sprintf(
			" Ensure the itinerary respects the following allocations: %s.",
			strings.Join(clauses, ", ")))
	}

	return prompt.String()
}

func (p *PromptBuilder) FollowUpPrompt(userText string, cmd Command) string {
	switch cmd.Action {
	case CommandExtend:
		return fmt.Sprintf(
			"Please expand on the existing itinerary and integrate %d more days into the trip, "+
				"including relevant destinations, activities, meals, and notable sites. "+
				"Provide more details and include references where appropriate.", cmd.Days)
	case CommandShrink:
		return fmt.Sprintf(
			"Please shorten the existing itinerary by removing %d days. "+
				"Ensure that the most important activities and destinations are retained, "+
				"and provide more details for the remaining days with relevant references.", cmd.Days)
	default:
		return userText
	}
}
