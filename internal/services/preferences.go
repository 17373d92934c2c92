package services

import (
	"strings"

	"tripchat/pkg/utils"
)

type preferenceKeyword struct {
	tag     string
	aliases []string
}

// Order here is the order preferences appear in prompts.
var preferenceKeywords = []preferenceKeyword{
	{tag: "adventure"},
	{tag: "historic"},
	{tag: "foodie"},
	{tag: "pilgrimage"},
	{tag: "kid-friendly"},
	{tag: "senior citizen friendly", aliases: []string{"senior-citizen-friendly"}},
	{tag: "solo"},
	{tag: "budget-friendly"},
}

// PreferenceKeywords lists the display names of every recognized preference.
func PreferenceKeywords() []string {
	names := make([]string, 0, len(preferenceKeywords))
	for _, kw := range preferenceKeywords {
		names = append(names, utils.Capitalize(kw.tag))
	}
	return names
}

// DetectPreferences returns the capitalized preference tags mentioned in text.
func DetectPreferences(text string) []string {
	lower := strings.ToLower(text)
	preferences := []string{}

	for _, kw := range preferenceKeywords {
		if containsAny(lower, append([]string{kw.tag}, kw.aliases...)) {
			preferences = append(preferences, utils.Capitalize(kw.tag))
		}
	}
	return preferences
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
