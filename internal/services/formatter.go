package services

import "regexp"

// Each rule swallows the whitespace it would otherwise insert, so running
// the formatter on its own output is a no-op.
var (
	dayHeaderPattern = regexp.MustCompile(`\n*[ \t]*(Day \d+:)[ \t]*\n?`)
	timeOfDayPattern = regexp.MustCompile(`\n*[ \t]*(Morning|Afternoon|Evening|Night):[ \t]*\n?`)
	bulletPattern    = regexp.MustCompile(`(?m)^[ \t]-[ \t]`)
	blankRunPattern  = regexp.MustCompile(`\n{3,}`)
)

// FormatItinerary puts day and time-of-day headers on their own lines,
// preceded by a blank line, and normalizes " - " bullets.
func FormatItinerary(text string) string {
	formatted := dayHeaderPattern.ReplaceAllString(text, "\n\n$1\n")
	formatted = timeOfDayPattern.ReplaceAllString(formatted, "\n\n$1:\n")
	formatted = bulletPattern.ReplaceAllString(formatted, "\n- ")
	formatted = blankRunPattern.ReplaceAllString(formatted, "\n\n")
	return formatted
}
