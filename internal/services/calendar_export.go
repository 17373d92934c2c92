package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"tripchat/pkg/utils"
)

var dayHeading = regexp.MustCompile(`Day (\d+):`)

// DayPlan is the itinerary text written under one "Day N:" heading.
type DayPlan struct {
	Day     int
	Content string
}

// SplitDays cuts itinerary text at its day headings. Follow-up edits append
// whole new itineraries, so when a day number repeats the latest text wins.
// The reference block is not part of any day.
func SplitDays(itinerary string) []DayPlan {
	if idx := strings.Index(itinerary, ReferencesHeader); idx >= 0 {
		// references sit after the first itinerary; keep what follows them
		itinerary = itinerary[:idx] + dropReferenceBlock(itinerary[idx:])
	}

	locs := dayHeading.FindAllStringSubmatchIndex(itinerary, -1)
	days := map[int]string{}
	for i, loc := range locs {
		day, err := strconv.Atoi(itinerary[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(itinerary)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		days[day] = strings.TrimSpace(itinerary[loc[1]:end])
	}

	plans := make([]DayPlan, 0, len(days))
	for day, content := range days {
		plans = append(plans, DayPlan{Day: day, Content: content})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Day < plans[j].Day })
	return plans
}

// dropReferenceBlock removes the header and its "- [..](..)" lines (or the
// fallback text) and returns whatever follows.
func dropReferenceBlock(block string) string {
	lines := strings.Split(strings.TrimPrefix(block, ReferencesHeader), "\n")
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || line == NoReferencesFound || strings.HasPrefix(line, "- [") {
			continue
		}
		break
	}
	return "\n" + strings.Join(lines[i:], "\n")
}

// ExportItineraryCalendar renders one all-day event per itinerary day,
// day 1 falling on start.
func ExportItineraryCalendar(sessionId, itinerary string, start time.Time) ([]byte, error) {
	plans := SplitDays(itinerary)
	if len(plans) == 0 {
		return nil, utils.ErrNoItinerary
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tripchat//itinerary//EN")

	for _, plan := range plans {
		date := startDay.AddDate(0, 0, plan.Day-1)
		event := cal.AddEvent(fmt.Sprintf("%s-day-%d@tripchat", sessionId, plan.Day))
		event.SetDtStampTime(now)
		event.SetSummary(fmt.Sprintf("Day %d", plan.Day))
		event.SetDescription(plan.Content)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
	}

	return []byte(cal.Serialize()), nil
}
