package services

import (
	"strconv"
	"strings"

	"tripchat/pkg/utils"
)

// Allocation is a user-stated number of days for one place.
type Allocation struct {
	Place string `json:"place"`
	Days  int    `json:"days"`
}

// Allocations keeps places in first-seen order; each place appears once.
type Allocations []Allocation

func (a Allocations) Get(place string) (int, bool) {
	if idx := indexOfPlace(a, place); idx >= 0 {
		return a[idx].Days, true
	}
	return 0, false
}

// AllocationExtractor turns a free-text trip description into per-place day counts.
type AllocationExtractor interface {
	Extract(text string) Allocations
}

type tokenAllocationExtractor struct{}

func NewAllocationExtractor() AllocationExtractor {
	return tokenAllocationExtractor{}
}

// Extract scans for "<N> days in <place>". A repeated place keeps its
// original position and takes the later day count.
func (tokenAllocationExtractor) Extract(text string) Allocations {
	words := strings.Fields(text)
	allocations := Allocations{}

	for i := 0; i+3 < len(words); i++ {
		if !utils.IsDigits(words[i]) {
			continue
		}
		if !strings.EqualFold(words[i+1], "days") || !strings.EqualFold(words[i+2], "in") {
			continue
		}

		days, err := strconv.Atoi(words[i])
		if err != nil {
			continue
		}

		place := utils.Capitalize(utils.TrimPunctuation(words[i+3]))
		if place == "" {
			continue
		}

		if idx := indexOfPlace(allocations, place); idx >= 0 {
			allocations[idx].Days = days
			continue
		}
		allocations = append(allocations, Allocation{Place: place, Days: days})
	}

	return allocations
}

func indexOfPlace(allocations Allocations, place string) int {
	for i, alloc := range allocations {
		if alloc.Place == place {
			return i
		}
	}
	return -1
}
