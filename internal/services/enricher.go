package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"tripchat/pkg/metrics"
	"tripchat/pkg/utils"
)

const (
	ReferencesHeader  = "**Additional Links for Reference:**"
	NoReferencesFound = "No additional links found."
)

type ReferenceEnricherInterface interface {
	// References returns the markdown link block for place names found in text.
	References(ctx context.Context, text string) (string, error)
}

type ReferenceEnricher struct {
	recognizer   utils.EntityRecognizer
	encyclopedia utils.Encyclopedia
	logger       *zap.Logger
}

func NewReferenceEnricher(
	recognizer utils.EntityRecognizer,
	encyclopedia utils.Encyclopedia,
	logger *zap.Logger,
) ReferenceEnricherInterface {
	return &ReferenceEnricher{
		recognizer:   recognizer,
		encyclopedia: encyclopedia,
		logger:       logger,
	}
}

func (r *ReferenceEnricher) References(ctx context.Context, text string) (string, error) {
	entities, err := r.recognizer.Recognize(text)
	if err != nil {
		return "", err
	}

	places := uniquePlaceNames(entities)
	r.logger.Debug("resolving place references", zap.Int("places", len(places)))

	var links strings.Builder
	for _, place := range places {
		page, err := r.encyclopedia.Lookup(ctx, place)
		if err != nil {
			return "", err
		}
		if !page.Exists {
			continue
		}
		links.WriteString(fmt.Sprintf("- [%s](%s)\n", place, page.URL))
		metrics.ReferenceLinks.Inc()
	}

	if links.Len() == 0 {
		return NoReferencesFound, nil
	}
	return links.String(), nil
}

// uniquePlaceNames keeps GPE and LOC entities, deduplicated case-insensitively.
// The first surface form seen wins and appearance order is kept.
func uniquePlaceNames(entities []utils.Entity) []string {
	fold := cases.Fold()

	places := lo.FilterMap(entities, func(e utils.Entity, _ int) (string, bool) {
		name := strings.TrimSpace(e.Text)
		return name, name != "" && (e.Label == utils.EntityGPE || e.Label == utils.EntityLOC)
	})
	return lo.UniqBy(places, func(name string) string {
		return fold.String(name)
	})
}

// AppendReferences attaches the reference block under its header.
func AppendReferences(itinerary, references string) string {
	return itinerary + "\n\n" + ReferencesHeader + "\n" + references
}
