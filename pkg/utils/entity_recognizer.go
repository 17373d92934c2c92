package utils

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

const (
	EntityGPE = "GPE" // countries, cities, states
	EntityLOC = "LOC" // non-political locations
)

// Entity is a tagged span found in a text.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer extracts named entities from plain text.
type EntityRecognizer interface {
	Recognize(text string) ([]Entity, error)
}

// ProseRecognizer runs prose's averaged-perceptron NER model in process.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (p *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("ner: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
