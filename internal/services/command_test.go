package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandDetector_Detect(t *testing.T) {
	detector := NewCommandDetector()

	tests := []struct {
		text string
		want Command
	}{
		{"Please add 3 days to the trip", Command{Action: CommandExtend, Days: 3}},
		{"ADD 2 DAYS", Command{Action: CommandExtend, Days: 2}},
		{"Can you reduce the duration by 2 days?", Command{Action: CommandShrink, Days: 2}},
		{"add 1 days and reduce the duration by 4 days", Command{Action: CommandExtend, Days: 1}},
		{"add two days", Command{Action: CommandNone}},
		{"shorten it by 2 days", Command{Action: CommandNone}},
		{"Make day 2 more relaxed", Command{Action: CommandNone}},
		{"", Command{Action: CommandNone}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.text))
		})
	}
}
