package services

import (
	"regexp"
	"strconv"
	"strings"
)

type CommandAction string

const (
	CommandNone   CommandAction = "none"
	CommandExtend CommandAction = "extend"
	CommandShrink CommandAction = "shrink"
)

// Command is a recognized follow-up edit. Days is zero for CommandNone.
type Command struct {
	Action CommandAction `json:"action"`
	Days   int           `json:"days,omitempty"`
}

// CommandDetector classifies a follow-up message.
type CommandDetector interface {
	Detect(text string) Command
}

var (
	addDaysPattern    = regexp.MustCompile(`\badd\s+(\d+)\s+days\b`)
	reduceDaysPattern = regexp.MustCompile(`\breduce\s+the duration by\s+(\d+)\s+days\b`)
)

type regexCommandDetector struct{}

func NewCommandDetector() CommandDetector {
	return regexCommandDetector{}
}

// Detect checks "add" before "reduce"; only the first match counts.
func (regexCommandDetector) Detect(text string) Command {
	lower := strings.ToLower(text)

	if days, ok := matchDays(addDaysPattern, lower); ok {
		return Command{Action: CommandExtend, Days: days}
	}
	if days, ok := matchDays(reduceDaysPattern, lower); ok {
		return Command{Action: CommandShrink, Days: days}
	}
	return Command{Action: CommandNone}
}

func matchDays(re *regexp.Regexp, text string) (int, bool) {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return 0, false
	}
	days, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return days, true
}
