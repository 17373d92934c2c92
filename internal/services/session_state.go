package services

import (
	"slices"
	"strings"

	"tripchat/pkg/utils"
)

type Message = utils.ChatMessage

// SessionState is everything one conversation owns. It is passed into and
// returned from each turn; callers never share one value between sessions.
type SessionState struct {
	Messages           []Message `json:"messages"`
	Preferences        []string  `json:"preferences"`
	TripDescription    string    `json:"trip_description"`
	ItineraryGenerated bool      `json:"itinerary_generated"`
	ItineraryContent   string    `json:"itinerary_content"`
}

// NewSessionState starts a conversation with the welcome message.
func NewSessionState() SessionState {
	return SessionState{
		Messages:    []Message{{Role: utils.RoleAssistant, Content: WelcomeMessage()}},
		Preferences: []string{},
	}
}

func WelcomeMessage() string {
	var b strings.Builder
	b.WriteString("Welcome to the AI Itinerary Builder! Please tell me your preferred location and trip duration (e.g., 'Japan for 7 days').\n\n")
	b.WriteString("Moreover, you can customize your trip further by mentioning any of the following keywords:\n")
	for _, kw := range PreferenceKeywords() {
		b.WriteString("\n- " + kw)
	}
	return b.String()
}

// AwaitingTrip reports whether the next input is the first trip description.
func (s SessionState) AwaitingTrip() bool {
	return s.TripDescription == ""
}

// Clone copies the slices so the returned state can be appended to freely.
func (s SessionState) Clone() SessionState {
	s.Messages = slices.Clone(s.Messages)
	s.Preferences = slices.Clone(s.Preferences)
	return s
}

func (s SessionState) hasAssistantReply(content string) bool {
	return slices.ContainsFunc(s.Messages, func(m Message) bool {
		return m.Role == utils.RoleAssistant && m.Content == content
	})
}
