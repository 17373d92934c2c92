package response_models

type ChatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SessionResponse struct {
	SessionID          string                `json:"session_id"`
	Token              string                `json:"token,omitempty"`
	AwaitingTrip       bool                  `json:"awaiting_trip"`
	Preferences        []string              `json:"preferences"`
	TripDescription    string                `json:"trip_description,omitempty"`
	ItineraryGenerated bool                  `json:"itinerary_generated"`
	ItineraryContent   string                `json:"itinerary_content,omitempty"`
	Messages           []ChatMessageResponse `json:"messages"`
}

type TurnResponse struct {
	SessionID   string                `json:"session_id"`
	Replies     []ChatMessageResponse `json:"replies"`
	Duplicate   bool                  `json:"duplicate"`
	HistorySize int                   `json:"history_size"`
}
