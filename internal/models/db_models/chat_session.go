package db_models

import (
	"github.com/google/uuid"
)

type ChatSession struct {
	BaseModel
	TripDescription    string
	Preferences        []string `gorm:"serializer:json"`
	ItineraryGenerated bool
	ItineraryContent   string `gorm:"type:text"`

	Messages []ChatMessage `gorm:"foreignKey:SessionID"`
}

// ChatMessage rows are append-only; Seq is the position in the conversation.
type ChatMessage struct {
	BaseModel
	SessionID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_session_seq"`
	Seq       int       `gorm:"uniqueIndex:idx_session_seq"`
	Role      string    `gorm:"size:16"`
	Content   string    `gorm:"type:text"`
}
