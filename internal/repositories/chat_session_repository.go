package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"tripchat/internal/infra"
	dbm "tripchat/internal/models/db_models"
)

type ChatSessionRepository interface {
	CreateSession(ctx context.Context, session *dbm.ChatSession) error
	// GetSessionById returns nil, nil when the session does not exist.
	GetSessionById(ctx context.Context, sessionId string) (*dbm.ChatSession, error)
	// SaveSession updates the session flags and appends messages that are
	// not stored yet. Stored messages are never rewritten.
	SaveSession(ctx context.Context, session *dbm.ChatSession) error
	DeleteSession(ctx context.Context, sessionId string) error
}

type chatSessionRepository struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) ChatSessionRepository {
	return &chatSessionRepository{db: db}
}

func (r *chatSessionRepository) CreateSession(ctx context.Context, session *dbm.ChatSession) error {
	for i := range session.Messages {
		session.Messages[i].Seq = i
	}
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *chatSessionRepository) GetSessionById(ctx context.Context, sessionId string) (*dbm.ChatSession, error) {
	var session dbm.ChatSession
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		First(&session, "id = ?", sessionId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *chatSessionRepository) SaveSession(ctx context.Context, session *dbm.ChatSession) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { infra.ReleaseTransaction(tx, err) }()

	update := dbm.ChatSession{
		TripDescription:    session.TripDescription,
		Preferences:        session.Preferences,
		ItineraryGenerated: session.ItineraryGenerated,
		ItineraryContent:   session.ItineraryContent,
	}
	res := tx.Model(&dbm.ChatSession{BaseModel: dbm.BaseModel{ID: session.ID}}).
		Select("TripDescription", "Preferences", "ItineraryGenerated", "ItineraryContent", "UpdatedAt").
		Updates(&update)
	if err = res.Error; err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		err = fmt.Errorf("save session %s: %w", session.ID, errSessionMissing)
		return err
	}

	var stored int64
	if err = tx.Model(&dbm.ChatMessage{}).Where("session_id = ?", session.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) >= len(session.Messages) {
		return nil
	}

	pending := make([]dbm.ChatMessage, 0, len(session.Messages)-int(stored))
	for i := int(stored); i < len(session.Messages); i++ {
		msg := session.Messages[i]
		msg.SessionID = session.ID
		msg.Seq = i
		pending = append(pending, msg)
	}
	err = tx.Create(&pending).Error
	return err
}

func (r *chatSessionRepository) DeleteSession(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionId).Delete(&dbm.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.ChatSession{}, "id = ?", sessionId).Error
	})
}

var errSessionMissing = errors.New("session does not exist")
