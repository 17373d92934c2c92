package repositories

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	dbm "tripchat/internal/models/db_models"
)

// memoryChatSessionRepository keeps sessions in process; idle sessions
// expire after ttl, matching the lifetime of an interactive session.
type memoryChatSessionRepository struct {
	sessions *cache.Cache
}

func NewMemoryChatSessionRepository(ttl time.Duration) ChatSessionRepository {
	return &memoryChatSessionRepository{
		sessions: cache.New(ttl, ttl/2),
	}
}

func (r *memoryChatSessionRepository) CreateSession(ctx context.Context, session *dbm.ChatSession) error {
	session.MarkCreated()
	for i := range session.Messages {
		prepareMessage(session, i)
	}

	if err := r.sessions.Add(session.ID.String(), copySession(session), cache.DefaultExpiration); err != nil {
		return fmt.Errorf("create session %s: %w", session.ID, err)
	}
	return nil
}

func (r *memoryChatSessionRepository) GetSessionById(ctx context.Context, sessionId string) (*dbm.ChatSession, error) {
	v, found := r.sessions.Get(sessionId)
	if !found {
		return nil, nil
	}
	return copySession(v.(*dbm.ChatSession)), nil
}

func (r *memoryChatSessionRepository) SaveSession(ctx context.Context, session *dbm.ChatSession) error {
	v, found := r.sessions.Get(session.ID.String())
	if !found {
		return fmt.Errorf("save session %s: %w", session.ID, errSessionMissing)
	}
	stored := v.(*dbm.ChatSession)

	updated := copySession(stored)
	updated.TripDescription = session.TripDescription
	updated.Preferences = slices.Clone(session.Preferences)
	updated.ItineraryGenerated = session.ItineraryGenerated
	updated.ItineraryContent = session.ItineraryContent
	updated.MarkUpdated()

	for i := len(stored.Messages); i < len(session.Messages); i++ {
		updated.Messages = append(updated.Messages, session.Messages[i])
		prepareMessage(updated, i)
	}

	r.sessions.SetDefault(session.ID.String(), updated)
	return nil
}

func (r *memoryChatSessionRepository) DeleteSession(ctx context.Context, sessionId string) error {
	r.sessions.Delete(sessionId)
	return nil
}

func prepareMessage(session *dbm.ChatSession, i int) {
	msg := &session.Messages[i]
	msg.MarkCreated()
	msg.SessionID = session.ID
	msg.Seq = i
}

func copySession(s *dbm.ChatSession) *dbm.ChatSession {
	out := *s
	out.Preferences = slices.Clone(s.Preferences)
	out.Messages = slices.Clone(s.Messages)
	return &out
}
