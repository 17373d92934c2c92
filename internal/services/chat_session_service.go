package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	dbm "tripchat/internal/models/db_models"
	"tripchat/internal/models/response_models"
	"tripchat/internal/repositories"
	"tripchat/pkg/metrics"
	"tripchat/pkg/utils"
)

type ChatSessionServiceInterface interface {
	StartSession(ctx context.Context) (response_models.SessionResponse, error)
	GetSession(ctx context.Context, sessionId string) (response_models.SessionResponse, error)
	SendMessage(ctx context.Context, sessionId string, message string) (response_models.TurnResponse, error)
	ExportCalendar(ctx context.Context, sessionId string, start time.Time) ([]byte, error)
	EndSession(ctx context.Context, sessionId string) error
}

type ChatSessionService struct {
	repo      repositories.ChatSessionRepository
	itinerary ItineraryServiceInterface
	logger    *zap.Logger

	// one turn at a time per session
	locks sync.Map
}

func NewChatSessionService(
	repo repositories.ChatSessionRepository,
	itinerary ItineraryServiceInterface,
	logger *zap.Logger,
) ChatSessionServiceInterface {
	return &ChatSessionService{
		repo:      repo,
		itinerary: itinerary,
		logger:    logger,
	}
}

func (c *ChatSessionService) StartSession(ctx context.Context) (response_models.SessionResponse, error) {
	state := NewSessionState()
	session := toSessionRecord(uuid.New(), state)

	if err := c.repo.CreateSession(ctx, session); err != nil {
		c.logger.Error("create session", zap.Error(err))
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	metrics.SessionsStarted.Inc()
	c.logger.Info("session started", zap.String("session_id", session.ID.String()))

	return toSessionResponse(session.ID.String(), state), nil
}

func (c *ChatSessionService) GetSession(ctx context.Context, sessionId string) (response_models.SessionResponse, error) {
	session, err := c.loadSession(ctx, sessionId)
	if err != nil {
		return response_models.SessionResponse{}, err
	}
	return toSessionResponse(sessionId, toSessionState(session)), nil
}

func (c *ChatSessionService) SendMessage(ctx context.Context, sessionId string, message string) (response_models.TurnResponse, error) {
	unlock := c.lock(sessionId)
	defer unlock()

	session, err := c.loadSession(ctx, sessionId)
	if err != nil {
		return response_models.TurnResponse{}, err
	}

	logger := c.logger.With(zap.String("session_id", sessionId))
	state := toSessionState(session)
	next, replies, turnErr := c.itinerary.Submit(ctx, state, message)
	if errors.Is(turnErr, utils.ErrInvalidInput) {
		return response_models.TurnResponse{}, turnErr
	}

	// A failed turn still keeps the user's message.
	if err := c.repo.SaveSession(ctx, toSessionRecord(session.ID, next)); err != nil {
		logger.Error("save session", zap.Error(err))
		return response_models.TurnResponse{}, utils.ErrDatabaseError
	}
	if turnErr != nil {
		logger.Warn("turn failed", zap.Error(turnErr))
		return response_models.TurnResponse{}, turnErr
	}

	return response_models.TurnResponse{
		SessionID:   sessionId,
		Replies:     toMessageResponses(replies),
		Duplicate:   len(replies) == 0,
		HistorySize: len(next.Messages),
	}, nil
}

func (c *ChatSessionService) ExportCalendar(ctx context.Context, sessionId string, start time.Time) ([]byte, error) {
	session, err := c.loadSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if !session.ItineraryGenerated {
		return nil, utils.ErrNoItinerary
	}
	return ExportItineraryCalendar(sessionId, session.ItineraryContent, start)
}

func (c *ChatSessionService) EndSession(ctx context.Context, sessionId string) error {
	if _, err := c.loadSession(ctx, sessionId); err != nil {
		return err
	}
	if err := c.repo.DeleteSession(ctx, sessionId); err != nil {
		c.logger.Error("delete session", zap.String("session_id", sessionId), zap.Error(err))
		return utils.ErrDatabaseError
	}
	c.locks.Delete(sessionId)
	return nil
}

func (c *ChatSessionService) loadSession(ctx context.Context, sessionId string) (*dbm.ChatSession, error) {
	if _, err := uuid.Parse(sessionId); err != nil {
		return nil, utils.ErrSessionNotFound
	}
	session, err := c.repo.GetSessionById(ctx, sessionId)
	if err != nil {
		c.logger.Error("load session", zap.String("session_id", sessionId), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (c *ChatSessionService) lock(sessionId string) func() {
	v, _ := c.locks.LoadOrStore(sessionId, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func toSessionState(session *dbm.ChatSession) SessionState {
	return SessionState{
		Messages: lo.Map(session.Messages, func(m dbm.ChatMessage, _ int) Message {
			return Message{Role: m.Role, Content: m.Content}
		}),
		Preferences:        append([]string{}, session.Preferences...),
		TripDescription:    session.TripDescription,
		ItineraryGenerated: session.ItineraryGenerated,
		ItineraryContent:   session.ItineraryContent,
	}
}

func toSessionRecord(id uuid.UUID, state SessionState) *dbm.ChatSession {
	return &dbm.ChatSession{
		BaseModel:          dbm.BaseModel{ID: id},
		TripDescription:    state.TripDescription,
		Preferences:        state.Preferences,
		ItineraryGenerated: state.ItineraryGenerated,
		ItineraryContent:   state.ItineraryContent,
		Messages: lo.Map(state.Messages, func(m Message, i int) dbm.ChatMessage {
			return dbm.ChatMessage{SessionID: id, Seq: i, Role: m.Role, Content: m.Content}
		}),
	}
}

func toSessionResponse(sessionId string, state SessionState) response_models.SessionResponse {
	return response_models.SessionResponse{
		SessionID:          sessionId,
		AwaitingTrip:       state.AwaitingTrip(),
		Preferences:        append([]string{}, state.Preferences...),
		TripDescription:    state.TripDescription,
		ItineraryGenerated: state.ItineraryGenerated,
		ItineraryContent:   state.ItineraryContent,
		Messages:           toMessageResponses(state.Messages),
	}
}

func toMessageResponses(messages []Message) []response_models.ChatMessageResponse {
	return lo.Map(messages, func(m Message, _ int) response_models.ChatMessageResponse {
		return response_models.ChatMessageResponse{Role: m.Role, Content: m.Content}
	})
}
