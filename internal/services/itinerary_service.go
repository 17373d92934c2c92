package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripchat/pkg/metrics"
	"tripchat/pkg/utils"
)

type ItineraryServiceInterface interface {
	// Submit processes one user turn. The first non-empty input on a fresh
	// state generates the base itinerary; every later input is a follow-up.
	Submit(ctx context.Context, state SessionState, userText string) (SessionState, []Message, error)
}

type ItineraryService struct {
	chat       utils.ChatClient
	allocator  AllocationExtractor
	detector   CommandDetector
	prompts    PromptBuilderInterface
	references ReferenceEnricherInterface
	logger     *zap.Logger
}

func NewItineraryService(
	chat utils.ChatClient,
	allocator AllocationExtractor,
	detector CommandDetector,
	prompts PromptBuilderInterface,
	references ReferenceEnricherInterface,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		chat:       chat,
		allocator:  allocator,
		detector:   detector,
		prompts:    prompts,
		references: references,
		logger:     logger,
	}
}

func (s *ItineraryService) Submit(ctx context.Context, state SessionState, userText string) (SessionState, []Message, error) {
	if strings.TrimSpace(userText) == "" {
		return state, nil, utils.ErrInvalidInput
	}

	next := state.Clone()
	next.Messages = append(next.Messages, Message{Role: utils.RoleUser, Content: userText})

	if state.AwaitingTrip() {
		return s.generateItinerary(ctx, next, userText)
	}
	return s.processFollowUp(ctx, next, userText)
}

// generateItinerary handles the first turn. The trip description is only
// recorded once an itinerary exists, so a failed first call leaves the
// session waiting for a trip description.
func (s *ItineraryService) generateItinerary(ctx context.Context, state SessionState, tripDescription string) (SessionState, []Message, error) {
	start := time.Now()
	defer func() {
		metrics.TurnDuration.WithLabelValues("initial").Observe(time.Since(start).Seconds())
	}()

	preferences := DetectPreferences(tripDescription)
	allocations := s.allocator.Extract(tripDescription)
	prompt := s.prompts.InitialPrompt(tripDescription, preferences, allocations)

	s.logger.Info("generating itinerary",
		zap.Strings("preferences", preferences),
		zap.Int("allocations", len(allocations)))

	reply, err := s.complete(ctx, state.Messages, prompt)
	if err != nil {
		return state, nil, fmt.Errorf("%w: %w", utils.ErrItineraryGeneration, err)
	}

	formatted := FormatItinerary(reply)
	content := formatted
	if !state.ItineraryGenerated {
		refs, err := s.references.References(ctx, formatted)
		if err != nil {
			s.logger.Warn("reference enrichment failed", zap.Error(err))
			return state, nil, fmt.Errorf("%w: %w", utils.ErrItineraryGeneration, err)
		}
		content = AppendReferences(formatted, refs)
	}

	assistant := Message{Role: utils.RoleAssistant, Content: content}
	state.Messages = append(state.Messages, assistant)
	state.Preferences = preferences
	state.TripDescription = tripDescription
	state.ItineraryContent = content
	state.ItineraryGenerated = true

	return state, []Message{assistant}, nil
}

func (s *ItineraryService) processFollowUp(ctx context.Context, state SessionState, userText string) (SessionState, []Message, error) {
	start := time.Now()
	defer func() {
		metrics.TurnDuration.WithLabelValues("follow_up").Observe(time.Since(start).Seconds())
	}()

	cmd := s.detector.Detect(userText)
	prompt := s.prompts.FollowUpPrompt(userText, cmd)

	s.logger.Info("processing follow-up",
		zap.String("action", string(cmd.Action)),
		zap.Int("days", cmd.Days))

	reply, err := s.complete(ctx, state.Messages, prompt)
	if err != nil {
		return state, nil, fmt.Errorf("%w: %w", utils.ErrFollowUpProcessing, err)
	}

	// Compared before formatting: the model repeating an earlier answer verbatim.
	if state.hasAssistantReply(reply) {
		s.logger.Info("dropping duplicate reply")
		metrics.DuplicateReplies.Inc()
		return state, nil, nil
	}

	formatted := FormatItinerary(reply)
	assistant := Message{Role: utils.RoleAssistant, Content: formatted}
	state.ItineraryContent += "\n\n" + formatted
	state.Messages = append(state.Messages, assistant)

	return state, []Message{assistant}, nil
}

// complete sends the history plus the instruction as a trailing user
// message. The instruction itself is not kept in the history.
func (s *ItineraryService) complete(ctx context.Context, history []Message, instruction string) (string, error) {
	request := make([]utils.ChatMessage, 0, len(history)+1)
	request = append(request, history...)
	request = append(request, utils.ChatMessage{Role: utils.RoleUser, Content: instruction})

	reply, err := s.chat.Complete(ctx, request)
	if err != nil {
		metrics.ModelCalls.WithLabelValues(s.chat.Provider(), "error").Inc()
		s.logger.Error("model call failed", zap.String("provider", s.chat.Provider()), zap.Error(err))
		return "", err
	}
	metrics.ModelCalls.WithLabelValues(s.chat.Provider(), "ok").Inc()
	return strings.TrimSpace(reply), nil
}
