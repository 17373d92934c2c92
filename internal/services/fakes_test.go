package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"tripchat/pkg/utils"
)

// scriptedChatClient replays canned replies in order and records every request.
type scriptedChatClient struct {
	mu       sync.Mutex
	replies  []string
	err      error
	requests [][]utils.ChatMessage
}

func (s *scriptedChatClient) Complete(_ context.Context, messages []utils.ChatMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, slices.Clone(messages))
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("no scripted reply left")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedChatClient) Provider() string { return "scripted" }

func (s *scriptedChatClient) lastRequest() []utils.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

type stubEnricher struct {
	refs  string
	err   error
	calls int
}

func (s *stubEnricher) References(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.refs, s.err
}

type stubRecognizer struct {
	entities []utils.Entity
	err      error
}

func (s stubRecognizer) Recognize(string) ([]utils.Entity, error) {
	return s.entities, s.err
}

// mapEncyclopedia answers lookups from a fixed title to URL table.
type mapEncyclopedia struct {
	pages   map[string]string
	err     error
	queried []string
}

func (m *mapEncyclopedia) Lookup(_ context.Context, title string) (utils.PageInfo, error) {
	m.queried = append(m.queried, title)
	if m.err != nil {
		return utils.PageInfo{}, m.err
	}
	url, ok := m.pages[title]
	return utils.PageInfo{Exists: ok, URL: url}, nil
}
