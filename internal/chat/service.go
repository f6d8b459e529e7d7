// Package chat runs conversational diagram-editing sessions: each session
// holds a message history plus the current source for every diagram kind
// generated from the opening prompt.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
)

const (
	// contextWindow is how many recent turns are handed to the oracle
	// when editing.
	contextWindow = 5

	// sessionTTL is how long an idle session survives before cleanup.
	sessionTTL = 24 * time.Hour
)

// ErrSessionNotFound is returned for operations on unknown session IDs.
var ErrSessionNotFound = errors.New("chat session not found")

// Service ties session storage to diagram generation.
type Service struct {
	sessions store.SessionRepo
	gen      *diagramgen.Service
}

// NewService creates a chat service.
func NewService(sessions store.SessionRepo, gen *diagramgen.Service) *Service {
	return &Service{sessions: sessions, gen: gen}
}

// StartResult is the outcome of opening a session.
type StartResult struct {
	SessionID string
	Diagrams  map[mermaid.Kind]diagramgen.Outcome
}

// Start creates a session and generates its initial diagrams. All kinds
// are generated concurrently; a generation fault on any kind aborts the
// whole start and no session is created.
func (s *Service) Start(ctx context.Context, prompt string, kinds []mermaid.Kind) (*StartResult, error) {
	if len(kinds) == 0 {
		return nil, errors.New("at least one diagram kind is required")
	}

	outcomes, err := s.gen.GenerateAll(ctx, kinds, prompt, "")
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	if _, err := s.sessions.Create(ctx, sessionID, prompt); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	note := "Created diagrams for: " + strings.Join(names, ", ")
	if err := s.sessions.AppendMessage(ctx, sessionID, "system", note); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	for kind, outcome := range outcomes {
		if _, err := s.sessions.UpsertDiagram(ctx, sessionID, string(kind), outcome.Text); err != nil {
			return nil, fmt.Errorf("store %s diagram: %w", kind, err)
		}
	}

	return &StartResult{SessionID: sessionID, Diagrams: outcomes}, nil
}

// MessageResult is the outcome of applying one edit message.
type MessageResult struct {
	SessionID string
	Response  string

	// Updated holds the edit outcome per kind the message touched.
	Updated map[mermaid.Kind]diagramgen.Outcome

	// Faults holds per-kind oracle failures. A faulted kind keeps its
	// previous diagram source.
	Faults map[mermaid.Kind]error

	// All is the current source of every diagram after the edits.
	All map[mermaid.Kind]string
}

// SendMessage applies an edit instruction to the targeted diagrams, or to
// every diagram in the session when targets is empty. Each edited result
// runs through validation and correction before it is stored; a kind whose
// edit faults keeps its previous source.
func (s *Service) SendMessage(ctx context.Context, sessionID, message string, targets []mermaid.Kind) (*MessageResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	if err := s.sessions.AppendMessage(ctx, sessionID, "user", message); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		return nil, err
	}

	current, err := s.currentDiagrams(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		for kind := range current {
			targets = append(targets, kind)
		}
	}

	recent, err := s.sessions.RecentMessages(ctx, sessionID, contextWindow)
	if err != nil {
		return nil, err
	}
	contextLines := make([]string, len(recent))
	for i, msg := range recent {
		contextLines[i] = msg.Content
	}

	result := &MessageResult{
		SessionID: sessionID,
		Updated:   make(map[mermaid.Kind]diagramgen.Outcome),
		Faults:    make(map[mermaid.Kind]error),
	}
	for _, kind := range targets {
		source, ok := current[kind]
		if !ok {
			continue
		}

		outcome, err := s.gen.Edit(ctx, kind, source, message, contextLines, sessionID)
		if err != nil {
			result.Faults[kind] = err
			continue
		}
		if _, err := s.sessions.UpsertDiagram(ctx, sessionID, string(kind), outcome.Text); err != nil {
			return nil, fmt.Errorf("store %s diagram: %w", kind, err)
		}
		result.Updated[kind] = outcome
	}

	result.Response = fmt.Sprintf("Updated %d diagram(s) based on your request.", len(result.Updated))
	if err := s.sessions.AppendMessage(ctx, sessionID, "assistant", result.Response); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		return nil, err
	}

	result.All, err = s.currentDiagrams(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History is a session's full conversation and diagram state.
type History struct {
	Session  store.Session
	Messages []store.Message
	Diagrams []store.Diagram
}

// History returns the complete record of a session.
func (s *Service) History(ctx context.Context, sessionID string) (*History, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := s.sessions.Messages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	diagrams, err := s.sessions.Diagrams(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &History{Session: *sess, Messages: messages, Diagrams: diagrams}, nil
}

// List returns sessions ordered by most recent activity.
func (s *Service) List(ctx context.Context, limit int) ([]store.Session, error) {
	return s.sessions.List(ctx, limit)
}

// Delete removes a session and everything under it.
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CleanupExpired removes sessions idle for longer than the TTL and
// returns how many were removed.
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	return s.sessions.DeleteInactiveSince(ctx, time.Now().Add(-sessionTTL))
}

func (s *Service) currentDiagrams(ctx context.Context, sessionID string) (map[mermaid.Kind]string, error) {
	diagrams, err := s.sessions.Diagrams(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make(map[mermaid.Kind]string, len(diagrams))
	for _, d := range diagrams {
		out[mermaid.Kind(d.Kind)] = d.Source
	}
	return out, nil
}
