package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/diagen/ent"
	"github.com/abhisek/diagen/ent/chatmessage"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, id, originalPrompt string) (*Session, error) {
	row, err := r.client.ChatSession.Create().
		SetID(id).
		SetOriginalPrompt(originalPrompt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.ChatSession.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Touch(ctx context.Context, id string) error {
	err := r.client.ChatSession.UpdateOneID(id).
		SetLastActivity(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.deleteChildren(ctx, []string{id}); err != nil {
		return err
	}
	err := r.client.ChatSession.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]Session, error) {
	q := r.client.ChatSession.Query().
		Order(ent.Desc(chatsession.FieldLastActivity))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, *sessionFromRow(row))
	}
	return sessions, nil
}

func (r *sessionRepo) DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := r.client.ChatSession.Query().
		Where(chatsession.LastActivityLT(cutoff)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("find expired sessions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := r.deleteChildren(ctx, ids); err != nil {
		return 0, err
	}

	n, err := r.client.ChatSession.Delete().
		Where(chatsession.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) AppendMessage(ctx context.Context, sessionID, role, content string) error {
	_, err := r.client.ChatMessage.Create().
		SetSessionID(sessionID).
		SetRole(chatmessage.Role(role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (r *sessionRepo) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	return messagesFromRows(rows), nil
}

func (r *sessionRepo) RecentMessages(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Desc(chatmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent messages: %w", err)
	}

	// Reverse back to chronological order.
	msgs := messagesFromRows(rows)
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (r *sessionRepo) UpsertDiagram(ctx context.Context, sessionID, kind, source string) (*Diagram, error) {
	existing, err := r.client.DiagramState.Query().
		Where(diagramstate.SessionID(sessionID), diagramstate.Kind(kind)).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		row, err := r.client.DiagramState.Create().
			SetSessionID(sessionID).
			SetKind(kind).
			SetSource(source).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create diagram state: %w", err)
		}
		return diagramFromRow(row), nil

	case err != nil:
		return nil, fmt.Errorf("query diagram state: %w", err)
	}

	row, err := existing.Update().
		SetSource(source).
		SetVersion(existing.Version + 1).
		SetLastUpdated(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update diagram state: %w", err)
	}
	return diagramFromRow(row), nil
}

func (r *sessionRepo) Diagrams(ctx context.Context, sessionID string) ([]Diagram, error) {
	rows, err := r.client.DiagramState.Query().
		Where(diagramstate.SessionID(sessionID)).
		Order(ent.Asc(diagramstate.FieldKind)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query diagrams: %w", err)
	}

	diagrams := make([]Diagram, 0, len(rows))
	for _, row := range rows {
		diagrams = append(diagrams, *diagramFromRow(row))
	}
	return diagrams, nil
}

func (r *sessionRepo) GetDiagram(ctx context.Context, sessionID, kind string) (*Diagram, error) {
	row, err := r.client.DiagramState.Query().
		Where(diagramstate.SessionID(sessionID), diagramstate.Kind(kind)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get diagram: %w", err)
	}
	return diagramFromRow(row), nil
}

// deleteChildren removes messages and diagram states for the given sessions.
func (r *sessionRepo) deleteChildren(ctx context.Context, sessionIDs []string) error {
	_, err := r.client.ChatMessage.Delete().
		Where(chatmessage.SessionIDIn(sessionIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session messages: %w", err)
	}
	_, err = r.client.DiagramState.Delete().
		Where(diagramstate.SessionIDIn(sessionIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session diagrams: %w", err)
	}
	return nil
}

func sessionFromRow(row *ent.ChatSession) *Session {
	return &Session{
		ID:             row.ID,
		OriginalPrompt: row.OriginalPrompt,
		CreatedAt:      row.CreatedAt,
		LastActivity:   row.LastActivity,
	}
}

func messagesFromRows(rows []*ent.ChatMessage) []Message {
	msgs := make([]Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, Message{
			ID:        row.ID,
			Role:      string(row.Role),
			Content:   row.Content,
			Timestamp: row.Timestamp,
		})
	}
	return msgs
}

func diagramFromRow(row *ent.DiagramState) *Diagram {
	return &Diagram{
		ID:          row.ID,
		SessionID:   row.SessionID,
		Kind:        row.Kind,
		Source:      row.Source,
		Version:     row.Version,
		LastUpdated: row.LastUpdated,
	}
}
