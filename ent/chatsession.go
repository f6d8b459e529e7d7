// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/chatsession"
)

// ChatSession is the model entity for the ChatSession schema.
type ChatSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at session creation
	ID string `json:"id,omitempty"`
	// The prompt that seeded the session's diagrams
	OriginalPrompt string `json:"original_prompt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Bumped on every message; drives TTL cleanup
	LastActivity time.Time `json:"last_activity,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatSessionQuery when eager-loading is set.
	Edges        ChatSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatSessionEdges holds the relations/edges for other nodes in the graph.
type ChatSessionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// Diagrams holds the value of the diagrams edge.
	Diagrams []*DiagramState `json:"diagrams,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ChatSessionEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// DiagramsOrErr returns the Diagrams value or an error if the edge
// was not loaded in eager-loading.
func (e ChatSessionEdges) DiagramsOrErr() ([]*DiagramState, error) {
	if e.loadedTypes[1] {
		return e.Diagrams, nil
	}
	return nil, &NotLoadedError{edge: "diagrams"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatsession.FieldID, chatsession.FieldOriginalPrompt:
			values[i] = new(sql.NullString)
		case chatsession.FieldCreatedAt, chatsession.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatSession fields.
func (_m *ChatSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatsession.FieldOriginalPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_prompt", values[i])
			} else if value.Valid {
				_m.OriginalPrompt = value.String
			}
		case chatsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatsession.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatSession.
// This includes values selected through modifiers, order, etc.
func (_m *ChatSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the ChatSession entity.
func (_m *ChatSession) QueryMessages() *ChatMessageQuery {
	return NewChatSessionClient(_m.config).QueryMessages(_m)
}

// QueryDiagrams queries the "diagrams" edge of the ChatSession entity.
func (_m *ChatSession) QueryDiagrams() *DiagramStateQuery {
	return NewChatSessionClient(_m.config).QueryDiagrams(_m)
}

// Update returns a builder for updating this ChatSession.
// Note that you need to call ChatSession.Unwrap() before calling this method if this ChatSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatSession) Update() *ChatSessionUpdateOne {
	return NewChatSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatSession) Unwrap() *ChatSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatSession) String() string {
	var builder strings.Builder
	builder.WriteString("ChatSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_prompt=")
	builder.WriteString(_m.OriginalPrompt)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatSessions is a parsable slice of ChatSession.
type ChatSessions []*ChatSession
