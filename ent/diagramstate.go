// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
)

// DiagramState is the model entity for the DiagramState schema.
type DiagramState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning session UUID
	SessionID string `json:"session_id,omitempty"`
	// Canonical diagram kind token, e.g. sequenceDiagram
	Kind string `json:"kind,omitempty"`
	// Current Mermaid source
	Source string `json:"source,omitempty"`
	// Incremented on every successful edit
	Version int `json:"version,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiagramStateQuery when eager-loading is set.
	Edges        DiagramStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiagramStateEdges holds the relations/edges for other nodes in the graph.
type DiagramStateEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiagramStateEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagramState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagramstate.FieldID, diagramstate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case diagramstate.FieldSessionID, diagramstate.FieldKind, diagramstate.FieldSource:
			values[i] = new(sql.NullString)
		case diagramstate.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagramState fields.
func (_m *DiagramState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagramstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagramstate.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagramstate.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case diagramstate.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case diagramstate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case diagramstate.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagramState.
// This includes values selected through modifiers, order, etc.
func (_m *DiagramState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DiagramState entity.
func (_m *DiagramState) QuerySession() *ChatSessionQuery {
	return NewDiagramStateClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DiagramState.
// Note that you need to call DiagramState.Unwrap() before calling this method if this DiagramState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagramState) Update() *DiagramStateUpdateOne {
	return NewDiagramStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagramState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagramState) Unwrap() *DiagramState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagramState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagramState) String() string {
	var builder strings.Builder
	builder.WriteString("DiagramState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiagramStates is a parsable slice of DiagramState.
type DiagramStates []*DiagramState
