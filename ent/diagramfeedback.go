// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/diagramfeedback"
)

// DiagramFeedback is the model entity for the DiagramFeedback schema.
type DiagramFeedback struct {
	config `json:"-"`
	// ID of the ent.
	// Feedback UUID
	ID string `json:"id,omitempty"`
	// Related session UUID, empty for standalone feedback
	SessionID string `json:"session_id,omitempty"`
	// Whose feedback this is; drives per-user preferences
	UserIdentifier string `json:"user_identifier,omitempty"`
	// Diagram kind the rating applies to
	Kind string `json:"kind,omitempty"`
	// The Mermaid source being rated
	DiagramContent string `json:"diagram_content,omitempty"`
	// Prompt that produced the diagram, if known
	UserPrompt string `json:"user_prompt,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating int `json:"rating,omitempty"`
	// FeedbackType holds the value of the "feedback_type" field.
	FeedbackType diagramfeedback.FeedbackType `json:"feedback_type,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// ImprovementSuggestions holds the value of the "improvement_suggestions" field.
	ImprovementSuggestions string `json:"improvement_suggestions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagramFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagramfeedback.FieldRating:
			values[i] = new(sql.NullInt64)
		case diagramfeedback.FieldID, diagramfeedback.FieldSessionID, diagramfeedback.FieldUserIdentifier, diagramfeedback.FieldKind, diagramfeedback.FieldDiagramContent, diagramfeedback.FieldUserPrompt, diagramfeedback.FieldFeedbackType, diagramfeedback.FieldComment, diagramfeedback.FieldImprovementSuggestions:
			values[i] = new(sql.NullString)
		case diagramfeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagramFeedback fields.
func (_m *DiagramFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagramfeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case diagramfeedback.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagramfeedback.FieldUserIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_identifier", values[i])
			} else if value.Valid {
				_m.UserIdentifier = value.String
			}
		case diagramfeedback.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case diagramfeedback.FieldDiagramContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagram_content", values[i])
			} else if value.Valid {
				_m.DiagramContent = value.String
			}
		case diagramfeedback.FieldUserPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_prompt", values[i])
			} else if value.Valid {
				_m.UserPrompt = value.String
			}
		case diagramfeedback.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case diagramfeedback.FieldFeedbackType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_type", values[i])
			} else if value.Valid {
				_m.FeedbackType = diagramfeedback.FeedbackType(value.String)
			}
		case diagramfeedback.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case diagramfeedback.FieldImprovementSuggestions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_suggestions", values[i])
			} else if value.Valid {
				_m.ImprovementSuggestions = value.String
			}
		case diagramfeedback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagramFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *DiagramFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagramFeedback.
// Note that you need to call DiagramFeedback.Unwrap() before calling this method if this DiagramFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagramFeedback) Update() *DiagramFeedbackUpdateOne {
	return NewDiagramFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagramFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagramFeedback) Unwrap() *DiagramFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagramFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagramFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("DiagramFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_identifier=")
	builder.WriteString(_m.UserIdentifier)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("diagram_content=")
	builder.WriteString(_m.DiagramContent)
	builder.WriteString(", ")
	builder.WriteString("user_prompt=")
	builder.WriteString(_m.UserPrompt)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("feedback_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackType))
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("improvement_suggestions=")
	builder.WriteString(_m.ImprovementSuggestions)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiagramFeedbacks is a parsable slice of DiagramFeedback.
type DiagramFeedbacks []*DiagramFeedback
