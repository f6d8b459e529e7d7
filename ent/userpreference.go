// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/userpreference"
)

// UserPreference is the model entity for the UserPreference schema.
type UserPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserIdentifier holds the value of the "user_identifier" field.
	UserIdentifier string `json:"user_identifier,omitempty"`
	// low, medium or high
	PreferredDetailLevel string `json:"preferred_detail_level,omitempty"`
	// Diagram kinds the user rates highly
	FavoriteKinds []string `json:"favorite_kinds,omitempty"`
	// Recurring themes from low-rated feedback
	CommonComplaints []string `json:"common_complaints,omitempty"`
	// ImprovementFocusAreas holds the value of the "improvement_focus_areas" field.
	ImprovementFocusAreas []string `json:"improvement_focus_areas,omitempty"`
	// FeedbackCount holds the value of the "feedback_count" field.
	FeedbackCount int `json:"feedback_count,omitempty"`
	// AverageRating holds the value of the "average_rating" field.
	AverageRating float64 `json:"average_rating,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userpreference.FieldFavoriteKinds, userpreference.FieldCommonComplaints, userpreference.FieldImprovementFocusAreas:
			values[i] = new([]byte)
		case userpreference.FieldAverageRating:
			values[i] = new(sql.NullFloat64)
		case userpreference.FieldID, userpreference.FieldFeedbackCount:
			values[i] = new(sql.NullInt64)
		case userpreference.FieldUserIdentifier, userpreference.FieldPreferredDetailLevel:
			values[i] = new(sql.NullString)
		case userpreference.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserPreference fields.
func (_m *UserPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userpreference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userpreference.FieldUserIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_identifier", values[i])
			} else if value.Valid {
				_m.UserIdentifier = value.String
			}
		case userpreference.FieldPreferredDetailLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_detail_level", values[i])
			} else if value.Valid {
				_m.PreferredDetailLevel = value.String
			}
		case userpreference.FieldFavoriteKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field favorite_kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FavoriteKinds); err != nil {
					return fmt.Errorf("unmarshal field favorite_kinds: %w", err)
				}
			}
		case userpreference.FieldCommonComplaints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field common_complaints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommonComplaints); err != nil {
					return fmt.Errorf("unmarshal field common_complaints: %w", err)
				}
			}
		case userpreference.FieldImprovementFocusAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_focus_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImprovementFocusAreas); err != nil {
					return fmt.Errorf("unmarshal field improvement_focus_areas: %w", err)
				}
			}
		case userpreference.FieldFeedbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_count", values[i])
			} else if value.Valid {
				_m.FeedbackCount = int(value.Int64)
			}
		case userpreference.FieldAverageRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_rating", values[i])
			} else if value.Valid {
				_m.AverageRating = value.Float64
			}
		case userpreference.FieldLastUpdated:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserPreference.
// This includes values selected through modifiers, order, etc.
func (_m *UserPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserPreference.
// Note that you need to call UserPreference.Unwrap() before calling this method if this UserPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserPreference) Update() *UserPreferenceUpdateOne {
	return NewUserPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserPreference) Unwrap() *UserPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserPreference) String() string {
	var builder strings.Builder
	builder.WriteString("UserPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_identifier=")
	builder.WriteString(_m.UserIdentifier)
	builder.WriteString(", ")
	builder.WriteString("preferred_detail_level=")
	builder.WriteString(_m.PreferredDetailLevel)
	builder.WriteString(", ")
	builder.WriteString("favorite_kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.FavoriteKinds))
	builder.WriteString(", ")
	builder.WriteString("common_complaints=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommonComplaints))
	builder.WriteString(", ")
	builder.WriteString("improvement_focus_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementFocusAreas))
	builder.WriteString(", ")
	builder.WriteString("feedback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackCount))
	builder.WriteString(", ")
	builder.WriteString("average_rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageRating))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserPreferences is a parsable slice of UserPreference.
type UserPreferences []*UserPreference
