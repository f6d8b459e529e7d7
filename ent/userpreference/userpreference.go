// Code generated by ent, DO NOT EDIT.

package userpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userpreference type in the database.
	Label = "user_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserIdentifier holds the string denoting the user_identifier field in the database.
	FieldUserIdentifier = "user_identifier"
	// FieldPreferredDetailLevel holds the string denoting the preferred_detail_level field in the database.
	FieldPreferredDetailLevel = "preferred_detail_level"
	// FieldFavoriteKinds holds the string denoting the favorite_kinds field in the database.
	FieldFavoriteKinds = "favorite_kinds"
	// FieldCommonComplaints holds the string denoting the common_complaints field in the database.
	FieldCommonComplaints = "common_complaints"
	// FieldImprovementFocusAreas holds the string denoting the improvement_focus_areas field in the database.
	FieldImprovementFocusAreas = "improvement_focus_areas"
	// FieldFeedbackCount holds the string denoting the feedback_count field in the database.
	FieldFeedbackCount = "feedback_count"
	// FieldAverageRating holds the string denoting the average_rating field in the database.
	FieldAverageRating = "average_rating"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the userpreference in the database.
	Table = "user_preferences"
)

// Columns holds all SQL columns for userpreference fields.
var Columns = []string{
	FieldID,
	FieldUserIdentifier,
	FieldPreferredDetailLevel,
	FieldFavoriteKinds,
	FieldCommonComplaints,
	FieldImprovementFocusAreas,
	FieldFeedbackCount,
	FieldAverageRating,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPreferredDetailLevel holds the default value on creation for the "preferred_detail_level" field.
	DefaultPreferredDetailLevel string
	// DefaultFeedbackCount holds the default value on creation for the "feedback_count" field.
	DefaultFeedbackCount int
	// DefaultAverageRating holds the default value on creation for the "average_rating" field.
	DefaultAverageRating float64
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the UserPreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserIdentifier orders the results by the user_identifier field.
func ByUserIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserIdentifier, opts...).ToFunc()
}

// ByPreferredDetailLevel orders the results by the preferred_detail_level field.
func ByPreferredDetailLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredDetailLevel, opts...).ToFunc()
}

// ByFeedbackCount orders the results by the feedback_count field.
func ByFeedbackCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackCount, opts...).ToFunc()
}

// ByAverageRating orders the results by the average_rating field.
func ByAverageRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageRating, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
