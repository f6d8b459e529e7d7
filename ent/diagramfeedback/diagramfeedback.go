// Code generated by ent, DO NOT EDIT.

package diagramfeedback

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagramfeedback type in the database.
	Label = "diagram_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserIdentifier holds the string denoting the user_identifier field in the database.
	FieldUserIdentifier = "user_identifier"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldDiagramContent holds the string denoting the diagram_content field in the database.
	FieldDiagramContent = "diagram_content"
	// FieldUserPrompt holds the string denoting the user_prompt field in the database.
	FieldUserPrompt = "user_prompt"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldFeedbackType holds the string denoting the feedback_type field in the database.
	FieldFeedbackType = "feedback_type"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldImprovementSuggestions holds the string denoting the improvement_suggestions field in the database.
	FieldImprovementSuggestions = "improvement_suggestions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the diagramfeedback in the database.
	Table = "diagram_feedbacks"
)

// Columns holds all SQL columns for diagramfeedback fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserIdentifier,
	FieldKind,
	FieldDiagramContent,
	FieldUserPrompt,
	FieldRating,
	FieldFeedbackType,
	FieldComment,
	FieldImprovementSuggestions,
	FieldCreatedAt,
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
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// DefaultUserIdentifier holds the default value on creation for the "user_identifier" field.
	DefaultUserIdentifier string
	// DefaultUserPrompt holds the default value on creation for the "user_prompt" field.
	DefaultUserPrompt string
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
	// DefaultComment holds the default value on creation for the "comment" field.
	DefaultComment string
	// DefaultImprovementSuggestions holds the default value on creation for the "improvement_suggestions" field.
	DefaultImprovementSuggestions string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// FeedbackType defines the type for the "feedback_type" enum field.
type FeedbackType string

// FeedbackTypeDiagramQuality is the default value of the FeedbackType enum.
const DefaultFeedbackType = FeedbackTypeDiagramQuality

// FeedbackType values.
const (
	FeedbackTypeDiagramQuality    FeedbackType = "diagram_quality"
	FeedbackTypeDiagramAccuracy   FeedbackType = "diagram_accuracy"
	FeedbackTypeEditSatisfaction  FeedbackType = "edit_satisfaction"
	FeedbackTypeOverallExperience FeedbackType = "overall_experience"
	FeedbackTypeFeatureRequest    FeedbackType = "feature_request"
	FeedbackTypeBugReport         FeedbackType = "bug_report"
)

func (ft FeedbackType) String() string {
	return string(ft)
}

// FeedbackTypeValidator is a validator for the "feedback_type" field enum values. It is called by the builders before save.
func FeedbackTypeValidator(ft FeedbackType) error {
	switch ft {
	case FeedbackTypeDiagramQuality, FeedbackTypeDiagramAccuracy, FeedbackTypeEditSatisfaction, FeedbackTypeOverallExperience, FeedbackTypeFeatureRequest, FeedbackTypeBugReport:
		return nil
	default:
		return fmt.Errorf("diagramfeedback: invalid enum value for feedback_type field: %q", ft)
	}
}

// OrderOption defines the ordering options for the DiagramFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserIdentifier orders the results by the user_identifier field.
func ByUserIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserIdentifier, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByDiagramContent orders the results by the diagram_content field.
func ByDiagramContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagramContent, opts...).ToFunc()
}

// ByUserPrompt orders the results by the user_prompt field.
func ByUserPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserPrompt, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByFeedbackType orders the results by the feedback_type field.
func ByFeedbackType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackType, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByImprovementSuggestions orders the results by the improvement_suggestions field.
func ByImprovementSuggestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementSuggestions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
