// Code generated by ent, DO NOT EDIT.

package diagramfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldSessionID, v))
}

// UserIdentifier applies equality check predicate on the "user_identifier" field. It's identical to UserIdentifierEQ.
func UserIdentifier(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldUserIdentifier, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldKind, v))
}

// DiagramContent applies equality check predicate on the "diagram_content" field. It's identical to DiagramContentEQ.
func DiagramContent(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldDiagramContent, v))
}

// UserPrompt applies equality check predicate on the "user_prompt" field. It's identical to UserPromptEQ.
func UserPrompt(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldUserPrompt, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldRating, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldComment, v))
}

// ImprovementSuggestions applies equality check predicate on the "improvement_suggestions" field. It's identical to ImprovementSuggestionsEQ.
func ImprovementSuggestions(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldImprovementSuggestions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIdentifierEQ applies the EQ predicate on the "user_identifier" field.
func UserIdentifierEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldUserIdentifier, v))
}

// UserIdentifierNEQ applies the NEQ predicate on the "user_identifier" field.
func UserIdentifierNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldUserIdentifier, v))
}

// UserIdentifierIn applies the In predicate on the "user_identifier" field.
func UserIdentifierIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldUserIdentifier, vs...))
}

// UserIdentifierNotIn applies the NotIn predicate on the "user_identifier" field.
func UserIdentifierNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldUserIdentifier, vs...))
}

// UserIdentifierGT applies the GT predicate on the "user_identifier" field.
func UserIdentifierGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldUserIdentifier, v))
}

// UserIdentifierGTE applies the GTE predicate on the "user_identifier" field.
func UserIdentifierGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldUserIdentifier, v))
}

// UserIdentifierLT applies the LT predicate on the "user_identifier" field.
func UserIdentifierLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldUserIdentifier, v))
}

// UserIdentifierLTE applies the LTE predicate on the "user_identifier" field.
func UserIdentifierLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldUserIdentifier, v))
}

// UserIdentifierContains applies the Contains predicate on the "user_identifier" field.
func UserIdentifierContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldUserIdentifier, v))
}

// UserIdentifierHasPrefix applies the HasPrefix predicate on the "user_identifier" field.
func UserIdentifierHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldUserIdentifier, v))
}

// UserIdentifierHasSuffix applies the HasSuffix predicate on the "user_identifier" field.
func UserIdentifierHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldUserIdentifier, v))
}

// UserIdentifierEqualFold applies the EqualFold predicate on the "user_identifier" field.
func UserIdentifierEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldUserIdentifier, v))
}

// UserIdentifierContainsFold applies the ContainsFold predicate on the "user_identifier" field.
func UserIdentifierContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldUserIdentifier, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldKind, v))
}

// DiagramContentEQ applies the EQ predicate on the "diagram_content" field.
func DiagramContentEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldDiagramContent, v))
}

// DiagramContentNEQ applies the NEQ predicate on the "diagram_content" field.
func DiagramContentNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldDiagramContent, v))
}

// DiagramContentIn applies the In predicate on the "diagram_content" field.
func DiagramContentIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldDiagramContent, vs...))
}

// DiagramContentNotIn applies the NotIn predicate on the "diagram_content" field.
func DiagramContentNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldDiagramContent, vs...))
}

// DiagramContentGT applies the GT predicate on the "diagram_content" field.
func DiagramContentGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldDiagramContent, v))
}

// DiagramContentGTE applies the GTE predicate on the "diagram_content" field.
func DiagramContentGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldDiagramContent, v))
}

// DiagramContentLT applies the LT predicate on the "diagram_content" field.
func DiagramContentLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldDiagramContent, v))
}

// DiagramContentLTE applies the LTE predicate on the "diagram_content" field.
func DiagramContentLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldDiagramContent, v))
}

// DiagramContentContains applies the Contains predicate on the "diagram_content" field.
func DiagramContentContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldDiagramContent, v))
}

// DiagramContentHasPrefix applies the HasPrefix predicate on the "diagram_content" field.
func DiagramContentHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldDiagramContent, v))
}

// DiagramContentHasSuffix applies the HasSuffix predicate on the "diagram_content" field.
func DiagramContentHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldDiagramContent, v))
}

// DiagramContentEqualFold applies the EqualFold predicate on the "diagram_content" field.
func DiagramContentEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldDiagramContent, v))
}

// DiagramContentContainsFold applies the ContainsFold predicate on the "diagram_content" field.
func DiagramContentContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldDiagramContent, v))
}

// UserPromptEQ applies the EQ predicate on the "user_prompt" field.
func UserPromptEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldUserPrompt, v))
}

// UserPromptNEQ applies the NEQ predicate on the "user_prompt" field.
func UserPromptNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldUserPrompt, v))
}

// UserPromptIn applies the In predicate on the "user_prompt" field.
func UserPromptIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldUserPrompt, vs...))
}

// UserPromptNotIn applies the NotIn predicate on the "user_prompt" field.
func UserPromptNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldUserPrompt, vs...))
}

// UserPromptGT applies the GT predicate on the "user_prompt" field.
func UserPromptGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldUserPrompt, v))
}

// UserPromptGTE applies the GTE predicate on the "user_prompt" field.
func UserPromptGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldUserPrompt, v))
}

// UserPromptLT applies the LT predicate on the "user_prompt" field.
func UserPromptLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldUserPrompt, v))
}

// UserPromptLTE applies the LTE predicate on the "user_prompt" field.
func UserPromptLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldUserPrompt, v))
}

// UserPromptContains applies the Contains predicate on the "user_prompt" field.
func UserPromptContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldUserPrompt, v))
}

// UserPromptHasPrefix applies the HasPrefix predicate on the "user_prompt" field.
func UserPromptHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldUserPrompt, v))
}

// UserPromptHasSuffix applies the HasSuffix predicate on the "user_prompt" field.
func UserPromptHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldUserPrompt, v))
}

// UserPromptEqualFold applies the EqualFold predicate on the "user_prompt" field.
func UserPromptEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldUserPrompt, v))
}

// UserPromptContainsFold applies the ContainsFold predicate on the "user_prompt" field.
func UserPromptContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldUserPrompt, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldRating, v))
}

// FeedbackTypeEQ applies the EQ predicate on the "feedback_type" field.
func FeedbackTypeEQ(v FeedbackType) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// FeedbackTypeNEQ applies the NEQ predicate on the "feedback_type" field.
func FeedbackTypeNEQ(v FeedbackType) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldFeedbackType, v))
}

// FeedbackTypeIn applies the In predicate on the "feedback_type" field.
func FeedbackTypeIn(vs ...FeedbackType) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldFeedbackType, vs...))
}

// FeedbackTypeNotIn applies the NotIn predicate on the "feedback_type" field.
func FeedbackTypeNotIn(vs ...FeedbackType) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldFeedbackType, vs...))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldComment, v))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldComment, v))
}

// ImprovementSuggestionsEQ applies the EQ predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsNEQ applies the NEQ predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNEQ(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsIn applies the In predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldImprovementSuggestions, vs...))
}

// ImprovementSuggestionsNotIn applies the NotIn predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNotIn(vs ...string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldImprovementSuggestions, vs...))
}

// ImprovementSuggestionsGT applies the GT predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsGT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsGTE applies the GTE predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsGTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsLT applies the LT predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsLT(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsLTE applies the LTE predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsLTE(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsContains applies the Contains predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsContains(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContains(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsHasPrefix applies the HasPrefix predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsHasPrefix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasPrefix(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsHasSuffix applies the HasSuffix predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsHasSuffix(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldHasSuffix(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsEqualFold applies the EqualFold predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsEqualFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEqualFold(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsContainsFold applies the ContainsFold predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsContainsFold(v string) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldContainsFold(FieldImprovementSuggestions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagramFeedback) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagramFeedback) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagramFeedback) predicate.DiagramFeedback {
	return predicate.DiagramFeedback(sql.NotPredicates(p))
}
