// Code generated by ent, DO NOT EDIT.

package userpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/diagen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldID, id))
}

// UserIdentifier applies equality check predicate on the "user_identifier" field. It's identical to UserIdentifierEQ.
func UserIdentifier(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUserIdentifier, v))
}

// PreferredDetailLevel applies equality check predicate on the "preferred_detail_level" field. It's identical to PreferredDetailLevelEQ.
func PreferredDetailLevel(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldPreferredDetailLevel, v))
}

// FeedbackCount applies equality check predicate on the "feedback_count" field. It's identical to FeedbackCountEQ.
func FeedbackCount(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldFeedbackCount, v))
}

// AverageRating applies equality check predicate on the "average_rating" field. It's identical to AverageRatingEQ.
func AverageRating(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldAverageRating, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIdentifierEQ applies the EQ predicate on the "user_identifier" field.
func UserIdentifierEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUserIdentifier, v))
}

// UserIdentifierNEQ applies the NEQ predicate on the "user_identifier" field.
func UserIdentifierNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldUserIdentifier, v))
}

// UserIdentifierIn applies the In predicate on the "user_identifier" field.
func UserIdentifierIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldUserIdentifier, vs...))
}

// UserIdentifierNotIn applies the NotIn predicate on the "user_identifier" field.
func UserIdentifierNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldUserIdentifier, vs...))
}

// UserIdentifierGT applies the GT predicate on the "user_identifier" field.
func UserIdentifierGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldUserIdentifier, v))
}

// UserIdentifierGTE applies the GTE predicate on the "user_identifier" field.
func UserIdentifierGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldUserIdentifier, v))
}

// UserIdentifierLT applies the LT predicate on the "user_identifier" field.
func UserIdentifierLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldUserIdentifier, v))
}

// UserIdentifierLTE applies the LTE predicate on the "user_identifier" field.
func UserIdentifierLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldUserIdentifier, v))
}

// UserIdentifierContains applies the Contains predicate on the "user_identifier" field.
func UserIdentifierContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldUserIdentifier, v))
}

// UserIdentifierHasPrefix applies the HasPrefix predicate on the "user_identifier" field.
func UserIdentifierHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldUserIdentifier, v))
}

// UserIdentifierHasSuffix applies the HasSuffix predicate on the "user_identifier" field.
func UserIdentifierHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldUserIdentifier, v))
}

// UserIdentifierEqualFold applies the EqualFold predicate on the "user_identifier" field.
func UserIdentifierEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldUserIdentifier, v))
}

// UserIdentifierContainsFold applies the ContainsFold predicate on the "user_identifier" field.
func UserIdentifierContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldUserIdentifier, v))
}

// PreferredDetailLevelEQ applies the EQ predicate on the "preferred_detail_level" field.
func PreferredDetailLevelEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelNEQ applies the NEQ predicate on the "preferred_detail_level" field.
func PreferredDetailLevelNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelIn applies the In predicate on the "preferred_detail_level" field.
func PreferredDetailLevelIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldPreferredDetailLevel, vs...))
}

// PreferredDetailLevelNotIn applies the NotIn predicate on the "preferred_detail_level" field.
func PreferredDetailLevelNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldPreferredDetailLevel, vs...))
}

// PreferredDetailLevelGT applies the GT predicate on the "preferred_detail_level" field.
func PreferredDetailLevelGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelGTE applies the GTE predicate on the "preferred_detail_level" field.
func PreferredDetailLevelGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelLT applies the LT predicate on the "preferred_detail_level" field.
func PreferredDetailLevelLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelLTE applies the LTE predicate on the "preferred_detail_level" field.
func PreferredDetailLevelLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelContains applies the Contains predicate on the "preferred_detail_level" field.
func PreferredDetailLevelContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelHasPrefix applies the HasPrefix predicate on the "preferred_detail_level" field.
func PreferredDetailLevelHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelHasSuffix applies the HasSuffix predicate on the "preferred_detail_level" field.
func PreferredDetailLevelHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelEqualFold applies the EqualFold predicate on the "preferred_detail_level" field.
func PreferredDetailLevelEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldPreferredDetailLevel, v))
}

// PreferredDetailLevelContainsFold applies the ContainsFold predicate on the "preferred_detail_level" field.
func PreferredDetailLevelContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldPreferredDetailLevel, v))
}

// FavoriteKindsIsNil applies the IsNil predicate on the "favorite_kinds" field.
func FavoriteKindsIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldFavoriteKinds))
}

// FavoriteKindsNotNil applies the NotNil predicate on the "favorite_kinds" field.
func FavoriteKindsNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldFavoriteKinds))
}

// CommonComplaintsIsNil applies the IsNil predicate on the "common_complaints" field.
func CommonComplaintsIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldCommonComplaints))
}

// CommonComplaintsNotNil applies the NotNil predicate on the "common_complaints" field.
func CommonComplaintsNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldCommonComplaints))
}

// ImprovementFocusAreasIsNil applies the IsNil predicate on the "improvement_focus_areas" field.
func ImprovementFocusAreasIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldImprovementFocusAreas))
}

// ImprovementFocusAreasNotNil applies the NotNil predicate on the "improvement_focus_areas" field.
func ImprovementFocusAreasNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldImprovementFocusAreas))
}

// FeedbackCountEQ applies the EQ predicate on the "feedback_count" field.
func FeedbackCountEQ(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldFeedbackCount, v))
}

// FeedbackCountNEQ applies the NEQ predicate on the "feedback_count" field.
func FeedbackCountNEQ(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldFeedbackCount, v))
}

// FeedbackCountIn applies the In predicate on the "feedback_count" field.
func FeedbackCountIn(vs ...int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldFeedbackCount, vs...))
}

// FeedbackCountNotIn applies the NotIn predicate on the "feedback_count" field.
func FeedbackCountNotIn(vs ...int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldFeedbackCount, vs...))
}

// FeedbackCountGT applies the GT predicate on the "feedback_count" field.
func FeedbackCountGT(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldFeedbackCount, v))
}

// FeedbackCountGTE applies the GTE predicate on the "feedback_count" field.
func FeedbackCountGTE(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldFeedbackCount, v))
}

// FeedbackCountLT applies the LT predicate on the "feedback_count" field.
func FeedbackCountLT(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldFeedbackCount, v))
}

// FeedbackCountLTE applies the LTE predicate on the "feedback_count" field.
func FeedbackCountLTE(v int) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldFeedbackCount, v))
}

// AverageRatingEQ applies the EQ predicate on the "average_rating" field.
func AverageRatingEQ(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldAverageRating, v))
}

// AverageRatingNEQ applies the NEQ predicate on the "average_rating" field.
func AverageRatingNEQ(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldAverageRating, v))
}

// AverageRatingIn applies the In predicate on the "average_rating" field.
func AverageRatingIn(vs ...float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldAverageRating, vs...))
}

// AverageRatingNotIn applies the NotIn predicate on the "average_rating" field.
func AverageRatingNotIn(vs ...float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldAverageRating, vs...))
}

// AverageRatingGT applies the GT predicate on the "average_rating" field.
func AverageRatingGT(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldAverageRating, v))
}

// AverageRatingGTE applies the GTE predicate on the "average_rating" field.
func AverageRatingGTE(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldAverageRating, v))
}

// AverageRatingLT applies the LT predicate on the "average_rating" field.
func AverageRatingLT(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldAverageRating, v))
}

// AverageRatingLTE applies the LTE predicate on the "average_rating" field.
func AverageRatingLTE(v float64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldAverageRating, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.NotPredicates(p))
}
