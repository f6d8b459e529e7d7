package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserPreference is the per-user profile derived from feedback history.
// Recomputed as new feedback arrives, never edited directly by the user.
type UserPreference struct {
	ent.Schema
}

func (UserPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_identifier").
			Unique(),
		field.String("preferred_detail_level").
			Default("medium").
			Comment("low, medium or high"),
		field.JSON("favorite_kinds", []string{}).
			Optional().
			Comment("Diagram kinds the user rates highly"),
		field.JSON("common_complaints", []string{}).
			Optional().
			Comment("Recurring themes from low-rated feedback"),
		field.JSON("improvement_focus_areas", []string{}).
			Optional(),
		field.Int("feedback_count").
			Default(0),
		field.Float("average_rating").
			Default(0),
		field.Time("last_updated").
			Default(time.Now),
	}
}

func (UserPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_identifier"),
	}
}
