package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagramFeedback is one user rating of a generated or edited diagram.
// Accumulated feedback drives prompt personalization.
type DiagramFeedback struct {
	ent.Schema
}

func (DiagramFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Feedback UUID"),
		field.String("session_id").
			Default("").
			Comment("Related session UUID, empty for standalone feedback"),
		field.String("user_identifier").
			Default("").
			Comment("Whose feedback this is; drives per-user preferences"),
		field.String("kind").
			Comment("Diagram kind the rating applies to"),
		field.Text("diagram_content").
			Comment("The Mermaid source being rated"),
		field.Text("user_prompt").
			Default("").
			Comment("Prompt that produced the diagram, if known"),
		field.Int("rating").
			Range(1, 5),
		field.Enum("feedback_type").
			Values("diagram_quality", "diagram_accuracy", "edit_satisfaction",
				"overall_experience", "feature_request", "bug_report").
			Default("diagram_quality"),
		field.Text("comment").
			Default(""),
		field.Text("improvement_suggestions").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (DiagramFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_identifier"),
		index.Fields("kind"),
		index.Fields("rating"),
		index.Fields("created_at"),
	}
}
