package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession is one conversational diagram-editing session.
// Sessions are keyed by a UUID assigned at creation and expire after a TTL.
type ChatSession struct {
	ent.Schema
}

func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at session creation"),
		field.Text("original_prompt").
			Default("").
			Comment("The prompt that seeded the session's diagrams"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now).
			Comment("Bumped on every message; drives TTL cleanup"),
	}
}

func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type),
		edge.To("diagrams", DiagramState.Type),
	}
}

func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_activity"),
	}
}
