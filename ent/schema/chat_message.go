package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one turn in a session's conversation.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Owning session UUID"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
