package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagramState is the current Mermaid source for one diagram kind in a
// session. One row per (session, kind); edits bump the version.
type DiagramState struct {
	ent.Schema
}

func (DiagramState) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Owning session UUID"),
		field.String("kind").
			Comment("Canonical diagram kind token, e.g. sequenceDiagram"),
		field.Text("source").
			Comment("Current Mermaid source"),
		field.Int("version").
			Default(1).
			Comment("Incremented on every successful edit"),
		field.Time("last_updated").
			Default(time.Now),
	}
}

func (DiagramState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("diagrams").
			Field("session_id").
			Unique().
			Required(),
	}
}

func (DiagramState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "kind").
			Unique(),
	}
}
