// Code generated by ent, DO NOT EDIT.

package chatsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/diagen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldID, id))
}

// OriginalPrompt applies equality check predicate on the "original_prompt" field. It's identical to OriginalPromptEQ.
func OriginalPrompt(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldOriginalPrompt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldCreatedAt, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldLastActivity, v))
}

// OriginalPromptEQ applies the EQ predicate on the "original_prompt" field.
func OriginalPromptEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldOriginalPrompt, v))
}

// OriginalPromptNEQ applies the NEQ predicate on the "original_prompt" field.
func OriginalPromptNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldOriginalPrompt, v))
}

// OriginalPromptIn applies the In predicate on the "original_prompt" field.
func OriginalPromptIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldOriginalPrompt, vs...))
}

// OriginalPromptNotIn applies the NotIn predicate on the "original_prompt" field.
func OriginalPromptNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldOriginalPrompt, vs...))
}

// OriginalPromptGT applies the GT predicate on the "original_prompt" field.
func OriginalPromptGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldOriginalPrompt, v))
}

// OriginalPromptGTE applies the GTE predicate on the "original_prompt" field.
func OriginalPromptGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldOriginalPrompt, v))
}

// OriginalPromptLT applies the LT predicate on the "original_prompt" field.
func OriginalPromptLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldOriginalPrompt, v))
}

// OriginalPromptLTE applies the LTE predicate on the "original_prompt" field.
func OriginalPromptLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldOriginalPrompt, v))
}

// OriginalPromptContains applies the Contains predicate on the "original_prompt" field.
func OriginalPromptContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldOriginalPrompt, v))
}

// OriginalPromptHasPrefix applies the HasPrefix predicate on the "original_prompt" field.
func OriginalPromptHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldOriginalPrompt, v))
}

// OriginalPromptHasSuffix applies the HasSuffix predicate on the "original_prompt" field.
func OriginalPromptHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldOriginalPrompt, v))
}

// OriginalPromptEqualFold applies the EqualFold predicate on the "original_prompt" field.
func OriginalPromptEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldOriginalPrompt, v))
}

// OriginalPromptContainsFold applies the ContainsFold predicate on the "original_prompt" field.
func OriginalPromptContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldOriginalPrompt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldCreatedAt, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldLastActivity, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.ChatSession {
	return predicate.ChatSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.ChatSession {
	return predicate.ChatSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDiagrams applies the HasEdge predicate on the "diagrams" edge.
func HasDiagrams() predicate.ChatSession {
	return predicate.ChatSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DiagramsTable, DiagramsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDiagramsWith applies the HasEdge predicate on the "diagrams" edge with a given conditions (other predicates).
func HasDiagramsWith(preds ...predicate.DiagramState) predicate.ChatSession {
	return predicate.ChatSession(func(s *sql.Selector) {
		step := newDiagramsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.NotPredicates(p))
}
