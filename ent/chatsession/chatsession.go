// Code generated by ent, DO NOT EDIT.

package chatsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatsession type in the database.
	Label = "chat_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOriginalPrompt holds the string denoting the original_prompt field in the database.
	FieldOriginalPrompt = "original_prompt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeDiagrams holds the string denoting the diagrams edge name in mutations.
	EdgeDiagrams = "diagrams"
	// Table holds the table name of the chatsession in the database.
	Table = "chat_sessions"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "chat_messages"
	// MessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessagesInverseTable = "chat_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "session_id"
	// DiagramsTable is the table that holds the diagrams relation/edge.
	DiagramsTable = "diagram_states"
	// DiagramsInverseTable is the table name for the DiagramState entity.
	// It exists in this package in order to avoid circular dependency with the "diagramstate" package.
	DiagramsInverseTable = "diagram_states"
	// DiagramsColumn is the table column denoting the diagrams relation/edge.
	DiagramsColumn = "session_id"
)

// Columns holds all SQL columns for chatsession fields.
var Columns = []string{
	FieldID,
	FieldOriginalPrompt,
	FieldCreatedAt,
	FieldLastActivity,
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
	// DefaultOriginalPrompt holds the default value on creation for the "original_prompt" field.
	DefaultOriginalPrompt string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the ChatSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalPrompt orders the results by the original_prompt field.
func ByOriginalPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalPrompt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDiagramsCount orders the results by diagrams count.
func ByDiagramsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDiagramsStep(), opts...)
	}
}

// ByDiagrams orders the results by diagrams terms.
func ByDiagrams(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiagramsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newDiagramsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiagramsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DiagramsTable, DiagramsColumn),
	)
}
