// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// DiagramFeedback is the predicate function for diagramfeedback builders.
type DiagramFeedback func(*sql.Selector)

// DiagramState is the predicate function for diagramstate builders.
type DiagramState func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// UserPreference is the predicate function for userpreference builders.
type UserPreference func(*sql.Selector)
