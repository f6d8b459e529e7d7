// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4]},
			},
			{
				Name:    "chatmessage_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "original_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_last_activity",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[3]},
			},
		},
	}
	// DiagramFeedbacksColumns holds the columns for the "diagram_feedbacks" table.
	DiagramFeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "user_identifier", Type: field.TypeString, Default: ""},
		{Name: "kind", Type: field.TypeString},
		{Name: "diagram_content", Type: field.TypeString, Size: 2147483647},
		{Name: "user_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "rating", Type: field.TypeInt},
		{Name: "feedback_type", Type: field.TypeEnum, Enums: []string{"diagram_quality", "diagram_accuracy", "edit_satisfaction", "overall_experience", "feature_request", "bug_report"}, Default: "diagram_quality"},
		{Name: "comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "improvement_suggestions", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DiagramFeedbacksTable holds the schema information for the "diagram_feedbacks" table.
	DiagramFeedbacksTable = &schema.Table{
		Name:       "diagram_feedbacks",
		Columns:    DiagramFeedbacksColumns,
		PrimaryKey: []*schema.Column{DiagramFeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagramfeedback_user_identifier",
				Unique:  false,
				Columns: []*schema.Column{DiagramFeedbacksColumns[2]},
			},
			{
				Name:    "diagramfeedback_kind",
				Unique:  false,
				Columns: []*schema.Column{DiagramFeedbacksColumns[3]},
			},
			{
				Name:    "diagramfeedback_rating",
				Unique:  false,
				Columns: []*schema.Column{DiagramFeedbacksColumns[6]},
			},
			{
				Name:    "diagramfeedback_created_at",
				Unique:  false,
				Columns: []*schema.Column{DiagramFeedbacksColumns[10]},
			},
		},
	}
	// DiagramStatesColumns holds the columns for the "diagram_states" table.
	DiagramStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DiagramStatesTable holds the schema information for the "diagram_states" table.
	DiagramStatesTable = &schema.Table{
		Name:       "diagram_states",
		Columns:    DiagramStatesColumns,
		PrimaryKey: []*schema.Column{DiagramStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "diagram_states_chat_sessions_diagrams",
				Columns:    []*schema.Column{DiagramStatesColumns[5]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "diagramstate_session_id_kind",
				Unique:  true,
				Columns: []*schema.Column{DiagramStatesColumns[5], DiagramStatesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// UserPreferencesColumns holds the columns for the "user_preferences" table.
	UserPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_identifier", Type: field.TypeString, Unique: true},
		{Name: "preferred_detail_level", Type: field.TypeString, Default: "medium"},
		{Name: "favorite_kinds", Type: field.TypeJSON, Nullable: true},
		{Name: "common_complaints", Type: field.TypeJSON, Nullable: true},
		{Name: "improvement_focus_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback_count", Type: field.TypeInt, Default: 0},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// UserPreferencesTable holds the schema information for the "user_preferences" table.
	UserPreferencesTable = &schema.Table{
		Name:       "user_preferences",
		Columns:    UserPreferencesColumns,
		PrimaryKey: []*schema.Column{UserPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userpreference_user_identifier",
				Unique:  false,
				Columns: []*schema.Column{UserPreferencesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ChatSessionsTable,
		DiagramFeedbacksTable,
		DiagramStatesTable,
		LlmRequestEventsTable,
		UserPreferencesTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
	DiagramStatesTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
