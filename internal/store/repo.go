package store

import (
	"context"
	"time"
)

// Session is one conversational diagram-editing session.
type Session struct {
	ID             string
	OriginalPrompt string
	CreatedAt      time.Time
	LastActivity   time.Time
}

// Message is one conversation turn within a session.
type Message struct {
	ID        int
	Role      string
	Content   string
	Timestamp time.Time
}

// Diagram is the current source for one diagram kind within a session.
type Diagram struct {
	ID          int
	SessionID   string
	Kind        string
	Source      string
	Version     int
	LastUpdated time.Time
}

// SessionRepo manages chat sessions, their messages and diagram states.
type SessionRepo interface {
	// Create stores a new session under the given UUID.
	Create(ctx context.Context, id, originalPrompt string) (*Session, error)

	// Get returns a session, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Touch bumps the session's last_activity to now.
	Touch(ctx context.Context, id string) error

	// Delete removes a session along with its messages and diagrams.
	Delete(ctx context.Context, id string) error

	// List returns sessions ordered by most recent activity.
	List(ctx context.Context, limit int) ([]Session, error)

	// DeleteInactiveSince removes sessions whose last activity is before
	// cutoff. Returns the number of sessions removed.
	DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int, error)

	// AppendMessage records one conversation turn.
	AppendMessage(ctx context.Context, sessionID, role, content string) error

	// Messages returns all turns for a session in chronological order.
	Messages(ctx context.Context, sessionID string) ([]Message, error)

	// RecentMessages returns the last limit turns in chronological order.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)

	// UpsertDiagram stores the diagram source for (session, kind),
	// incrementing the version when the row already exists.
	UpsertDiagram(ctx context.Context, sessionID, kind, source string) (*Diagram, error)

	// Diagrams returns all current diagram states for a session.
	Diagrams(ctx context.Context, sessionID string) ([]Diagram, error)

	// GetDiagram returns one diagram state, or nil if absent.
	GetDiagram(ctx context.Context, sessionID, kind string) (*Diagram, error)
}

// DiagramFeedbackData captures one user rating of a diagram.
type DiagramFeedbackData struct {
	ID                     string
	SessionID              string
	UserIdentifier         string
	Kind                   string
	DiagramContent         string
	UserPrompt             string
	Rating                 int
	FeedbackType           string
	Comment                string
	ImprovementSuggestions string
}

// FeedbackItem is one stored feedback record.
type FeedbackItem struct {
	DiagramFeedbackData
	CreatedAt time.Time
}

// FeedbackSummary aggregates all stored feedback.
type FeedbackSummary struct {
	Total              int
	AverageRating      float64
	RatingDistribution map[int]int
}

// Preferences is the per-user profile derived from feedback history.
type Preferences struct {
	UserIdentifier        string
	PreferredDetailLevel  string
	FavoriteKinds         []string
	CommonComplaints      []string
	ImprovementFocusAreas []string
	FeedbackCount         int
	AverageRating         float64
	LastUpdated           time.Time
}

// FeedbackRepo manages diagram feedback and derived user preferences.
type FeedbackRepo interface {
	// Save stores one feedback record.
	Save(ctx context.Context, data DiagramFeedbackData) error

	// ListByUser returns a user's feedback, newest first.
	ListByUser(ctx context.Context, user string, limit int) ([]FeedbackItem, error)

	// ListByKind returns feedback for one diagram kind, newest first.
	ListByKind(ctx context.Context, kind string, limit int) ([]FeedbackItem, error)

	// Summary aggregates all stored feedback.
	Summary(ctx context.Context) (*FeedbackSummary, error)

	// Preferences returns a user's derived profile, or nil if none exists.
	Preferences(ctx context.Context, user string) (*Preferences, error)

	// SavePreferences upserts a user's derived profile.
	SavePreferences(ctx context.Context, p *Preferences) error
}

// QueryOpts configures LLM event queries.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	Purpose    string // filter by purpose label
	FailedOnly bool   // only failed requests
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is one stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
