package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Missing session is nil, not an error.
	sess, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if sess != nil {
		t.Fatal("expected nil for missing session")
	}

	created, err := repo.Create(ctx, "s-1", "order fulfilment system")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "s-1" {
		t.Errorf("id = %q, want s-1", created.ID)
	}

	sess, err = repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.OriginalPrompt != "order fulfilment system" {
		t.Errorf("prompt = %q", sess.OriginalPrompt)
	}

	if err := repo.Touch(ctx, "s-1"); err != nil {
		t.Fatalf("touch: %v", err)
	}

	list, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d sessions, want 1", len(list))
	}

	if err := repo.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sess, err = repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if sess != nil {
		t.Fatal("expected session to be gone")
	}
}

func TestSessionMessages(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "s-msg", "prompt"); err != nil {
		t.Fatalf("create: %v", err)
	}

	turns := []struct{ role, content string }{
		{"user", "first"},
		{"assistant", "second"},
		{"user", "third"},
		{"assistant", "fourth"},
	}
	for _, turn := range turns {
		if err := repo.AppendMessage(ctx, "s-msg", turn.role, turn.content); err != nil {
			t.Fatalf("append %q: %v", turn.content, err)
		}
	}

	msgs, err := repo.Messages(ctx, "s-msg")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[3].Content != "fourth" {
		t.Error("messages out of chronological order")
	}

	recent, err := repo.RecentMessages(ctx, "s-msg", 2)
	if err != nil {
		t.Fatalf("recent messages: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d recent, want 2", len(recent))
	}
	if recent[0].Content != "third" || recent[1].Content != "fourth" {
		t.Errorf("recent = [%q, %q], want chronological tail", recent[0].Content, recent[1].Content)
	}
}

func TestDiagramUpsertBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "s-d", "prompt"); err != nil {
		t.Fatalf("create: %v", err)
	}

	d1, err := repo.UpsertDiagram(ctx, "s-d", "flowchart", "flowchart TD\nA-->B")
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}
	if d1.Version != 1 {
		t.Errorf("version = %d, want 1", d1.Version)
	}

	d2, err := repo.UpsertDiagram(ctx, "s-d", "flowchart", "flowchart TD\nA-->B\nB-->C")
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	if d2.Version != 2 {
		t.Errorf("version = %d, want 2", d2.Version)
	}

	got, err := repo.GetDiagram(ctx, "s-d", "flowchart")
	if err != nil {
		t.Fatalf("get diagram: %v", err)
	}
	if got.Source != "flowchart TD\nA-->B\nB-->C" {
		t.Errorf("source = %q", got.Source)
	}

	missing, err := repo.GetDiagram(ctx, "s-d", "gantt")
	if err != nil {
		t.Fatalf("get missing diagram: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for absent kind")
	}
}

func TestDeleteInactiveSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "s-old", "old"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AppendMessage(ctx, "s-old", "user", "hello"); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Everything is newer than a cutoff in the past.
	n, err := repo.DeleteInactiveSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("delete inactive: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted %d, want 0", n)
	}

	// A future cutoff expires everything.
	n, err = repo.DeleteInactiveSince(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("delete inactive: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}

	msgs, err := repo.Messages(ctx, "s-old")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Error("expected child messages removed with session")
	}
}

func TestFeedbackSaveAndSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeedbackRepo()
	ctx := context.Background()

	summary, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary (empty): %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("total = %d, want 0", summary.Total)
	}

	ratings := []int{5, 4, 4}
	for i, rating := range ratings {
		err := repo.Save(ctx, DiagramFeedbackData{
			ID:             string(rune('a' + i)),
			UserIdentifier: "alice",
			Kind:           "flowchart",
			DiagramContent: "flowchart TD\nA-->B",
			Rating:         rating,
			FeedbackType:   "diagram_quality",
		})
		if err != nil {
			t.Fatalf("save feedback %d: %v", i, err)
		}
	}

	items, err := repo.ListByUser(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	byKind, err := repo.ListByKind(ctx, "flowchart", 2)
	if err != nil {
		t.Fatalf("list by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Fatalf("got %d items, want 2 (limited)", len(byKind))
	}

	summary, err = repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total = %d, want 3", summary.Total)
	}
	wantAvg := (5.0 + 4.0 + 4.0) / 3.0
	if summary.AverageRating < wantAvg-0.01 || summary.AverageRating > wantAvg+0.01 {
		t.Errorf("average = %f, want %f", summary.AverageRating, wantAvg)
	}
	if summary.RatingDistribution[4] != 2 {
		t.Errorf("distribution[4] = %d, want 2", summary.RatingDistribution[4])
	}
}

func TestPreferencesUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeedbackRepo()
	ctx := context.Background()

	p, err := repo.Preferences(ctx, "alice")
	if err != nil {
		t.Fatalf("preferences (missing): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil for missing preferences")
	}

	err = repo.SavePreferences(ctx, &Preferences{
		UserIdentifier:       "alice",
		PreferredDetailLevel: "high",
		FavoriteKinds:        []string{"flowchart"},
		FeedbackCount:        1,
		AverageRating:        5,
	})
	if err != nil {
		t.Fatalf("save preferences: %v", err)
	}

	err = repo.SavePreferences(ctx, &Preferences{
		UserIdentifier:       "alice",
		PreferredDetailLevel: "medium",
		FavoriteKinds:        []string{"flowchart", "sequenceDiagram"},
		FeedbackCount:        2,
		AverageRating:        4.5,
	})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	p, err = repo.Preferences(ctx, "alice")
	if err != nil {
		t.Fatalf("preferences: %v", err)
	}
	if p.PreferredDetailLevel != "medium" {
		t.Errorf("detail level = %q, want medium", p.PreferredDetailLevel)
	}
	if len(p.FavoriteKinds) != 2 {
		t.Errorf("favorite kinds = %v", p.FavoriteKinds)
	}
	if p.FeedbackCount != 2 {
		t.Errorf("feedback count = %d, want 2", p.FeedbackCount)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagram-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true,
			RequestBody: "[user]\ndraw a flowchart", ResponseBody: "flowchart TD\nA-->B"},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagram-repair",
			InputTokens: 200, OutputTokens: 80, LatencyMs: 600, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagram-gen",
			InputTokens: 120, OutputTokens: 0, LatencyMs: 45000, Success: false,
			ErrorMessage: "oracle timeout during draft"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].Purpose != "diagram-gen" || got[0].Success {
		t.Errorf("first event = %+v, want the failed diagram-gen call", got[0])
	}

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 {
		t.Fatalf("got %d failed events, want 1", len(failed))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "diagram-repair"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d repair events, want 1", len(byPurpose))
	}

	one, err := repo.GetLLMEvent(ctx, got[2].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if one == nil || one.RequestBody == "" {
		t.Error("expected the first event with its request body")
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagram-gen",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 500, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagram-gen",
			InputTokens: 150, OutputTokens: 60, LatencyMs: 700, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "diagram-repair",
			InputTokens: 300, OutputTokens: 90, LatencyMs: 900, Success: true},
	}
	for i, e := range seed {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]PurposeUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	if u := usage["diagram-gen"]; u.Calls != 2 || u.InputTokens != 250 || u.OutputTokens != 100 {
		t.Errorf("diagram-gen usage = %+v", u)
	}
	if u := usage["diagram-repair"]; u.Calls != 1 || u.InputTokens != 300 {
		t.Errorf("diagram-repair usage = %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]ModelUsage, len(byModel))
	for _, u := range byModel {
		models[u.Model] = u
	}
	if u := models["llama-3.3-70b-versatile"]; u.Calls != 2 {
		t.Errorf("llama usage = %+v", u)
	}
	if u := models["gpt-4o-mini"]; u.Calls != 1 || u.OutputTokens != 90 {
		t.Errorf("gpt-4o-mini usage = %+v", u)
	}
}
