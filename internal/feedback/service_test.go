package feedback

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
)

// fakeRepo is an in-memory FeedbackRepo.
type fakeRepo struct {
	items []store.FeedbackItem
	prefs map[string]*store.Preferences

	prefsReads int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{prefs: make(map[string]*store.Preferences)}
}

func (r *fakeRepo) Save(_ context.Context, data store.DiagramFeedbackData) error {
	r.items = append([]store.FeedbackItem{{DiagramFeedbackData: data, CreatedAt: time.Now()}}, r.items...)
	return nil
}

func (r *fakeRepo) ListByUser(_ context.Context, user string, limit int) ([]store.FeedbackItem, error) {
	var out []store.FeedbackItem
	for _, item := range r.items {
		if item.UserIdentifier == user {
			out = append(out, item)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByKind(_ context.Context, kind string, limit int) ([]store.FeedbackItem, error) {
	var out []store.FeedbackItem
	for _, item := range r.items {
		if item.Kind == kind {
			out = append(out, item)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) Summary(_ context.Context) (*store.FeedbackSummary, error) {
	summary := &store.FeedbackSummary{RatingDistribution: make(map[int]int)}
	var sum int
	for _, item := range r.items {
		summary.Total++
		summary.RatingDistribution[item.Rating]++
		sum += item.Rating
	}
	if summary.Total > 0 {
		summary.AverageRating = float64(sum) / float64(summary.Total)
	}
	return summary, nil
}

func (r *fakeRepo) Preferences(_ context.Context, user string) (*store.Preferences, error) {
	r.prefsReads++
	p, ok := r.prefs[user]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) SavePreferences(_ context.Context, p *store.Preferences) error {
	cp := *p
	r.prefs[p.UserIdentifier] = &cp
	return nil
}

func TestSubmit_RejectsBadRating(t *testing.T) {
	svc := NewService(newFakeRepo())
	for _, rating := range []int{0, 6, -1} {
		if _, _, err := svc.Submit(context.Background(), Submission{Rating: rating, Kind: "flowchart"}); err == nil {
			t.Errorf("rating %d: expected error", rating)
		}
	}
}

func TestSubmit_StoresAndReturnsNotes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	id, notes, err := svc.Submit(context.Background(), Submission{
		Kind:                   "flowchart",
		DiagramContent:         "flowchart TD\nA-->B",
		Rating:                 2,
		Comment:                "too cluttered",
		ImprovementSuggestions: "fewer nodes",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if id == "" {
		t.Error("expected a feedback ID")
	}
	if len(notes) != 2 {
		t.Errorf("notes = %v, want low-rating and suggestion notes", notes)
	}
	if len(repo.items) != 1 {
		t.Fatalf("stored %d items, want 1", len(repo.items))
	}
	if repo.items[0].FeedbackType != "diagram_quality" {
		t.Errorf("type = %q, want default diagram_quality", repo.items[0].FeedbackType)
	}
}

func TestSubmit_BuildsPreferenceProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	subs := []Submission{
		{User: "alice", Kind: "flowchart", Rating: 5, DiagramContent: "d"},
		{User: "alice", Kind: "sequenceDiagram", Rating: 1, Comment: "labels unreadable", DiagramContent: "d"},
		{User: "alice", Kind: "flowchart", Rating: 4, ImprovementSuggestions: "use subgraphs", DiagramContent: "d"},
	}
	for i, sub := range subs {
		if _, _, err := svc.Submit(ctx, sub); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	prefs, err := svc.Preferences(ctx, "alice")
	if err != nil {
		t.Fatalf("preferences: %v", err)
	}
	if prefs == nil {
		t.Fatal("expected a profile after submissions")
	}
	if !contains(prefs.FavoriteKinds, "flowchart") {
		t.Errorf("favorites = %v, want flowchart included", prefs.FavoriteKinds)
	}
	// flowchart rated highly twice but recorded once.
	if n := len(prefs.FavoriteKinds); n != 1 {
		t.Errorf("favorites = %v, want deduplicated", prefs.FavoriteKinds)
	}
	if len(prefs.CommonComplaints) != 1 || prefs.CommonComplaints[0] != "labels unreadable" {
		t.Errorf("complaints = %v", prefs.CommonComplaints)
	}
	if prefs.FeedbackCount != 3 {
		t.Errorf("count = %d, want 3", prefs.FeedbackCount)
	}
	wantAvg := (5.0 + 1.0 + 4.0) / 3.0
	if prefs.AverageRating < wantAvg-0.01 || prefs.AverageRating > wantAvg+0.01 {
		t.Errorf("average = %f, want %f", prefs.AverageRating, wantAvg)
	}
}

func TestRecentForAdaptation_FiltersHighRatings(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	ratings := []int{5, 3, 1, 4, 2}
	for _, rating := range ratings {
		if _, _, err := svc.Submit(ctx, Submission{Kind: "flowchart", Rating: rating, DiagramContent: "d"}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	items, err := svc.RecentForAdaptation(ctx, "flowchart", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 (ratings <= 3)", len(items))
	}
	for _, item := range items {
		if item.Rating > 3 {
			t.Errorf("rating %d should be filtered out", item.Rating)
		}
	}
}

func TestEnhancer_NoHistoryLeavesPromptUnchanged(t *testing.T) {
	svc := NewService(newFakeRepo())
	enhancer := NewEnhancer(svc)

	got, err := enhancer.Enhance(context.Background(), "draw a flow", mermaid.KindFlowchart, "bob")
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if got != "draw a flow" {
		t.Errorf("got %q, want base prompt unchanged", got)
	}
}

func TestEnhancer_AppendsGuidance(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	seeds := []Submission{
		{User: "alice", Kind: "flowchart", Rating: 5, DiagramContent: "d"},
		{User: "alice", Kind: "flowchart", Rating: 1, Comment: "arrows point backwards",
			ImprovementSuggestions: "label every edge", DiagramContent: "d"},
	}
	for _, sub := range seeds {
		if _, _, err := svc.Submit(ctx, sub); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	enhancer := NewEnhancer(svc)
	got, err := enhancer.Enhance(ctx, "draw a flow", mermaid.KindFlowchart, "alice")
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.HasPrefix(got, "draw a flow") {
		t.Error("base prompt must stay at the front")
	}
	if !strings.Contains(got, "USER PREFERENCE ADAPTATIONS") {
		t.Error("expected preference guidance")
	}
	if !strings.Contains(got, "label every edge") {
		t.Error("expected improvement suggestions in guidance")
	}
	if !strings.Contains(got, "Avoid: arrows point backwards") {
		t.Error("expected low-rating complaint in guidance")
	}
}

func TestEnhancer_CachesGuidance(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, _, err := svc.Submit(ctx, Submission{User: "alice", Kind: "flowchart", Rating: 5, DiagramContent: "d"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	enhancer := NewEnhancer(svc)
	if _, err := enhancer.Enhance(ctx, "p", mermaid.KindFlowchart, "alice"); err != nil {
		t.Fatalf("enhance: %v", err)
	}
	reads := repo.prefsReads
	if _, err := enhancer.Enhance(ctx, "p", mermaid.KindFlowchart, "alice"); err != nil {
		t.Fatalf("enhance (cached): %v", err)
	}
	if repo.prefsReads != reads {
		t.Error("second enhance within the TTL should hit the cache")
	}
}
