package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/diagen/internal/store"
)

const keepRecent = 10

// Submission is one incoming diagram rating.
type Submission struct {
	SessionID              string
	User                   string
	Kind                   string
	DiagramContent         string
	UserPrompt             string
	Rating                 int
	Type                   string
	Comment                string
	ImprovementSuggestions string
}

// Service stores feedback and maintains per-user preference profiles.
type Service struct {
	repo store.FeedbackRepo
}

// NewService creates a feedback service.
func NewService(repo store.FeedbackRepo) *Service {
	return &Service{repo: repo}
}

// Submit stores a feedback record and updates the submitting user's
// preference profile. Returns the feedback ID and adaptation notes
// describing how the feedback will be used.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, []string, error) {
	if sub.Rating < 1 || sub.Rating > 5 {
		return "", nil, fmt.Errorf("rating must be between 1 and 5, got %d", sub.Rating)
	}
	if sub.Type == "" {
		sub.Type = "diagram_quality"
	}

	id := uuid.NewString()
	err := s.repo.Save(ctx, store.DiagramFeedbackData{
		ID:                     id,
		SessionID:              sub.SessionID,
		UserIdentifier:         sub.User,
		Kind:                   sub.Kind,
		DiagramContent:         sub.DiagramContent,
		UserPrompt:             sub.UserPrompt,
		Rating:                 sub.Rating,
		FeedbackType:           sub.Type,
		Comment:                sub.Comment,
		ImprovementSuggestions: sub.ImprovementSuggestions,
	})
	if err != nil {
		return "", nil, err
	}

	if sub.User != "" {
		if err := s.updatePreferences(ctx, sub); err != nil {
			return "", nil, fmt.Errorf("update preferences: %w", err)
		}
	}

	return id, adaptationNotes(sub), nil
}

// Summary aggregates all stored feedback.
func (s *Service) Summary(ctx context.Context) (*store.FeedbackSummary, error) {
	return s.repo.Summary(ctx)
}

// Preferences returns a user's derived profile, or nil if none exists.
func (s *Service) Preferences(ctx context.Context, user string) (*store.Preferences, error) {
	return s.repo.Preferences(ctx, user)
}

// History returns a user's feedback, newest first.
func (s *Service) History(ctx context.Context, user string, limit int) ([]store.FeedbackItem, error) {
	return s.repo.ListByUser(ctx, user, limit)
}

// RecentForAdaptation returns recent low-rated feedback for a kind. These
// records carry the complaints and suggestions the enhancer feeds back
// into generation prompts.
func (s *Service) RecentForAdaptation(ctx context.Context, kind string, limit int) ([]store.FeedbackItem, error) {
	items, err := s.repo.ListByKind(ctx, kind, 0)
	if err != nil {
		return nil, err
	}

	needsWork := make([]store.FeedbackItem, 0, limit)
	for _, item := range items {
		if item.Rating > 3 {
			continue
		}
		needsWork = append(needsWork, item)
		if limit > 0 && len(needsWork) == limit {
			break
		}
	}
	return needsWork, nil
}

// updatePreferences folds one submission into the user's profile.
func (s *Service) updatePreferences(ctx context.Context, sub Submission) error {
	prefs, err := s.repo.Preferences(ctx, sub.User)
	if err != nil {
		return err
	}
	if prefs == nil {
		prefs = &store.Preferences{
			UserIdentifier:       sub.User,
			PreferredDetailLevel: "medium",
		}
	}

	if sub.Rating >= 4 && !contains(prefs.FavoriteKinds, sub.Kind) {
		prefs.FavoriteKinds = append(prefs.FavoriteKinds, sub.Kind)
	}
	if sub.Rating <= 2 && sub.Comment != "" {
		prefs.CommonComplaints = tail(append(prefs.CommonComplaints, sub.Comment), keepRecent)
	}
	if sub.ImprovementSuggestions != "" {
		prefs.ImprovementFocusAreas = tail(append(prefs.ImprovementFocusAreas, sub.ImprovementSuggestions), keepRecent)
	}

	total := prefs.AverageRating*float64(prefs.FeedbackCount) + float64(sub.Rating)
	prefs.FeedbackCount++
	prefs.AverageRating = total / float64(prefs.FeedbackCount)

	return s.repo.SavePreferences(ctx, prefs)
}

func adaptationNotes(sub Submission) []string {
	var notes []string
	if sub.Rating <= 2 {
		notes = append(notes, "Low rating feedback will be used to improve future diagram generation")
	}
	if sub.ImprovementSuggestions != "" {
		notes = append(notes, "Your improvement suggestions have been noted for future enhancements")
	}
	if sub.Type == "diagram_accuracy" {
		notes = append(notes, "Accuracy feedback will help improve diagram content relevance")
	}
	return notes
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func tail(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}
