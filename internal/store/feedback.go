package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/diagen/ent"
	"github.com/abhisek/diagen/ent/diagramfeedback"
	"github.com/abhisek/diagen/ent/userpreference"
)

// feedbackRepo implements FeedbackRepo backed by ent.
type feedbackRepo struct {
	client *ent.Client
}

func (r *feedbackRepo) Save(ctx context.Context, data DiagramFeedbackData) error {
	_, err := r.client.DiagramFeedback.Create().
		SetID(data.ID).
		SetSessionID(data.SessionID).
		SetUserIdentifier(data.UserIdentifier).
		SetKind(data.Kind).
		SetDiagramContent(data.DiagramContent).
		SetUserPrompt(data.UserPrompt).
		SetRating(data.Rating).
		SetFeedbackType(diagramfeedback.FeedbackType(data.FeedbackType)).
		SetComment(data.Comment).
		SetImprovementSuggestions(data.ImprovementSuggestions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepo) ListByUser(ctx context.Context, user string, limit int) ([]FeedbackItem, error) {
	q := r.client.DiagramFeedback.Query().
		Where(diagramfeedback.UserIdentifier(user)).
		Order(ent.Desc(diagramfeedback.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback for user %s: %w", user, err)
	}
	return feedbackFromRows(rows), nil
}

func (r *feedbackRepo) ListByKind(ctx context.Context, kind string, limit int) ([]FeedbackItem, error) {
	q := r.client.DiagramFeedback.Query().
		Where(diagramfeedback.Kind(kind)).
		Order(ent.Desc(diagramfeedback.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback for kind %s: %w", kind, err)
	}
	return feedbackFromRows(rows), nil
}

func (r *feedbackRepo) Summary(ctx context.Context) (*FeedbackSummary, error) {
	total, err := r.client.DiagramFeedback.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	summary := &FeedbackSummary{
		Total:              total,
		RatingDistribution: make(map[int]int),
	}
	if total == 0 {
		return summary, nil
	}

	var rows []struct {
		Rating int `json:"rating"`
		Count  int `json:"count"`
	}
	err = r.client.DiagramFeedback.Query().
		GroupBy(diagramfeedback.FieldRating).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("rating distribution: %w", err)
	}

	var weighted int
	for _, row := range rows {
		summary.RatingDistribution[row.Rating] = row.Count
		weighted += row.Rating * row.Count
	}
	summary.AverageRating = float64(weighted) / float64(total)

	return summary, nil
}

func (r *feedbackRepo) Preferences(ctx context.Context, user string) (*Preferences, error) {
	row, err := r.client.UserPreference.Query().
		Where(userpreference.UserIdentifier(user)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences for %s: %w", user, err)
	}

	return &Preferences{
		UserIdentifier:        row.UserIdentifier,
		PreferredDetailLevel:  row.PreferredDetailLevel,
		FavoriteKinds:         row.FavoriteKinds,
		CommonComplaints:      row.CommonComplaints,
		ImprovementFocusAreas: row.ImprovementFocusAreas,
		FeedbackCount:         row.FeedbackCount,
		AverageRating:         row.AverageRating,
		LastUpdated:           row.LastUpdated,
	}, nil
}

func (r *feedbackRepo) SavePreferences(ctx context.Context, p *Preferences) error {
	existing, err := r.client.UserPreference.Query().
		Where(userpreference.UserIdentifier(p.UserIdentifier)).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		_, err := r.client.UserPreference.Create().
			SetUserIdentifier(p.UserIdentifier).
			SetPreferredDetailLevel(p.PreferredDetailLevel).
			SetFavoriteKinds(p.FavoriteKinds).
			SetCommonComplaints(p.CommonComplaints).
			SetImprovementFocusAreas(p.ImprovementFocusAreas).
			SetFeedbackCount(p.FeedbackCount).
			SetAverageRating(p.AverageRating).
			SetLastUpdated(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("query preferences: %w", err)
	}

	_, err = existing.Update().
		SetPreferredDetailLevel(p.PreferredDetailLevel).
		SetFavoriteKinds(p.FavoriteKinds).
		SetCommonComplaints(p.CommonComplaints).
		SetImprovementFocusAreas(p.ImprovementFocusAreas).
		SetFeedbackCount(p.FeedbackCount).
		SetAverageRating(p.AverageRating).
		SetLastUpdated(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

func feedbackFromRows(rows []*ent.DiagramFeedback) []FeedbackItem {
	items := make([]FeedbackItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, FeedbackItem{
			DiagramFeedbackData: DiagramFeedbackData{
				ID:                     row.ID,
				SessionID:              row.SessionID,
				UserIdentifier:         row.UserIdentifier,
				Kind:                   row.Kind,
				DiagramContent:         row.DiagramContent,
				UserPrompt:             row.UserPrompt,
				Rating:                 row.Rating,
				FeedbackType:           string(row.FeedbackType),
				Comment:                row.Comment,
				ImprovementSuggestions: row.ImprovementSuggestions,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return items
}
