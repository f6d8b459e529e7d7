package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
)

const (
	guidanceTTL     = 5 * time.Minute
	adaptationLimit = 5
)

var detailGuidance = map[string]string{
	"low":    "Keep the diagram simple and minimal with essential elements only.",
	"medium": "Include moderate detail with clear labels and logical flow.",
	"high":   "Provide comprehensive detail with extensive labels, notes, and explanations.",
}

// Enhancer decorates generation prompts with feedback-derived guidance.
// Guidance per (user, kind) is cached briefly so a multi-kind fan-out
// does not hit the feedback store once per kind.
type Enhancer struct {
	svc   *Service
	cache *gocache.Cache
}

// NewEnhancer creates an enhancer over the feedback service.
func NewEnhancer(svc *Service) *Enhancer {
	return &Enhancer{
		svc:   svc,
		cache: gocache.New(guidanceTTL, 2*guidanceTTL),
	}
}

// Enhance appends preference and feedback guidance to the base prompt.
// A user with no history gets the base prompt unchanged.
func (e *Enhancer) Enhance(ctx context.Context, base string, kind mermaid.Kind, user string) (string, error) {
	key := user + "|" + string(kind)
	if cached, ok := e.cache.Get(key); ok {
		return base + cached.(string), nil
	}

	guidance, err := e.buildGuidance(ctx, kind, user)
	if err != nil {
		return "", err
	}

	e.cache.Set(key, guidance, gocache.DefaultExpiration)
	return base + guidance, nil
}

func (e *Enhancer) buildGuidance(ctx context.Context, kind mermaid.Kind, user string) (string, error) {
	var b strings.Builder

	prefs, err := e.svc.Preferences(ctx, user)
	if err != nil {
		return "", err
	}
	if prefs != nil {
		writePreferenceGuidance(&b, prefs, kind)
	}

	recent, err := e.svc.RecentForAdaptation(ctx, string(kind), adaptationLimit)
	if err != nil {
		return "", err
	}
	if len(recent) > 0 {
		writeFeedbackGuidance(&b, recent, kind)
	}

	return b.String(), nil
}

func writePreferenceGuidance(b *strings.Builder, prefs *store.Preferences, kind mermaid.Kind) {
	b.WriteString("\n\nUSER PREFERENCE ADAPTATIONS:\n")

	detail, ok := detailGuidance[prefs.PreferredDetailLevel]
	if !ok {
		detail = detailGuidance["medium"]
	}
	fmt.Fprintf(b, "- Detail Level: %s\n", detail)

	if contains(prefs.FavoriteKinds, string(kind)) {
		fmt.Fprintf(b, "- This user particularly likes %s diagrams - make it especially good!\n", kind)
	}
	if len(prefs.CommonComplaints) > 0 {
		fmt.Fprintf(b, "- Address these common user concerns: %s\n",
			strings.Join(tail(prefs.CommonComplaints, 3), ", "))
	}
	if len(prefs.ImprovementFocusAreas) > 0 {
		fmt.Fprintf(b, "- Incorporate these improvement areas: %s\n",
			strings.Join(tail(prefs.ImprovementFocusAreas, 3), ", "))
	}
}

func writeFeedbackGuidance(b *strings.Builder, recent []store.FeedbackItem, kind mermaid.Kind) {
	fmt.Fprintf(b, "\n\nRECENT FEEDBACK IMPROVEMENTS FOR %s DIAGRAMS:\n", strings.ToUpper(string(kind)))

	var suggestions, issues []string
	var ratingSum int
	for _, item := range recent {
		if item.ImprovementSuggestions != "" {
			suggestions = append(suggestions, item.ImprovementSuggestions)
		}
		if item.Comment != "" && item.Rating <= 2 {
			issues = append(issues, item.Comment)
		}
		ratingSum += item.Rating
	}

	if len(suggestions) > 0 {
		b.WriteString("- Recent improvement suggestions to incorporate:\n")
		for _, s := range tail(suggestions, 3) {
			fmt.Fprintf(b, "  * %s\n", s)
		}
	}
	if len(issues) > 0 {
		b.WriteString("- Address these recent issues:\n")
		for _, issue := range tail(issues, 2) {
			fmt.Fprintf(b, "  * Avoid: %s\n", issue)
		}
	}

	avg := float64(ratingSum) / float64(len(recent))
	if avg < 3 {
		fmt.Fprintf(b, "- IMPORTANT: Recent %s diagrams have low ratings (%.1f/5). ", kind, avg)
		b.WriteString("Focus extra attention on quality, accuracy, and user requirements.\n")
	}
}
