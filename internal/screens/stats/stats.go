// Package stats shows feedback ratings and LLM usage at a glance.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	"github.com/abhisek/diagen/internal/store"
	"github.com/abhisek/diagen/internal/ui/components"
	"github.com/abhisek/diagen/internal/ui/layout"
	"github.com/abhisek/diagen/internal/ui/theme"
)

type statsLoadedMsg struct {
	Summary *store.FeedbackSummary
	Usage   []store.PurposeUsage
	Err     error
}

// StatsScreen renders the feedback summary and per-purpose LLM usage.
type StatsScreen struct {
	feedbackSvc *feedback.Service
	events      store.EventRepo
	summary     *store.FeedbackSummary
	usage       []store.PurposeUsage
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

func New(feedbackSvc *feedback.Service, events store.EventRepo) *StatsScreen {
	return &StatsScreen{
		feedbackSvc: feedbackSvc,
		events:      events,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := s.feedbackSvc.Summary(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		usage, err := s.events.LLMUsageByPurpose(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Summary: summary, Usage: usage}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summary = msg.Summary
			s.usage = msg.Usage
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderRatings(width))
	b.WriteString("\n")
	b.WriteString(s.renderUsage(width))
	return b.String()
}

func (s *StatsScreen) renderRatings(width int) string {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("FEEDBACK")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	b.WriteString("\n\n")

	if s.summary == nil || s.summary.Total == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No ratings yet. Press Ctrl+R in a session to rate a diagram.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, empty))
		b.WriteString("\n")
		return b.String()
	}

	line := fmt.Sprintf("%d ratings   average %.1f / 5", s.summary.Total, s.summary.AverageRating)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
	b.WriteString("\n\n")

	for rating := 5; rating >= 1; rating-- {
		count := s.summary.RatingDistribution[rating]
		pct := float64(count) / float64(s.summary.Total)
		bar := components.NewProgressBar(fmt.Sprintf("%d★ (%d)", rating, count), pct, false, 24)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StatsScreen) renderUsage(width int) string {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("LLM USAGE")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	b.WriteString("\n\n")

	if len(s.usage) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No LLM calls recorded yet.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, empty))
		b.WriteString("\n")
		return b.String()
	}

	for _, u := range s.usage {
		line := fmt.Sprintf("%-16s %4d calls   %6d in / %6d out   %4dms avg",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
