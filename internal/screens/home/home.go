package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	chatscreen "github.com/abhisek/diagen/internal/screens/chatsession"
	"github.com/abhisek/diagen/internal/screens/sessionlist"
	"github.com/abhisek/diagen/internal/screens/setup"
	"github.com/abhisek/diagen/internal/screens/stats"
	"github.com/abhisek/diagen/internal/store"
	"github.com/abhisek/diagen/internal/ui/components"
	"github.com/abhisek/diagen/internal/ui/theme"
)

// Deps carries the services the home screen hands to its children.
type Deps struct {
	Chat        *chat.Service
	Feedback    *feedback.Service
	EventRepo   store.EventRepo
	OracleReady bool
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	menuLabels   []string
	sessionCount int
	avgRating    float64
	ratingCount  int
	oracleReady  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	var sessionCount int
	if sessions, err := deps.Chat.List(ctx, 0); err == nil {
		sessionCount = len(sessions)
	}

	var avgRating float64
	var ratingCount int
	if summary, err := deps.Feedback.Summary(ctx); err == nil {
		avgRating = summary.AverageRating
		ratingCount = summary.Total
	}

	menuLabels := []string{"NEW SESSION", "SESSIONS", "STATS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(deps.Chat, deps.Feedback)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionlist.New(deps.Chat, func(sessionID string) screen.Screen {
						return chatscreen.Resume(deps.Chat, deps.Feedback, sessionID)
					}),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Feedback, deps.EventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   menuLabels,
		sessionCount: sessionCount,
		avgRating:    avgRating,
		ratingCount:  ratingCount,
		oracleReady:  deps.OracleReady,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("D I A G E N")
	subtitle := theme.Subtitle.Render("architecture diagrams from plain language")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStatsBar(cw))

	var rows []string
	for i, label := range h.menuLabels {
		rows = append(rows, components.PanelButton(label, i == h.menu.Selected, cw-4))
	}
	sections = append(sections, strings.Join(rows, "\n"))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	oracle := theme.Valid.Render("● online")
	if !h.oracleReady {
		oracle = theme.Invalid.Render("● offline")
	}

	rating := "no ratings yet"
	if h.ratingCount > 0 {
		rating = fmt.Sprintf("%.1f/5 over %d ratings", h.avgRating, h.ratingCount)
	}

	line := fmt.Sprintf("%d sessions   %s   model %s",
		h.sessionCount, rating, oracle)
	return components.Panel(theme.Body.Render(line), cw)
}
