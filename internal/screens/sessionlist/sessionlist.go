// Package sessionlist shows stored chat sessions and resumes them.
package sessionlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	"github.com/abhisek/diagen/internal/store"
	"github.com/abhisek/diagen/internal/ui/layout"
	"github.com/abhisek/diagen/internal/ui/theme"
)

type sessionsLoadedMsg struct {
	Sessions []store.Session
	Err      error
}

type sessionDeletedMsg struct {
	ID  string
	Err error
}

// ListScreen displays stored sessions newest-activity first.
type ListScreen struct {
	chatSvc  *chat.Service
	resume   func(sessionID string) screen.Screen
	sessions []store.Session
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates a ListScreen. resume builds the screen pushed when a
// session is opened.
func New(chatSvc *chat.Service, resume func(sessionID string) screen.Screen) *ListScreen {
	return &ListScreen{
		chatSvc: chatSvc,
		resume:  resume,
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ListScreen) load() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.chatSvc.List(context.Background(), 50)
		return sessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *ListScreen) Title() string {
	return "Sessions"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Resume"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			if s.selected >= len(s.sessions) {
				s.selected = 0
			}
		}
		s.loaded = true
		return s, nil

	case sessionDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "d":
			if s.selected < len(s.sessions) {
				id := s.sessions[s.selected].ID
				return s, func() tea.Msg {
					err := s.chatSvc.Delete(context.Background(), id)
					return sessionDeletedMsg{ID: id, Err: err}
				}
			}
			return s, nil
		case "enter":
			if s.selected < len(s.sessions) {
				next := s.resume(s.sessions[s.selected].ID)
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: next}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading sessions...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prompt := sess.OriginalPrompt
		if len(prompt) > 48 {
			prompt = prompt[:45] + "..."
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			prefix,
			sess.LastActivity.Local().Format("Jan 02 15:04"),
			sess.ID[:8],
			prompt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
