// Package setup is the new-session screen: a prompt plus a diagram kind
// selection, handed off to concurrent generation.
package setup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	chatscreen "github.com/abhisek/diagen/internal/screens/chatsession"
	"github.com/abhisek/diagen/internal/ui/components"
	"github.com/abhisek/diagen/internal/ui/layout"
	"github.com/abhisek/diagen/internal/ui/theme"
)

const (
	focusPrompt = iota
	focusKinds
	focusStart
)

type startDoneMsg struct {
	Result *chat.StartResult
	Err    error
}

// SetupScreen collects a prompt and diagram kinds, then starts a session.
type SetupScreen struct {
	chatSvc     *chat.Service
	feedbackSvc *feedback.Service

	prompt     components.TextInput
	picker     components.KindPicker
	start      components.Button
	focus      int
	generating bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen.
func New(chatSvc *chat.Service, feedbackSvc *feedback.Service) *SetupScreen {
	s := &SetupScreen{
		chatSvc:     chatSvc,
		feedbackSvc: feedbackSvc,
		prompt:      components.NewTextInput("Describe the system to diagram...", 200),
		picker:      components.NewKindPicker(mermaid.KindSequence, mermaid.KindFlowchart),
	}
	s.start = components.NewButton("GENERATE", false, s.startGeneration)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.prompt.Init()
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Space", Description: "Toggle kind"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startDoneMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := chatscreen.New(s.chatSvc, s.feedbackSvc, msg.Result)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.setFocus((s.focus + 1) % 3)
			return s, nil
		case "shift+tab":
			s.setFocus((s.focus + 2) % 3)
			return s, nil
		case "enter":
			// Enter in the prompt field advances; on the button it fires.
			if s.focus == focusPrompt {
				s.setFocus(focusKinds)
				return s, nil
			}
			if s.focus == focusStart || s.focus == focusKinds {
				return s, s.startGeneration()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusPrompt:
		s.prompt, cmd = s.prompt.Update(msg)
	case focusKinds:
		s.picker, cmd = s.picker.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) setFocus(f int) {
	s.focus = f
	s.picker.Blur()
	s.prompt.Model.Blur()
	s.start.Active = false
	switch f {
	case focusPrompt:
		s.prompt.Model.Focus()
	case focusKinds:
		s.picker.Focus()
	case focusStart:
		s.start.Active = true
	}
}

func (s *SetupScreen) startGeneration() tea.Cmd {
	prompt := strings.TrimSpace(s.prompt.Value())
	if prompt == "" {
		s.errMsg = "Enter a system description first."
		return nil
	}
	kinds := s.picker.Selection()
	if len(kinds) == 0 {
		s.errMsg = "Select at least one diagram kind."
		return nil
	}

	s.errMsg = ""
	s.generating = true
	return func() tea.Msg {
		result, err := s.chatSvc.Start(context.Background(), prompt, kinds)
		return startDoneMsg{Result: result, Err: err}
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.generating {
		msg := theme.Body.Render("Generating diagrams...") + "\n\n" +
			theme.Hint.Render("drafting, validating, and correcting each kind")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.Panel(msg, cw))
	}

	var sections []string

	label := theme.Body.Bold(true).Render("What should the diagrams describe?")
	sections = append(sections, label+"\n\n"+s.prompt.View())

	kindLabel := theme.Body.Bold(true).Render("Diagram kinds")
	sections = append(sections, kindLabel+"\n\n"+s.picker.View())

	sections = append(sections, s.start.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Invalid.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Panel(content, cw))
}
