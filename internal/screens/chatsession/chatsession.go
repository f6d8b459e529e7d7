// Package chatsession is the conversational editing screen: one tab per
// diagram kind, an instruction input, and inline rating.
package chatsession

import (
	"context"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	"github.com/abhisek/diagen/internal/ui/components"
	"github.com/abhisek/diagen/internal/ui/layout"
)

type resumeLoadedMsg struct {
	History *chat.History
	Err     error
}

type editDoneMsg struct {
	Result *chat.MessageResult
	Err    error
}

type ratingDoneMsg struct {
	Err error
}

// ChatScreen drives one diagram-editing session.
type ChatScreen struct {
	chatSvc     *chat.Service
	feedbackSvc *feedback.Service

	sessionID string
	kinds     []mermaid.Kind
	diagrams  map[mermaid.Kind]string
	outcomes  map[mermaid.Kind]diagramgen.Outcome
	versions  map[mermaid.Kind]int

	input     components.TextInput
	activeTab int
	busy      bool
	loading   bool
	rating    bool
	statusMsg string
	errMsg    string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen over a freshly started session.
func New(chatSvc *chat.Service, feedbackSvc *feedback.Service, started *chat.StartResult) *ChatScreen {
	s := newScreen(chatSvc, feedbackSvc)
	s.sessionID = started.SessionID
	for kind, outcome := range started.Diagrams {
		s.kinds = append(s.kinds, kind)
		s.diagrams[kind] = outcome.Text
		s.outcomes[kind] = outcome
		s.versions[kind] = 1
	}
	sortKinds(s.kinds)
	return s
}

// Resume creates a ChatScreen that loads an existing session on Init.
func Resume(chatSvc *chat.Service, feedbackSvc *feedback.Service, sessionID string) *ChatScreen {
	s := newScreen(chatSvc, feedbackSvc)
	s.sessionID = sessionID
	s.loading = true
	return s
}

func newScreen(chatSvc *chat.Service, feedbackSvc *feedback.Service) *ChatScreen {
	return &ChatScreen{
		chatSvc:     chatSvc,
		feedbackSvc: feedbackSvc,
		diagrams:    make(map[mermaid.Kind]string),
		outcomes:    make(map[mermaid.Kind]diagramgen.Outcome),
		versions:    make(map[mermaid.Kind]int),
		input:       components.NewTextInput("Describe a change, e.g. add a cache between api and db...", 300),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.loading {
		cmds = append(cmds, s.loadSession())
	}
	return tea.Batch(cmds...)
}

func (s *ChatScreen) Title() string {
	return "Session"
}

func (s *ChatScreen) SessionTag() string {
	if len(s.sessionID) >= 8 {
		return s.sessionID[:8]
	}
	return s.sessionID
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.rating {
		return []layout.KeyHint{
			{Key: "1-5", Description: "Rate"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Apply edit"},
		{Key: "←→", Description: "Switch diagram"},
		{Key: "Ctrl+R", Description: "Rate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		history, err := s.chatSvc.History(context.Background(), s.sessionID)
		return resumeLoadedMsg{History: history, Err: err}
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for _, d := range msg.History.Diagrams {
			kind := mermaid.MustKind(d.Kind)
			s.kinds = append(s.kinds, kind)
			s.diagrams[kind] = d.Source
			s.versions[kind] = d.Version
		}
		sortKinds(s.kinds)
		return s, nil

	case editDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.applyEdit(msg.Result)
		return s, nil

	case ratingDoneMsg:
		s.rating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.statusMsg = "Feedback recorded."
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.busy && !s.rating {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.rating {
		return s.handleRatingKey(msg)
	}
	if s.busy || s.loading {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "shift+tab":
		if len(s.kinds) > 0 {
			s.activeTab = (s.activeTab + len(s.kinds) - 1) % len(s.kinds)
		}
		return s, nil
	case "right", "tab":
		if len(s.kinds) > 0 {
			s.activeTab = (s.activeTab + 1) % len(s.kinds)
		}
		return s, nil
	case "ctrl+r":
		if len(s.kinds) > 0 {
			s.rating = true
			s.statusMsg = ""
			s.errMsg = ""
		}
		return s, nil
	case "enter":
		return s, s.sendEdit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleRatingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		s.rating = false
		return s, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		rating := int(key[0] - '0')
		kind := s.activeKind()
		source := s.diagrams[kind]
		return s, func() tea.Msg {
			_, _, err := s.feedbackSvc.Submit(context.Background(), feedback.Submission{
				SessionID:      s.sessionID,
				User:           s.sessionID,
				Kind:           string(kind),
				DiagramContent: source,
				Rating:         rating,
			})
			return ratingDoneMsg{Err: err}
		}
	}
	return s, nil
}

func (s *ChatScreen) sendEdit() tea.Cmd {
	instruction := strings.TrimSpace(s.input.Value())
	if instruction == "" {
		return nil
	}

	s.busy = true
	s.statusMsg = ""
	s.errMsg = ""
	s.input.Reset()

	sessionID := s.sessionID
	return func() tea.Msg {
		result, err := s.chatSvc.SendMessage(context.Background(), sessionID, instruction, nil)
		return editDoneMsg{Result: result, Err: err}
	}
}

func (s *ChatScreen) applyEdit(result *chat.MessageResult) {
	for kind, source := range result.All {
		s.diagrams[kind] = source
	}
	for kind, outcome := range result.Updated {
		s.outcomes[kind] = outcome
		s.versions[kind]++
	}

	switch {
	case len(result.Faults) > 0:
		var names []string
		for kind := range result.Faults {
			names = append(names, string(kind))
		}
		sort.Strings(names)
		s.errMsg = "Model unavailable for: " + strings.Join(names, ", ") + " (kept previous versions)"
	default:
		s.statusMsg = result.Response
	}
}

func (s *ChatScreen) activeKind() mermaid.Kind {
	if len(s.kinds) == 0 {
		return ""
	}
	if s.activeTab >= len(s.kinds) {
		s.activeTab = 0
	}
	return s.kinds[s.activeTab]
}

func sortKinds(kinds []mermaid.Kind) {
	order := make(map[mermaid.Kind]int, len(mermaid.Kinds()))
	for i, k := range mermaid.Kinds() {
		order[k] = i
	}
	sort.Slice(kinds, func(i, j int) bool {
		return order[kinds[i]] < order[kinds[j]]
	})
}
