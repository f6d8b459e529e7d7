package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	"github.com/abhisek/diagen/internal/screens/home"
	"github.com/abhisek/diagen/internal/screens/welcome"
	"github.com/abhisek/diagen/internal/store"
	"github.com/abhisek/diagen/internal/ui/layout"
)

// Options carries the services the TUI operates on.
type Options struct {
	Chat        *chat.Service
	Feedback    *feedback.Service
	EventRepo   store.EventRepo
	OracleReady bool
}

// sessionTagger is implemented by screens tied to a chat session.
type sessionTagger interface {
	SessionTag() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the welcome splash, which hands off to home.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Chat:        opts.Chat,
			Feedback:    opts.Feedback,
			EventRepo:   opts.EventRepo,
			OracleReady: opts.OracleReady,
		})
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				break
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	sessionTag := ""
	if active != nil {
		title = active.Title()
		if tagger, ok := active.(sessionTagger); ok {
			sessionTag = tagger.SessionTag()
		}
	}

	header := layout.RenderHeader(title, sessionTag, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
