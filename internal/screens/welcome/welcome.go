package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/router"
	"github.com/abhisek/diagen/internal/screen"
	"github.com/abhisek/diagen/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// logoArt sketches a tiny flowchart while the banner fades in.
const logoArt = `  ┌────────┐      ┌────────┐
  │ prompt │ ───▶ │ model  │
  └────────┘      └────┬───┘
                       │
  ┌────────┐      ┌────▼───┐
  │  done  │ ◀─── │ verify │
  └────────┘      └────────┘`

var pulseFrames = []string{"◇", "◆"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	logoStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	rendered := logoStyle.Render(logoArt)

	// Phase 2+: pulse markers beside the logo
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(pulseFrames)
		pulse := lipgloss.NewStyle().Foreground(theme.Accent).Render(pulseFrames[frame])

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = pulse + " " + lines[1]
		}
		if len(lines) > 5 {
			lines[5] = pulse + " " + lines[5]
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Describe a system. Get validated diagrams.")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
