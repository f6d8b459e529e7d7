package chatsession

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/ui/theme"
)

func (s *ChatScreen) View(width, height int) string {
	if s.loading {
		return center(width, height, theme.Hint.Render("Loading session..."))
	}
	if len(s.kinds) == 0 {
		if s.errMsg != "" {
			return center(width, height, theme.Invalid.Render("Error: "+s.errMsg))
		}
		return center(width, height, theme.Hint.Render("No diagrams in this session."))
	}

	var b strings.Builder

	b.WriteString(s.renderTabs(width))
	b.WriteString("\n")

	// Reserve rows for tabs, status, input, and spacing.
	bodyHeight := height - 6
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	b.WriteString(s.renderDiagram(width, bodyHeight))
	b.WriteString("\n")

	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")

	if s.rating {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("  Rate the %s diagram: press 1 (poor) to 5 (great)", s.activeKind())))
	} else if s.busy {
		b.WriteString(theme.Hint.Render("  Applying edit across diagrams..."))
	} else {
		b.WriteString("  " + s.input.View())
	}

	return b.String()
}

func (s *ChatScreen) renderTabs(width int) string {
	var tabs []string
	for i, kind := range s.kinds {
		label := fmt.Sprintf(" %s v%d ", kind, s.versions[kind])
		if i == s.activeTab {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Background(theme.BgCard).
				Render(label))
		}
	}
	return "  " + strings.Join(tabs, " ")
}

func (s *ChatScreen) renderDiagram(width, height int) string {
	kind := s.activeKind()
	source := s.diagrams[kind]

	lines := strings.Split(source, "\n")
	if len(lines) > height {
		shown := lines[:height-1]
		shown = append(shown, fmt.Sprintf("... (%d more lines)", len(lines)-height+1))
		lines = shown
	}

	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(inner).
		Padding(0, 1).
		MarginLeft(2).
		Render(strings.Join(lines, "\n"))
}

func (s *ChatScreen) renderStatusLine(width int) string {
	kind := s.activeKind()

	var badge string
	if outcome, ok := s.outcomes[kind]; ok {
		switch outcome.Status {
		case diagramgen.StatusUnchanged:
			badge = theme.Valid.Render("✓ valid")
		case diagramgen.StatusCorrected:
			badge = theme.Valid.Render(fmt.Sprintf("✓ corrected (%d attempts)", outcome.Attempts))
		case diagramgen.StatusFailed:
			badge = theme.Invalid.Render("✗ " + outcome.LastReason)
		}
	}

	status := ""
	if s.errMsg != "" {
		status = theme.Invalid.Render(s.errMsg)
	} else if s.statusMsg != "" {
		status = theme.Hint.Render(s.statusMsg)
	}

	line := "  " + badge
	if status != "" {
		line += "   " + status
	}
	return line
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
