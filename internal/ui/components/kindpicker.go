package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/ui/theme"
)

// KindPicker is a multi-select list of diagram kinds.
type KindPicker struct {
	Kinds    []mermaid.Kind
	Checked  map[int]bool
	Cursor   int
	focused  bool
}

// NewKindPicker creates a picker over all supported kinds with the given
// defaults pre-checked.
func NewKindPicker(defaults ...mermaid.Kind) KindPicker {
	kinds := mermaid.Kinds()
	checked := make(map[int]bool)
	for i, kind := range kinds {
		for _, d := range defaults {
			if kind == d {
				checked[i] = true
			}
		}
	}
	return KindPicker{
		Kinds:   kinds,
		Checked: checked,
	}
}

// Focus enables keyboard handling.
func (p *KindPicker) Focus() { p.focused = true }

// Blur disables keyboard handling.
func (p *KindPicker) Blur() { p.focused = false }

// Focused reports whether this picker is receiving keys.
func (p KindPicker) Focused() bool { return p.focused }

// Update handles navigation and toggling.
func (p KindPicker) Update(msg tea.Msg) (KindPicker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Kinds)-1 {
			p.Cursor++
		}
	case " ", "x":
		p.Checked[p.Cursor] = !p.Checked[p.Cursor]
	}

	return p, nil
}

// Selection returns the checked kinds in display order.
func (p KindPicker) Selection() []mermaid.Kind {
	var out []mermaid.Kind
	for i, kind := range p.Kinds {
		if p.Checked[i] {
			out = append(out, kind)
		}
	}
	return out
}

// View renders the picker.
func (p KindPicker) View() string {
	var s string
	for i, kind := range p.Kinds {
		box := "[ ]"
		if p.Checked[i] {
			box = "[x]"
		}

		line := fmt.Sprintf("%s %s", box, kind)
		switch {
		case p.focused && i == p.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n"
		case p.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line) + "\n"
		}
	}
	return s
}
