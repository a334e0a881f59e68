package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/ui/theme"
)

// OptionList presents a question's answer options. The client never knows
// the correct answer up front — the server judges — so highlighting of the
// correct/chosen options only happens after Resolve is called with the
// scoring result.
type OptionList struct {
	Options  []string
	Selected int
	Disabled bool // true while a submission is in flight

	resolved      bool
	chosen        string
	correctAnswer string
}

// NewOptionList creates an option list with the first option selected.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update handles keyboard navigation. Selection is frozen while the list is
// disabled or after the result is shown.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Disabled || o.resolved {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// Value returns the currently selected option text, or "" when empty.
func (o OptionList) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected]
}

// Resolve records the scoring result so the view can highlight the correct
// answer and, when wrong, the chosen one.
func (o *OptionList) Resolve(chosen, correctAnswer string) {
	o.resolved = true
	o.chosen = chosen
	o.correctAnswer = correctAnswer
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.resolved && !o.Disabled {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		switch {
		case o.resolved && opt == o.correctAnswer:
			s += theme.Correct.Render(line) + "\n"
		case o.resolved && opt == o.chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.resolved || o.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
