package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuanvm/physitutor/internal/ui/theme"
)

// OptionLabels are the answer labels shown next to quiz options.
var OptionLabels = []string{"A", "B", "C", "D"}

// OptionList renders a quiz question's answer options. It only owns the
// cursor; the caller decides when an answer is locked in and feeds back the
// reveal state (Answered, Chosen, Correct).
type OptionList struct {
	Question string
	Options  []string
	Selected int

	Answered bool
	Chosen   string // option text the student picked
	Correct  string // the correct option text
}

// NewOptionList creates an option list for one question.
func NewOptionList(question string, options []string) OptionList {
	return OptionList{
		Question: question,
		Options:  options,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Answer submission is handled by the caller.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Answered {
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

// SelectedOption returns the option text under the cursor.
func (o OptionList) SelectedOption() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected]
}

// Reveal marks the list answered and records what to highlight.
func (o *OptionList) Reveal(chosen, correct string) {
	o.Answered = true
	o.Chosen = chosen
	o.Correct = correct
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		label := ""
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}
		prefix := "  "
		if i == o.Selected && !o.Answered {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Answered && opt == o.Correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Answered && opt == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Answered:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
