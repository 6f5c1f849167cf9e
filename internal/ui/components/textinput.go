package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput for the chat prompt line.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused chat input.
func NewChatInput(placeholder string) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Focus()

	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input line.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the current input value.
func (c ChatInput) Value() string {
	return c.Model.Value()
}

// Clear empties the input.
func (c *ChatInput) Clear() {
	c.Model.SetValue("")
}

// SetWidth resizes the input to fit the terminal.
func (c *ChatInput) SetWidth(w int) {
	c.Model.SetWidth(w)
}
