package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	chatsess "github.com/tuanvm/physitutor/internal/chat"
	"github.com/tuanvm/physitutor/internal/ui/theme"
)

const disclaimer = "PhysiTutor có thể mắc lỗi. Hãy kiểm tra lại các công thức quan trọng."

func (c *ChatScreen) View(width, height int) string {
	inputLine := theme.Body.Render("> ") + c.input.View()
	disclaimerLine := theme.Hint.Render(disclaimer)

	var statusLine string
	if c.session.Busy() {
		statusLine = c.spin.View() + theme.Hint.Render(" Gia sư đang soạn câu trả lời...")
	}

	// Reserve rows for the input, disclaimer and optional status line.
	logHeight := height - 3
	if statusLine != "" {
		logHeight--
	}
	if logHeight < 1 {
		logHeight = 1
	}

	log := c.renderLog(width, logHeight)

	parts := []string{log}
	if statusLine != "" {
		parts = append(parts, statusLine)
	}
	parts = append(parts, "", inputLine, disclaimerLine)

	return strings.Join(parts, "\n")
}

// renderLog renders the newest messages that fit in the given height,
// oldest of the visible window first.
func (c *ChatScreen) renderLog(width, height int) string {
	msgs := c.session.Messages()

	rendered := make([]string, len(msgs))
	for i, m := range msgs {
		rendered[i] = renderMessage(m, width)
	}

	// Take messages from the end until the height budget runs out.
	var lines []string
	for i := len(rendered) - 1; i >= 0; i-- {
		block := strings.Split(rendered[i], "\n")
		if len(lines)+len(block)+1 > height && len(lines) > 0 {
			break
		}
		block = append(block, "")
		lines = append(block, lines...)
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	// Pad the top so the log sticks to the bottom.
	for len(lines) < height {
		lines = append([]string{""}, lines...)
	}

	return strings.Join(lines, "\n")
}

func renderMessage(m chatsess.Message, width int) string {
	wrap := lipgloss.NewStyle().Width(width - 4)

	switch {
	case m.IsError:
		label := theme.Incorrect.Render("PhysiTutor")
		return label + "\n" + wrap.Foreground(theme.Error).Render(m.Text)
	case m.Role == chatsess.RoleUser:
		label := theme.Selected.Render("Bạn")
		return label + "\n" + wrap.Foreground(theme.Text).Render(m.Text)
	default:
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("PhysiTutor")
		return label + "\n" + wrap.Foreground(theme.Text).Render(renderBoldSegments(m.Text))
	}
}

// renderBoldSegments renders **segments** of tutor replies in bold, the one
// bit of markdown the model is prompted to use.
func renderBoldSegments(text string) string {
	parts := strings.Split(text, "**")
	if len(parts) < 3 {
		return text
	}

	bold := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)

	var b strings.Builder
	for i, part := range parts {
		// Odd indices are inside a ** pair; a trailing unmatched marker
		// stays literal.
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(bold.Render(part))
		} else if i%2 == 1 {
			b.WriteString("**" + part)
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}
