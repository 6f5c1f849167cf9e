// Package app wires the Bubble Tea root model: router, frame and global keys.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/router"
	"github.com/tuanvm/physitutor/internal/screen"
	"github.com/tuanvm/physitutor/internal/screens/home"
	"github.com/tuanvm/physitutor/internal/store"
	"github.com/tuanvm/physitutor/internal/tutor"
	"github.com/tuanvm/physitutor/internal/ui/layout"
)

// Options carries the services the screens depend on.
type Options struct {
	Tutor     *tutor.Service
	Generator *quizgen.Generator
	QuizRepo  store.QuizRepo
}

// topicNamer is implemented by screens that know their current topic.
type topicNamer interface {
	TopicName() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Tutor, opts.Generator, opts.QuizRepo)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
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
	topicName := ""
	if active != nil {
		title = active.Title()
		if tn, ok := active.(topicNamer); ok {
			topicName = tn.TopicName()
		}
	}

	header := layout.RenderHeader(title, topicName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Thoát"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
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
