// Package home implements the landing screen: topic selection and mode menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/router"
	"github.com/tuanvm/physitutor/internal/screen"
	chatscreen "github.com/tuanvm/physitutor/internal/screens/chat"
	quizscreen "github.com/tuanvm/physitutor/internal/screens/quiz"
	"github.com/tuanvm/physitutor/internal/store"
	"github.com/tuanvm/physitutor/internal/topics"
	"github.com/tuanvm/physitutor/internal/tutor"
	"github.com/tuanvm/physitutor/internal/ui/components"
	"github.com/tuanvm/physitutor/internal/ui/layout"
	"github.com/tuanvm/physitutor/internal/ui/theme"
)

type mode int

const (
	modeTopics mode = iota // picking a topic
	modeMenu               // choosing what to do with it
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	mode      mode
	topicMenu components.Menu
	mainMenu  components.Menu
	topic     *topics.Topic

	tutorSvc  *tutor.Service
	generator *quizgen.Generator
	quizRepo  store.QuizRepo
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tutorSvc *tutor.Service, generator *quizgen.Generator, quizRepo store.QuizRepo) *HomeScreen {
	h := &HomeScreen{
		mode:      modeTopics,
		tutorSvc:  tutorSvc,
		generator: generator,
		quizRepo:  quizRepo,
	}
	h.topicMenu = components.NewMenu(h.topicItems())
	h.mainMenu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) topicItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(topics.Catalog))
	for _, t := range topics.Catalog {
		topic := t
		items = append(items, components.MenuItem{
			Label:       topic.Name,
			Description: topic.Description,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return topics.SelectedMsg{Topic: topic}
				}
			},
		})
	}
	return items
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Hỏi đáp cùng gia sư", Description: "chat với PhysiTutor", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chatscreen.New(h.tutorSvc, *h.topic),
				}
			}
		}},
		{Label: "Trắc nghiệm nhanh", Description: "5 câu hỏi theo chủ đề", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(h.generator, h.quizRepo, *h.topic),
				}
			}
		}},
		{Label: "Thoát", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topics.SelectedMsg:
		t := msg.Topic
		h.topic = &t
		h.mode = modeMenu
		return h, nil

	case tea.KeyMsg:
		if h.mode == modeMenu && msg.String() == "t" {
			h.mode = modeTopics
			return h, nil
		}
	}

	var cmd tea.Cmd
	switch h.mode {
	case modeTopics:
		h.topicMenu, cmd = h.topicMenu.Update(msg)
	case modeMenu:
		h.mainMenu, cmd = h.mainMenu.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("PhysiTutor")
	subtitle := theme.Subtitle.Width(width).Render("Gia sư Vật Lý 12 — luyện thi THPT Quốc gia")

	var body string
	switch h.mode {
	case modeTopics:
		heading := theme.Body.Render("  Chọn chủ đề:")
		body = heading + "\n\n" + h.topicMenu.View()
	case modeMenu:
		heading := theme.Body.Render(fmt.Sprintf("  Chủ đề: %s", h.topic.Name))
		body = heading + "\n\n" + h.mainMenu.View()
	}

	content := strings.Join([]string{title, subtitle, "", body}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingTop(2).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Trang chính"
}

// Topic returns the currently selected topic, or nil before first selection.
func (h *HomeScreen) Topic() *topics.Topic {
	return h.topic
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.mode == modeTopics {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Di chuyển"},
			{Key: "Enter", Description: "Chọn chủ đề"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Di chuyển"},
		{Key: "Enter", Description: "Chọn"},
		{Key: "t", Description: "Đổi chủ đề"},
	}
}
