// Package chat implements the tutoring conversation screen.
package chat

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	chatsess "github.com/tuanvm/physitutor/internal/chat"
	"github.com/tuanvm/physitutor/internal/router"
	"github.com/tuanvm/physitutor/internal/screen"
	"github.com/tuanvm/physitutor/internal/topics"
	"github.com/tuanvm/physitutor/internal/ui/components"
	"github.com/tuanvm/physitutor/internal/ui/layout"
	"github.com/tuanvm/physitutor/internal/ui/theme"
)

const requestTimeout = 60 * time.Second

// ChatService produces tutor replies. *tutor.Service implements it.
type ChatService interface {
	SendChatMessage(ctx context.Context, text string, history []chatsess.Turn) (string, error)
}

// ChatScreen implements screen.Screen for the conversation.
type ChatScreen struct {
	session *chatsess.Session
	svc     ChatService
	topic   topics.Topic
	input   components.ChatInput
	spin    spinner.Model
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen with a fresh session for the given topic.
func New(svc ChatService, topic topics.Topic) *ChatScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return &ChatScreen{
		session: chatsess.NewSession(&topic),
		svc:     svc,
		topic:   topic,
		input:   components.NewChatInput("Nhập câu hỏi của bạn..."),
		spin:    sp,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Hỏi đáp"
}

// TopicName is shown in the header.
func (c *ChatScreen) TopicName() string {
	return c.topic.Name
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.session.Busy() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quay lại"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Gửi"},
		{Key: "Ctrl+T", Description: "Đổi chủ đề"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chatResponseMsg:
		c.session.Resolve(msg.Epoch, msg.Text)
		return c, nil

	case chatFailedMsg:
		c.session.Fail(msg.Epoch)
		return c, nil

	case spinner.TickMsg:
		if !c.session.Busy() {
			return c, nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+t":
			c.topic = topics.Next(&c.topic)
			c.session.TopicChanged(c.topic)
			return c, nil
		case "enter":
			req, ok := c.session.Submit(c.input.Value())
			if !ok {
				return c, nil
			}
			c.input.Clear()
			return c, tea.Batch(c.spin.Tick, c.sendMessage(req))
		}
	}

	// Forward everything else to the input while idle.
	if !c.session.Busy() {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

// sendMessage issues the generation request described by req.
func (c *ChatScreen) sendMessage(req chatsess.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := c.svc.SendChatMessage(ctx, req.Prompt, req.History)
		if err != nil {
			return chatFailedMsg{Epoch: req.Epoch, Err: err}
		}
		return chatResponseMsg{Epoch: req.Epoch, Text: reply}
	}
}
