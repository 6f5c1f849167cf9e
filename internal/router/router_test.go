package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tuanvm/physitutor/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "chat"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "chat" {
		t.Errorf("expected active 'chat', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "chat"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "chat" {
		t.Errorf("expected active 'chat', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "chat"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "chat" {
		t.Errorf("expected active 'chat', got %q", r.Active().Title())
	}

	s3 := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}
