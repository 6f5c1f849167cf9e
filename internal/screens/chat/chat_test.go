package chat

import (
	"context"
	"errors"
	"testing"

	chatsess "github.com/tuanvm/physitutor/internal/chat"
	"github.com/tuanvm/physitutor/internal/topics"
)

type stubService struct {
	reply string
	err   error
}

func (s *stubService) SendChatMessage(context.Context, string, []chatsess.Turn) (string, error) {
	return s.reply, s.err
}

func testTopic() topics.Topic {
	return topics.Catalog[0]
}

func TestResponseAppendsReply(t *testing.T) {
	s := New(&stubService{reply: "T = 2π√(l/g)"}, testTopic())

	req, ok := s.session.Submit("Công thức chu kỳ con lắc đơn?")
	if !ok {
		t.Fatal("submit rejected")
	}
	before := len(s.session.Messages())

	s.Update(chatResponseMsg{Epoch: req.Epoch, Text: "T = 2π√(l/g)"})

	msgs := s.session.Messages()
	if len(msgs) != before+1 {
		t.Fatalf("expected %d messages, got %d", before+1, len(msgs))
	}
	last := msgs[len(msgs)-1]
	if last.Role != chatsess.RoleModel || last.Text != "T = 2π√(l/g)" {
		t.Fatalf("unexpected last message: %+v", last)
	}
	if s.session.Busy() {
		t.Fatal("session should be idle after resolution")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := New(&stubService{}, testTopic())

	req, ok := s.session.Submit("câu hỏi")
	if !ok {
		t.Fatal("submit rejected")
	}
	before := len(s.session.Messages())

	s.Update(chatResponseMsg{Epoch: req.Epoch - 1, Text: "stale reply"})

	if len(s.session.Messages()) != before {
		t.Fatal("stale response must not modify the log")
	}
	if !s.session.Busy() {
		t.Fatal("session should still be awaiting the live response")
	}
}

func TestFailureAppendsErrorReply(t *testing.T) {
	s := New(&stubService{err: errors.New("down")}, testTopic())

	req, ok := s.session.Submit("câu hỏi")
	if !ok {
		t.Fatal("submit rejected")
	}

	s.Update(chatFailedMsg{Epoch: req.Epoch, Err: errors.New("down")})

	msgs := s.session.Messages()
	last := msgs[len(msgs)-1]
	if !last.IsError || last.Text != chatsess.ErrorReply {
		t.Fatalf("expected error reply, got %+v", last)
	}
	if s.session.Busy() {
		t.Fatal("session should be idle after failure")
	}
}

func TestSendMessageCommandCarriesEpoch(t *testing.T) {
	s := New(&stubService{reply: "ok"}, testTopic())

	req, ok := s.session.Submit("xin chào")
	if !ok {
		t.Fatal("submit rejected")
	}

	msg := s.sendMessage(req)()
	resp, ok := msg.(chatResponseMsg)
	if !ok {
		t.Fatalf("expected chatResponseMsg, got %T", msg)
	}
	if resp.Epoch != req.Epoch {
		t.Fatalf("expected epoch %d, got %d", req.Epoch, resp.Epoch)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected reply: %q", resp.Text)
	}
}

func TestSendMessageCommandReportsFailure(t *testing.T) {
	s := New(&stubService{err: errors.New("quota")}, testTopic())

	req, ok := s.session.Submit("xin chào")
	if !ok {
		t.Fatal("submit rejected")
	}

	msg := s.sendMessage(req)()
	failed, ok := msg.(chatFailedMsg)
	if !ok {
		t.Fatalf("expected chatFailedMsg, got %T", msg)
	}
	if failed.Epoch != req.Epoch {
		t.Fatalf("expected epoch %d, got %d", req.Epoch, failed.Epoch)
	}
}
