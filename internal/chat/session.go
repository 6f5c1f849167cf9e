package chat

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/tuanvm/physitutor/internal/topics"
)

// User-facing copy. The product speaks Vietnamese to its students.
const (
	greetingWithTopic = "Chào bạn! Mình là trợ lý ảo về chủ đề **%s**. Bạn cần giúp đỡ về lý thuyết hay bài tập nào không?"
	greetingNoTopic   = "Chào bạn! Mình là PhysiTutor. Hãy chọn một chủ đề hoặc hỏi mình bất cứ điều gì về Vật Lý THPT nhé!"
	topicSwitchNotice = "Chúng ta đã chuyển sang chủ đề **%s**. Có phần nào bạn cảm thấy khó hiểu không?"

	// ErrorReply is appended as an error-flagged model message when a
	// generation request fails. The failure is swallowed here; this
	// message is the only error signal the caller sees.
	ErrorReply = "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại."
)

// epochCounter issues epochs that are unique across all session instances,
// so a late resolution can never be mistaken for one belonging to a
// different (newer) session that happens to be busy.
var epochCounter atomic.Int64

// Session owns the conversation message log and enforces the
// single-outstanding-request rule. It is a plain state object with no I/O:
// callers issue the generation request described by Submit's Request and
// feed the outcome back through Resolve or Fail.
//
// State machine: Idle → (Submit) → awaiting response → (Resolve|Fail) → Idle.
// Submissions while awaiting are rejected, not queued.
type Session struct {
	messages []Message
	busy     bool
	epoch    int64
}

// Request describes one chat generation call the caller must issue.
// History holds every turn as it existed before the submission, oldest
// first; Prompt is the new user text. Epoch must be passed back on
// resolution so stale results can be discarded.
type Request struct {
	Prompt  string
	History []Turn
	Epoch   int64
}

// NewSession creates a session seeded with exactly one greeting message.
// The greeting text depends on whether a topic is already selected.
func NewSession(topic *topics.Topic) *Session {
	s := &Session{epoch: epochCounter.Add(1)}
	if topic != nil {
		s.messages = append(s.messages, newMessage(RoleModel, fmt.Sprintf(greetingWithTopic, topic.Name)))
	} else {
		s.messages = append(s.messages, newMessage(RoleModel, greetingNoTopic))
	}
	return s
}

// Messages returns the current message log, oldest first.
func (s *Session) Messages() []Message {
	return s.messages
}

// Busy reports whether a generation request is outstanding. Input
// submission is disabled while busy.
func (s *Session) Busy() bool {
	return s.busy
}

// Epoch returns the session's current liveness epoch.
func (s *Session) Epoch() int64 {
	return s.epoch
}

// TopicChanged appends a model message announcing the switch. Prior history
// is preserved so the model keeps its context.
func (s *Session) TopicChanged(t topics.Topic) {
	s.messages = append(s.messages, newMessage(RoleModel, fmt.Sprintf(topicSwitchNotice, t.Name)))
}

// Submit records a user turn and returns the generation request the caller
// must issue. It is a guarded no-op (ok=false) when text is blank or a
// request is already in flight. The history snapshot excludes the message
// being submitted.
func (s *Session) Submit(text string) (Request, bool) {
	if strings.TrimSpace(text) == "" || s.busy {
		return Request{}, false
	}

	history := make([]Turn, len(s.messages))
	for i, m := range s.messages {
		history[i] = Turn{Role: m.Role, Text: m.Text}
	}

	s.messages = append(s.messages, newMessage(RoleUser, text))
	s.busy = true

	return Request{Prompt: text, History: history, Epoch: s.epoch}, true
}

// Resolve integrates a successful generation result. Results carrying a
// stale epoch, or arriving when no request is outstanding, are discarded.
func (s *Session) Resolve(epoch int64, text string) bool {
	if !s.live(epoch) {
		return false
	}
	s.messages = append(s.messages, newMessage(RoleModel, text))
	s.busy = false
	return true
}

// Fail integrates a failed generation attempt by appending the fixed
// error-flagged apology. Stale failures are discarded like stale results.
func (s *Session) Fail(epoch int64) bool {
	if !s.live(epoch) {
		return false
	}
	m := newMessage(RoleModel, ErrorReply)
	m.IsError = true
	s.messages = append(s.messages, m)
	s.busy = false
	return true
}

// Reset discards the log and reseeds the greeting. The epoch is bumped so
// any resolution still in flight is ignored when it lands.
func (s *Session) Reset(topic *topics.Topic) {
	fresh := NewSession(topic)
	*s = *fresh
}

func (s *Session) live(epoch int64) bool {
	return s.busy && epoch == s.epoch
}
