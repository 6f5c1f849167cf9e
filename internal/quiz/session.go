package quiz

import (
	"sync/atomic"

	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/topics"
)

// User-facing error copy, matching the product's Vietnamese voice.
const (
	msgEmptyQuiz  = "Không thể tạo câu hỏi. Vui lòng thử lại."
	msgAPIFailure = "Có lỗi xảy ra khi kết nối API."
)

// Status is the quiz session's lifecycle state.
type Status int

const (
	// StatusNoTopic: no topic selected yet; Start is a no-op.
	StatusNoTopic Status = iota

	// StatusReady: topic selected, no quiz generated.
	StatusReady

	// StatusGenerating: one generation request is in flight.
	StatusGenerating

	// StatusActive: questions loaded, progressing through them.
	StatusActive

	// StatusFinished: terminal; read-only until Reset.
	StatusFinished

	// StatusError: generation failed or came back empty; Start retries.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNoTopic:
		return "no-topic"
	case StatusReady:
		return "ready"
	case StatusGenerating:
		return "generating"
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// epochCounter issues epochs unique across all quiz session instances.
var epochCounter atomic.Int64

// Session owns the quiz state machine. It performs no I/O: Start marks the
// generation request the caller must issue, and ApplyQuestions/ApplyFailure
// integrate the outcome, discarding anything carrying a stale epoch.
//
// Core invariants, enforced here and checked by tests:
//   - score == count of answered indices whose answer equals the correct one
//   - each question is answered at most once; Answer is the only score path
//   - answered indices never exceed the current index (no answering ahead)
//   - progression is strictly forward; Finished is terminal until Reset
type Session struct {
	topic     *topics.Topic
	status    Status
	questions []quizgen.Question
	current   int
	score     int
	answers   map[int]string
	errText   string
	epoch     int64
}

// NewSession creates a session in StatusNoTopic or StatusReady depending on
// whether a topic is already selected.
func NewSession(topic *topics.Topic) *Session {
	s := &Session{epoch: epochCounter.Add(1)}
	s.setTopic(topic)
	return s
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Topic returns the selected topic, or nil.
func (s *Session) Topic() *topics.Topic { return s.topic }

// Epoch returns the session's current liveness epoch.
func (s *Session) Epoch() int64 { return s.epoch }

// ErrorMessage returns the user-facing message for StatusError.
func (s *Session) ErrorMessage() string { return s.errText }

// Len returns the number of questions in the active quiz.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the active question index.
func (s *Session) Current() int { return s.current }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// CurrentQuestion returns the question at the active index, or nil outside
// StatusActive.
func (s *Session) CurrentQuestion() *quizgen.Question {
	if s.status != StatusActive {
		return nil
	}
	return &s.questions[s.current]
}

// AnswerFor returns the recorded answer for a question index. A key exists
// if and only if that question has been answered.
func (s *Session) AnswerFor(i int) (string, bool) {
	a, ok := s.answers[i]
	return a, ok
}

// Answered reports whether the current question has a recorded answer.
func (s *Session) Answered() bool {
	_, ok := s.answers[s.current]
	return ok
}

// TopicChanged reacts to an external topic switch. Any quiz state belongs
// to the old topic and is discarded; a generation still in flight is
// orphaned by the epoch bump.
func (s *Session) TopicChanged(t topics.Topic) {
	s.setTopic(&t)
}

// Start marks a generation request for the caller to issue. It is a guarded
// no-op (ok=false) without a topic, while a request is already in flight,
// or during an active quiz.
func (s *Session) Start() (epoch int64, ok bool) {
	if s.topic == nil {
		return 0, false
	}
	switch s.status {
	case StatusReady, StatusError:
		s.status = StatusGenerating
		s.errText = ""
		s.epoch = epochCounter.Add(1)
		return s.epoch, true
	}
	return 0, false
}

// ApplyQuestions integrates a successful generation result. An empty list
// is a valid service outcome but not a playable quiz, so it lands in
// StatusError with a retry path. Stale results are discarded.
func (s *Session) ApplyQuestions(epoch int64, qs []quizgen.Question) bool {
	if !s.live(epoch) {
		return false
	}
	if len(qs) == 0 {
		s.status = StatusError
		s.errText = msgEmptyQuiz
		return true
	}
	s.status = StatusActive
	s.questions = qs
	s.current = 0
	s.score = 0
	s.answers = make(map[int]string, len(qs))
	return true
}

// ApplyFailure integrates a failed generation attempt. Stale failures are
// discarded like stale results.
func (s *Session) ApplyFailure(epoch int64) bool {
	if !s.live(epoch) {
		return false
	}
	s.status = StatusError
	s.errText = msgAPIFailure
	return true
}

// Answer records the chosen option for the current question and counts the
// score when it matches the correct answer. This is the only transition
// that can increase score, and it fires at most once per question: a second
// call for an answered question is ignored, not an error.
func (s *Session) Answer(option string) bool {
	if s.status != StatusActive {
		return false
	}
	if _, dup := s.answers[s.current]; dup {
		return false
	}
	s.answers[s.current] = option
	if option == s.questions[s.current].CorrectAnswer {
		s.score++
	}
	return true
}

// Advance moves to the next question, or to StatusFinished from the last
// one. It is a no-op while the current question is unanswered. There is no
// backward navigation.
func (s *Session) Advance() bool {
	if s.status != StatusActive {
		return false
	}
	if _, ok := s.answers[s.current]; !ok {
		return false
	}
	if s.current == len(s.questions)-1 {
		s.status = StatusFinished
		return true
	}
	s.current++
	return true
}

// Reset discards all quiz state, keeping the topic, and bumps the epoch so
// any in-flight generation is orphaned. Always available.
func (s *Session) Reset() {
	s.setTopic(s.topic)
}

func (s *Session) setTopic(topic *topics.Topic) {
	s.topic = topic
	if topic == nil {
		s.status = StatusNoTopic
	} else {
		s.status = StatusReady
	}
	s.questions = nil
	s.current = 0
	s.score = 0
	s.answers = nil
	s.errText = ""
	s.epoch = epochCounter.Add(1)
}

func (s *Session) live(epoch int64) bool {
	return s.status == StatusGenerating && epoch == s.epoch
}
