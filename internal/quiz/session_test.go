package quiz

import (
	"fmt"
	"testing"

	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/topics"
)

func mechanics() *topics.Topic {
	t, _ := topics.Find("mechanics")
	return &t
}

// threeQuestions builds a quiz whose correct answers are "A", "B", "C".
func threeQuestions() []quizgen.Question {
	qs := make([]quizgen.Question, 3)
	for i, correct := range []string{"A", "B", "C"} {
		qs[i] = quizgen.Question{
			Question:      fmt.Sprintf("Câu %d", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: correct,
			Explanation:   "giải thích",
		}
	}
	return qs
}

// activeSession returns a session already in StatusActive with 3 questions.
func activeSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(mechanics())
	epoch, ok := s.Start()
	if !ok {
		t.Fatal("Start rejected")
	}
	if s.Status() != StatusGenerating {
		t.Fatalf("status = %v, want generating", s.Status())
	}
	if !s.ApplyQuestions(epoch, threeQuestions()) {
		t.Fatal("ApplyQuestions discarded")
	}
	if s.Status() != StatusActive {
		t.Fatalf("status = %v, want active", s.Status())
	}
	return s
}

func TestStartRequiresTopic(t *testing.T) {
	s := NewSession(nil)
	if s.Status() != StatusNoTopic {
		t.Fatalf("status = %v, want no-topic", s.Status())
	}
	if _, ok := s.Start(); ok {
		t.Error("Start without topic must be a no-op")
	}
}

func TestStartIsSingleFlight(t *testing.T) {
	s := NewSession(mechanics())
	if _, ok := s.Start(); !ok {
		t.Fatal("Start rejected")
	}
	if _, ok := s.Start(); ok {
		t.Error("second Start while generating must be rejected")
	}
}

func TestScoreCountsMatchingAnswers(t *testing.T) {
	s := activeSession(t)

	// Answers "A", "X", "C" against correct "A", "B", "C".
	for _, a := range []string{"A", "X", "C"} {
		if !s.Answer(a) {
			t.Fatalf("Answer(%q) rejected", a)
		}
		if !s.Advance() {
			t.Fatal("Advance rejected after answer")
		}
	}

	if s.Status() != StatusFinished {
		t.Errorf("status = %v, want finished", s.Status())
	}
	if s.Score() != 2 {
		t.Errorf("score = %d, want 2", s.Score())
	}
	want := map[int]string{0: "A", 1: "X", 2: "C"}
	for i, w := range want {
		got, ok := s.AnswerFor(i)
		if !ok || got != w {
			t.Errorf("answers[%d] = %q,%v, want %q", i, got, ok, w)
		}
	}
	if s.Current() != s.Len()-1 {
		t.Errorf("current = %d, want last index %d", s.Current(), s.Len()-1)
	}
}

func TestAnswerFiresAtMostOncePerQuestion(t *testing.T) {
	s := activeSession(t)

	if !s.Answer("A") {
		t.Fatal("first answer rejected")
	}
	if s.Answer("B") {
		t.Error("re-answering must be ignored")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if got, _ := s.AnswerFor(0); got != "A" {
		t.Errorf("recorded answer = %q, want the first one", got)
	}

	// Repeating the correct answer must not double-count either.
	if s.Answer("A") {
		t.Error("re-answering must be ignored")
	}
	if s.Score() != 1 {
		t.Errorf("score after duplicate = %d, want 1", s.Score())
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := activeSession(t)

	if s.Advance() {
		t.Error("Advance with unanswered question must be a no-op")
	}
	s.Answer("A")
	if !s.Advance() {
		t.Fatal("Advance rejected after answer")
	}
	if s.Current() != 1 {
		t.Errorf("current = %d, want 1", s.Current())
	}
	// Idempotent against a repeat call until the next answer lands.
	if s.Advance() {
		t.Error("second Advance before answering must be a no-op")
	}
}

func TestAnswersNeverExceedCurrentIndex(t *testing.T) {
	s := activeSession(t)
	s.Answer("A")
	s.Advance()

	for i := range s.Len() {
		if _, ok := s.AnswerFor(i); ok && i > s.Current() {
			t.Errorf("answer recorded at index %d beyond current %d", i, s.Current())
		}
	}
}

func TestFinishedIsTerminal(t *testing.T) {
	s := activeSession(t)
	for range 3 {
		s.Answer("A")
		s.Advance()
	}
	if s.Status() != StatusFinished {
		t.Fatalf("status = %v, want finished", s.Status())
	}
	if s.Answer("A") {
		t.Error("Answer after finish must be rejected")
	}
	if s.Advance() {
		t.Error("Advance after finish must be rejected")
	}
	if _, ok := s.Start(); ok {
		t.Error("Start from finished must go through Reset first")
	}

	s.Reset()
	if s.Status() != StatusReady {
		t.Errorf("status after reset = %v, want ready", s.Status())
	}
	if s.Score() != 0 || s.Len() != 0 {
		t.Error("reset must discard quiz state")
	}
}

func TestEmptyResultIsErrorNotActive(t *testing.T) {
	s := NewSession(mechanics())
	epoch, _ := s.Start()

	if !s.ApplyQuestions(epoch, nil) {
		t.Fatal("empty result discarded")
	}
	if s.Status() != StatusError {
		t.Errorf("status = %v, want error", s.Status())
	}
	if s.ErrorMessage() == "" {
		t.Error("error state must expose a user-facing message")
	}

	// Retry leaves no residue from the failed attempt.
	epoch2, ok := s.Start()
	if !ok {
		t.Fatal("retry Start rejected")
	}
	if !s.ApplyQuestions(epoch2, threeQuestions()) {
		t.Fatal("retry result discarded")
	}
	if s.Status() != StatusActive || s.Score() != 0 || s.Current() != 0 {
		t.Errorf("retry state: status=%v score=%d current=%d", s.Status(), s.Score(), s.Current())
	}
}

func TestApplyFailureSetsRetryableError(t *testing.T) {
	s := NewSession(mechanics())
	epoch, _ := s.Start()

	if !s.ApplyFailure(epoch) {
		t.Fatal("failure discarded")
	}
	if s.Status() != StatusError {
		t.Errorf("status = %v, want error", s.Status())
	}
	if _, ok := s.Start(); !ok {
		t.Error("Start after failure must be allowed")
	}
}

func TestStaleResolutionIsDiscarded(t *testing.T) {
	s := NewSession(mechanics())
	epoch, _ := s.Start()

	// Session is torn down before resolution.
	s.Reset()
	if s.ApplyQuestions(epoch, threeQuestions()) {
		t.Error("stale questions applied after reset")
	}
	if s.ApplyFailure(epoch) {
		t.Error("stale failure applied after reset")
	}
	if s.Status() != StatusReady {
		t.Errorf("status = %v, want ready", s.Status())
	}

	// Even a session that is generating again must reject the old epoch.
	epoch2, _ := s.Start()
	if epoch2 == epoch {
		t.Fatal("epochs must not repeat")
	}
	if s.ApplyQuestions(epoch, threeQuestions()) {
		t.Error("old epoch accepted by new generation")
	}
	if !s.ApplyQuestions(epoch2, threeQuestions()) {
		t.Error("current epoch rejected")
	}
}

func TestTopicChangedDiscardsQuizState(t *testing.T) {
	s := activeSession(t)
	s.Answer("A")

	next, _ := topics.Find("waves")
	s.TopicChanged(next)

	if s.Status() != StatusReady {
		t.Errorf("status = %v, want ready", s.Status())
	}
	if s.Topic() == nil || s.Topic().ID != "waves" {
		t.Error("topic not updated")
	}
	if s.Len() != 0 || s.Score() != 0 {
		t.Error("quiz state survived topic change")
	}
}
