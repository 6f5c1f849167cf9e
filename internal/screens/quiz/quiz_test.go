package quiz

import (
	"context"
	"errors"
	"testing"

	quizsess "github.com/tuanvm/physitutor/internal/quiz"
	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/store"
	"github.com/tuanvm/physitutor/internal/topics"
)

type fakeGenerator struct {
	result quizgen.Result
	err    error
}

func (f *fakeGenerator) Generate(context.Context, string) (quizgen.Result, error) {
	return f.result, f.err
}

type fakeQuizRepo struct {
	results []store.QuizResultData
}

func (f *fakeQuizRepo) AppendQuizResult(_ context.Context, data store.QuizResultData) error {
	f.results = append(f.results, data)
	return nil
}

func (f *fakeQuizRepo) RecentResults(context.Context, int) ([]store.QuizResult, error) {
	return nil, nil
}

func (f *fakeQuizRepo) StatsByTopic(context.Context) ([]store.TopicStats, error) {
	return nil, nil
}

func testQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, n)
	for i := range qs {
		qs[i] = quizgen.Question{
			Question:      "Câu hỏi",
			Options:       []string{"A1", "B1", "C1", "D1"},
			CorrectAnswer: "A1",
			Explanation:   "Giải thích",
		}
	}
	return qs
}

func testTopic() topics.Topic {
	return topics.Catalog[0]
}

func TestQuestionsLoadOptionList(t *testing.T) {
	s := New(&fakeGenerator{}, &fakeQuizRepo{}, testTopic())

	epoch, ok := s.session.Start()
	if !ok {
		t.Fatal("start rejected")
	}

	s.Update(questionsMsg{Epoch: epoch, Result: quizgen.Result{Questions: testQuestions(3)}})

	if s.session.Status() != quizsess.StatusActive {
		t.Fatalf("expected active, got %s", s.session.Status())
	}
	if s.options.Question != "Câu hỏi" {
		t.Fatalf("option list not loaded: %+v", s.options)
	}
}

func TestStaleQuestionsDiscarded(t *testing.T) {
	s := New(&fakeGenerator{}, &fakeQuizRepo{}, testTopic())

	epoch, ok := s.session.Start()
	if !ok {
		t.Fatal("start rejected")
	}

	// Reset orphans the in-flight generation.
	s.session.Reset()

	s.Update(questionsMsg{Epoch: epoch, Result: quizgen.Result{Questions: testQuestions(3)}})

	if s.session.Status() != quizsess.StatusReady {
		t.Fatalf("expected ready, got %s", s.session.Status())
	}
}

func TestEmptyResultRecordsEmptyOutcome(t *testing.T) {
	repo := &fakeQuizRepo{}
	s := New(&fakeGenerator{}, repo, testTopic())

	epoch, _ := s.session.Start()
	_, cmd := s.Update(questionsMsg{Epoch: epoch, Result: quizgen.Result{}})

	if s.session.Status() != quizsess.StatusError {
		t.Fatalf("expected error status, got %s", s.session.Status())
	}
	if cmd == nil {
		t.Fatal("expected outcome-recording command")
	}
	cmd()

	if len(repo.results) != 1 || repo.results[0].Outcome != store.QuizOutcomeEmpty {
		t.Fatalf("expected empty outcome recorded, got %+v", repo.results)
	}
}

func TestFailureRecordsFailedOutcome(t *testing.T) {
	repo := &fakeQuizRepo{}
	s := New(&fakeGenerator{}, repo, testTopic())

	epoch, _ := s.session.Start()
	_, cmd := s.Update(genFailedMsg{Epoch: epoch, Err: errors.New("down")})

	if s.session.Status() != quizsess.StatusError {
		t.Fatalf("expected error status, got %s", s.session.Status())
	}
	if cmd == nil {
		t.Fatal("expected outcome-recording command")
	}
	cmd()

	if len(repo.results) != 1 || repo.results[0].Outcome != store.QuizOutcomeFailed {
		t.Fatalf("expected failed outcome recorded, got %+v", repo.results)
	}
}

func TestFullRunRecordsScore(t *testing.T) {
	repo := &fakeQuizRepo{}
	s := New(&fakeGenerator{}, repo, testTopic())

	epoch, _ := s.session.Start()
	s.Update(questionsMsg{Epoch: epoch, Result: quizgen.Result{Questions: testQuestions(2)}})

	// Answer the first question with the default cursor (correct answer).
	s.handleEnter()
	if !s.session.Answered() {
		t.Fatal("first question should be answered")
	}
	// Advance to the second question.
	s.handleEnter()
	if s.session.Current() != 1 {
		t.Fatalf("expected question index 1, got %d", s.session.Current())
	}

	// Pick a wrong option for the second question.
	s.options.Selected = 1
	s.handleEnter()

	// Advance off the last question finishes the quiz.
	_, cmd := s.handleEnter()
	if s.session.Status() != quizsess.StatusFinished {
		t.Fatalf("expected finished, got %s", s.session.Status())
	}
	if cmd == nil {
		t.Fatal("expected outcome-recording command")
	}
	cmd()

	if len(repo.results) != 1 {
		t.Fatalf("expected 1 recorded result, got %d", len(repo.results))
	}
	r := repo.results[0]
	if r.Outcome != store.QuizOutcomeFinished || r.QuestionCount != 2 || r.Score != 1 {
		t.Fatalf("unexpected recorded result: %+v", r)
	}
}

func TestGenerateCommandCarriesEpoch(t *testing.T) {
	s := New(&fakeGenerator{result: quizgen.Result{Questions: testQuestions(5)}}, &fakeQuizRepo{}, testTopic())

	cmd := s.startGeneration()
	if cmd == nil {
		t.Fatal("expected generation command")
	}
	if s.session.Status() != quizsess.StatusGenerating {
		t.Fatalf("expected generating, got %s", s.session.Status())
	}
}
