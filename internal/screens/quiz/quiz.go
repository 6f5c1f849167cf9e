// Package quiz implements the multiple-choice quiz screen.
package quiz

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	quizsess "github.com/tuanvm/physitutor/internal/quiz"
	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/router"
	"github.com/tuanvm/physitutor/internal/screen"
	"github.com/tuanvm/physitutor/internal/store"
	"github.com/tuanvm/physitutor/internal/topics"
	"github.com/tuanvm/physitutor/internal/ui/components"
	"github.com/tuanvm/physitutor/internal/ui/layout"
	"github.com/tuanvm/physitutor/internal/ui/theme"
)

const generateTimeout = 90 * time.Second

// QuizGenerator produces quiz questions. *quizgen.Generator implements it.
type QuizGenerator interface {
	Generate(ctx context.Context, topicName string) (quizgen.Result, error)
}

// QuizScreen implements screen.Screen for the quiz flow.
type QuizScreen struct {
	session   *quizsess.Session
	generator QuizGenerator
	quizRepo  store.QuizRepo
	topic     topics.Topic
	options   components.OptionList
	spin      spinner.Model
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen with a fresh session for the given topic.
func New(generator QuizGenerator, quizRepo store.QuizRepo, topic topics.Topic) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return &QuizScreen{
		session:   quizsess.NewSession(&topic),
		generator: generator,
		quizRepo:  quizRepo,
		topic:     topic,
		spin:      sp,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Trắc nghiệm"
}

// TopicName is shown in the header.
func (q *QuizScreen) TopicName() string {
	return q.topic.Name
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.session.Status() {
	case quizsess.StatusReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Bắt đầu"},
			{Key: "Esc", Description: "Quay lại"},
		}
	case quizsess.StatusGenerating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quay lại"},
		}
	case quizsess.StatusActive:
		if q.session.Answered() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Câu tiếp theo"},
				{Key: "Esc", Description: "Quay lại"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Chọn đáp án"},
			{Key: "Enter", Description: "Trả lời"},
			{Key: "Esc", Description: "Quay lại"},
		}
	case quizsess.StatusFinished:
		return []layout.KeyHint{
			{Key: "r", Description: "Làm lại"},
			{Key: "Esc", Description: "Quay lại"},
		}
	case quizsess.StatusError:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Thử lại"},
			{Key: "Esc", Description: "Quay lại"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if !q.session.ApplyQuestions(msg.Epoch, msg.Result.Questions) {
			return q, nil
		}
		if q.session.Status() == quizsess.StatusError {
			// Generation succeeded but produced nothing usable.
			return q, q.recordOutcome(store.QuizOutcomeEmpty)
		}
		q.loadCurrentQuestion()
		return q, nil

	case genFailedMsg:
		if !q.session.ApplyFailure(msg.Epoch) {
			return q, nil
		}
		return q, q.recordOutcome(store.QuizOutcomeFailed)

	case spinner.TickMsg:
		if q.session.Status() != quizsess.StatusGenerating {
			return q, nil
		}
		var cmd tea.Cmd
		q.spin, cmd = q.spin.Update(msg)
		return q, cmd

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch q.session.Status() {
	case quizsess.StatusReady, quizsess.StatusError:
		if key == "enter" {
			return q, q.startGeneration()
		}

	case quizsess.StatusActive:
		if key == "enter" {
			return q.handleEnter()
		}
		if !q.session.Answered() {
			var cmd tea.Cmd
			q.options, cmd = q.options.Update(msg)
			return q, cmd
		}

	case quizsess.StatusFinished:
		if key == "r" {
			q.session.Reset()
			return q, nil
		}
	}

	return q, nil
}

// handleEnter either locks in the selected answer or advances to the next
// question, mirroring the session's answer-then-advance progression.
func (q *QuizScreen) handleEnter() (screen.Screen, tea.Cmd) {
	question := q.session.CurrentQuestion()
	if question == nil {
		return q, nil
	}

	if !q.session.Answered() {
		chosen := q.options.SelectedOption()
		if q.session.Answer(chosen) {
			q.options.Reveal(chosen, question.CorrectAnswer)
		}
		return q, nil
	}

	q.session.Advance()
	if q.session.Status() == quizsess.StatusFinished {
		return q, q.recordOutcome(store.QuizOutcomeFinished)
	}
	q.loadCurrentQuestion()
	return q, nil
}

// startGeneration transitions the session and issues the generation request.
func (q *QuizScreen) startGeneration() tea.Cmd {
	epoch, ok := q.session.Start()
	if !ok {
		return nil
	}

	generate := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		result, err := q.generator.Generate(ctx, q.topic.Name)
		if err != nil {
			return genFailedMsg{Epoch: epoch, Err: err}
		}
		return questionsMsg{Epoch: epoch, Result: result}
	}

	return tea.Batch(q.spin.Tick, generate)
}

// loadCurrentQuestion rebuilds the option list for the active question.
func (q *QuizScreen) loadCurrentQuestion() {
	question := q.session.CurrentQuestion()
	if question == nil {
		return
	}
	q.options = components.NewOptionList(question.Question, question.Options)
}

// recordOutcome persists the quiz outcome without blocking the UI.
func (q *QuizScreen) recordOutcome(outcome string) tea.Cmd {
	if q.quizRepo == nil {
		return nil
	}

	data := store.QuizResultData{
		TopicID:   q.topic.ID,
		TopicName: q.topic.Name,
		Outcome:   outcome,
	}
	if outcome == store.QuizOutcomeFinished {
		data.QuestionCount = q.session.Len()
		data.Score = q.session.Score()
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = q.quizRepo.AppendQuizResult(ctx, data)
		return nil
	}
}
