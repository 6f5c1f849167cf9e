package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited), newest first
	Purpose string // filter by purpose ("" = all)
}

// LLMRequestEventData captures the data for a single generation request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored generation request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	Model     string
	Purpose   string

	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to generation request events.
type EventRepo interface {
	// AppendLLMRequest records a generation API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, without bodies.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event with full bodies, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}

// Quiz outcomes recorded in quiz_results.
const (
	QuizOutcomeFinished = "finished" // student answered all questions
	QuizOutcomeEmpty    = "empty"    // generation returned no usable questions
	QuizOutcomeFailed   = "failed"   // generation request failed
)

// QuizResultData captures one quiz outcome.
type QuizResultData struct {
	TopicID       string
	TopicName     string
	Outcome       string
	QuestionCount int
	Score         int
}

// QuizResult is a stored quiz outcome.
type QuizResult struct {
	ID        int
	Timestamp time.Time
	TopicID   string
	TopicName string
	Outcome   string

	QuestionCount int
	Score         int
}

// TopicStats aggregates finished quizzes for one topic.
type TopicStats struct {
	TopicID   string
	TopicName string
	Quizzes   int
	Questions int
	Correct   int
}

// QuizRepo provides append and query access to quiz outcomes.
type QuizRepo interface {
	// AppendQuizResult records a quiz outcome.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// RecentResults returns quiz results newest first.
	RecentResults(ctx context.Context, limit int) ([]QuizResult, error)

	// StatsByTopic aggregates finished quizzes per topic.
	StatsByTopic(ctx context.Context) ([]TopicStats, error)
}
