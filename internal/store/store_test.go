package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openTestStore(t)

	var count int
	err := s.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('llm_events', 'quiz_results')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("query schema: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 tables, got %d", count)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gemini-2.0-flash", Purpose: "chat", InputTokens: 120, OutputTokens: 340, LatencyMs: 900, Success: true, RequestBody: "[user]\nxin chào", ResponseBody: "Chào em!"},
		{Model: "gemini-2.0-flash", Purpose: "quiz-gen", InputTokens: 80, OutputTokens: 1200, LatencyMs: 2100, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "chat", Success: false, ErrorMessage: "provider unavailable"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Success || got[0].ErrorMessage != "provider unavailable" {
		t.Fatalf("expected failed chat event first, got %+v", got[0])
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "quiz-gen" {
		t.Fatalf("expected 1 quiz-gen event, got %+v", filtered)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events, got %d", len(limited))
	}
}

func TestEventRepo_GetLLMEventIncludesBodies(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "mock",
		Purpose:      "chat",
		Success:      true,
		RequestBody:  "[user]\ncon lắc đơn",
		ResponseBody: "T = 2π√(l/g)",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.RequestBody != "[user]\ncon lắc đơn" || e.ResponseBody != "T = 2π√(l/g)" {
		t.Fatalf("bodies not round-tripped: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestEventRepo_UsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Purpose: "chat", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Purpose: "chat", InputTokens: 50, OutputTokens: 100, LatencyMs: 3000, Success: true},
		{Purpose: "quiz-gen", InputTokens: 80, OutputTokens: 900, LatencyMs: 2000, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(stats))
	}

	// Sorted by purpose: chat, quiz-gen.
	chat := stats[0]
	if chat.Purpose != "chat" || chat.Calls != 2 || chat.InputTokens != 150 || chat.OutputTokens != 300 {
		t.Fatalf("unexpected chat stats: %+v", chat)
	}
	if chat.AvgLatencyMs != 2000 {
		t.Fatalf("expected avg latency 2000, got %d", chat.AvgLatencyMs)
	}
}

func TestQuizRepo_AppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	for _, r := range []QuizResultData{
		{TopicID: "mechanics", TopicName: "Cơ học", Outcome: QuizOutcomeFinished, QuestionCount: 5, Score: 4},
		{TopicID: "mechanics", TopicName: "Cơ học", Outcome: QuizOutcomeFinished, QuestionCount: 5, Score: 2},
		{TopicID: "waves", TopicName: "Sóng ánh sáng", Outcome: QuizOutcomeFailed},
	} {
		if err := repo.AppendQuizResult(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.RecentResults(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 results, got %d", len(recent))
	}
	if recent[0].Outcome != QuizOutcomeFailed {
		t.Fatalf("expected failed result first, got %+v", recent[0])
	}

	stats, err := repo.StatsByTopic(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	// Only finished quizzes aggregate; the failed waves attempt is excluded.
	if len(stats) != 1 {
		t.Fatalf("expected 1 topic in stats, got %d", len(stats))
	}
	m := stats[0]
	if m.TopicID != "mechanics" || m.Quizzes != 2 || m.Questions != 10 || m.Correct != 6 {
		t.Fatalf("unexpected mechanics stats: %+v", m)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "db.sqlite")
	t.Setenv("PHYSITUTOR_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != p {
		t.Fatalf("expected %q, got %q", p, got)
	}
}
