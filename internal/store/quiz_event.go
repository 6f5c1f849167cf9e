package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// quizRepo implements QuizRepo on plain database/sql.
type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results
			(timestamp, topic_id, topic_name, outcome, question_count, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		data.TopicID,
		data.TopicName,
		data.Outcome,
		data.QuestionCount,
		data.Score,
	)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	return nil
}

func (r *quizRepo) RecentResults(ctx context.Context, limit int) ([]QuizResult, error) {
	query := `SELECT id, timestamp, topic_id, topic_name, outcome, question_count, score
		FROM quiz_results ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var q QuizResult
		var ts int64
		if err := rows.Scan(&q.ID, &ts, &q.TopicID, &q.TopicName,
			&q.Outcome, &q.QuestionCount, &q.Score); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		q.Timestamp = time.Unix(ts, 0)
		results = append(results, q)
	}
	return results, rows.Err()
}

func (r *quizRepo) StatsByTopic(ctx context.Context) ([]TopicStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic_id, topic_name, COUNT(*),
			COALESCE(SUM(question_count), 0), COALESCE(SUM(score), 0)
		 FROM quiz_results
		 WHERE outcome = ?
		 GROUP BY topic_id, topic_name
		 ORDER BY topic_name`, QuizOutcomeFinished)
	if err != nil {
		return nil, fmt.Errorf("query topic stats: %w", err)
	}
	defer rows.Close()

	var stats []TopicStats
	for rows.Next() {
		var s TopicStats
		if err := rows.Scan(&s.TopicID, &s.TopicName, &s.Quizzes, &s.Questions, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan topic stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
