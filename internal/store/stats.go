package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ModelUsage aggregates LLM token consumption per model.
type ModelUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// PlaySummary aggregates the local play history.
type PlaySummary struct {
	Runs       int
	BestScore  int
	LastPlayed time.Time
}

// StageBreakdown aggregates per-mission accuracy across all runs.
type StageBreakdown struct {
	Stage        string
	Completions  int
	CorrectItems int
	TotalItems   int
}

// LLMUsage returns per-model token usage, ordered by request count.
func (s *Store) LLMUsage(ctx context.Context) ([]ModelUsage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
			model,
			COUNT(*),
			SUM(CASE WHEN success THEN 0 ELSE 1 END),
			SUM(input_tokens),
			SUM(output_tokens),
			AVG(latency_ms)
		FROM llm_request_events
		GROUP BY model
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.Failures,
			&u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Plays returns the run-level summary: completed runs, best run total
// and the last time anything was logged.
func (s *Store) Plays(ctx context.Context) (PlaySummary, error) {
	var sum PlaySummary
	var last sql.NullString

	err := s.db.QueryRowContext(ctx, `SELECT
			COALESCE(MAX(total_score), 0),
			MAX(created_at)
		FROM stage_result_events`).Scan(&sum.BestScore, &last)
	if err != nil {
		return PlaySummary{}, fmt.Errorf("query play summary: %w", err)
	}

	// A run is complete when its final mission lands in the log.
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stage_result_events WHERE stage = ?`,
		"scenarios").Scan(&sum.Runs)
	if err != nil {
		return PlaySummary{}, fmt.Errorf("query run count: %w", err)
	}

	if last.Valid {
		if t, err := time.Parse("2006-01-02 15:04:05", last.String); err == nil {
			sum.LastPlayed = t
		}
	}
	return sum, nil
}

// Stages returns per-mission accuracy, in play order of first appearance.
func (s *Store) Stages(ctx context.Context) ([]StageBreakdown, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
			stage,
			COUNT(*),
			SUM(correct_items),
			SUM(total_items)
		FROM stage_result_events
		GROUP BY stage
		ORDER BY MIN(sequence)`)
	if err != nil {
		return nil, fmt.Errorf("query stage breakdown: %w", err)
	}
	defer rows.Close()

	var out []StageBreakdown
	for rows.Next() {
		var b StageBreakdown
		if err := rows.Scan(&b.Stage, &b.Completions, &b.CorrectItems, &b.TotalItems); err != nil {
			return nil, fmt.Errorf("scan stage breakdown: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
