package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEvent is a stored LLM request record, as read back for inspection.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
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

// LLMEvents returns the most recent LLM request events, newest first.
func (s *Store) LLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
			id, created_at, provider, model, purpose,
			input_tokens, output_tokens, latency_ms,
			success, error_message, request_body, response_body
		FROM llm_request_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LLMEvent returns a single event by ID, or nil when it doesn't exist.
func (s *Store) LLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
			id, created_at, provider, model, purpose,
			input_tokens, output_tokens, latency_ms,
			success, error_message, request_body, response_body
		FROM llm_request_events
		WHERE id = ?`, id)

	e, err := scanLLMEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanLLMEvent(scan func(...any) error) (LLMEvent, error) {
	var e LLMEvent
	var created string
	err := scan(&e.ID, &created, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs,
		&e.Success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if err == sql.ErrNoRows {
		return LLMEvent{}, err
	}
	if err != nil {
		return LLMEvent{}, fmt.Errorf("scan LLM event: %w", err)
	}
	if t, perr := time.Parse("2006-01-02 15:04:05", created); perr == nil {
		e.Timestamp = t.UTC()
	}
	return e, nil
}
