package store

import "context"

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
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

// StageResultEventData captures one completed mission within a run.
type StageResultEventData struct {
	SessionID    string
	PlayerName   string
	Stage        string
	Level        int
	ScoreDelta   int
	TotalScore   int
	CorrectItems int
	TotalItems   int
}

// EventRepo provides append access to the play log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendStageResult records a completed mission.
	AppendStageResult(ctx context.Context, data StageResultEventData) error
}
