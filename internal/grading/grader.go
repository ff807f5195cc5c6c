package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"text/template"
	"time"

	"github.com/abhisek/dbquest/internal/content"
	"github.com/abhisek/dbquest/internal/llm"
)

// Fallback feedback returned without calling the LLM. The mission never
// blocks on grading: a missing key or a failed call both resolve as a
// lenient pass so the learner can continue.
const (
	feedbackNoKey = "API 키가 설정되지 않아 정답 처리되었습니다. (실제 운영 시 API Key를 입력해주세요.)"
	feedbackError = "AI 분석 중 오류가 발생하여 정답 처리되었습니다."
)

// GraderConfig holds configuration for the essay grader.
type GraderConfig struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single grading call end to end, including
	// middleware retries.
	Timeout time.Duration
}

// DefaultGraderConfig returns sensible defaults.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:   256,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}

// Verdict is the outcome of grading one free-text answer.
type Verdict struct {
	IsCorrect bool
	Feedback  string

	// Fallback is true when the verdict came from a lenient fallback
	// rather than an actual LLM judgment.
	Fallback bool
}

// Grader evaluates free-text answers against an essay prompt's target
// concept. A nil provider means no API key was supplied; Evaluate then
// returns the no-key fallback without any network traffic.
type Grader struct {
	provider llm.Provider
	cfg      GraderConfig
}

// NewGrader creates an essay grader. provider may be nil.
func NewGrader(provider llm.Provider, cfg GraderConfig) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// answerCheckOutput is the raw LLM response.
type answerCheckOutput struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

// Evaluate grades a learner's free-text answer. It never returns an
// error: any failure (no provider, timeout, bad response) degrades to a
// lenient pass with an explanatory feedback message.
func (g *Grader) Evaluate(ctx context.Context, prompt content.EssayPrompt, userAnswer string) Verdict {
	if g.provider == nil {
		return Verdict{IsCorrect: true, Feedback: feedbackNoKey, Fallback: true}
	}

	ctx = llm.WithPurpose(ctx, "essay-grade")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	userMsg, err := buildCheckMessage(prompt, userAnswer)
	if err != nil {
		return Verdict{IsCorrect: true, Feedback: feedbackError, Fallback: true}
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: checkSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnswerCheckSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return Verdict{IsCorrect: true, Feedback: feedbackError, Fallback: true}
	}

	var raw answerCheckOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Verdict{IsCorrect: true, Feedback: feedbackError, Fallback: true}
	}

	return Verdict{IsCorrect: raw.IsCorrect, Feedback: raw.Feedback}
}

const checkSystemPrompt = `You are grading answers in a database teaching material for beginners. The learner answers in Korean.

Instructions:
- Judge whether the answer demonstrates understanding of the core concept. Partial but essentially correct understanding passes.
- Give short constructive feedback in Korean, under 100 characters.
- Output JSON only.`

var checkUserTemplate = template.Must(template.New("answer-check").Parse(`Core concept to match: {{.Concept}}
Question: {{.Question}}
Learner's answer: "{{.Answer}}"`))

func buildCheckMessage(prompt content.EssayPrompt, userAnswer string) (string, error) {
	var buf bytes.Buffer
	err := checkUserTemplate.Execute(&buf, struct {
		Concept  string
		Question string
		Answer   string
	}{prompt.Concept, prompt.Question, userAnswer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
