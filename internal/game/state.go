// Package game implements the session state machine and the per-stage
// answer evaluation rules. It owns all scoring decisions; screens only
// render its state and forward learner input.
package game

import (
	"strings"

	"github.com/abhisek/dbquest/internal/content"
)

// Stage identifies one of the five sequential missions plus the intro.
type Stage int

const (
	StageIntro Stage = iota
	StagePersistence
	StageTerminology
	StageKeysIndex
	StageScenarios
	StageCompletion
)

// Next returns the hardcoded successor stage. Completion is terminal
// for forward progress; restarting is handled by State.Restart.
func (s Stage) Next() Stage {
	switch s {
	case StageIntro:
		return StagePersistence
	case StagePersistence:
		return StageTerminology
	case StageTerminology:
		return StageKeysIndex
	case StageKeysIndex:
		return StageScenarios
	case StageScenarios:
		return StageCompletion
	default:
		return StageCompletion
	}
}

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StagePersistence:
		return "persistence"
	case StageTerminology:
		return "terminology"
	case StageKeysIndex:
		return "keys-index"
	case StageScenarios:
		return "scenarios"
	case StageCompletion:
		return "completion"
	default:
		return "unknown"
	}
}

const (
	// MaxScore is the XP ceiling shown to the player. The per-stage
	// maxima sum to 170 under perfect play; 100 is a display target,
	// not an enforced cap.
	MaxScore = 100

	// MinKeyLength is the minimum API key length accepted at intro.
	MinKeyLength = 10

	// DefaultName is used when the player submits an empty name.
	DefaultName = "Architect"
)

// Credentials selects the grading provider for this session.
type Credentials struct {
	Provider string // "gemini", "openai", "anthropic" or "openrouter"
	APIKey   string
}

// HasKey reports whether an API key is present.
func (c Credentials) HasKey() bool {
	return c.APIKey != ""
}

// StageResult is what a completed stage hands back to the session.
type StageResult struct {
	ScoreDelta  int
	ReviewItems []ReviewItem
}

// State is the single session state, owned by the stage machine and
// mutated only through its transition methods. It lives for one
// playthrough and is rebuilt in place on restart.
type State struct {
	SessionID   string
	Stage       Stage
	Score       int
	PlayerName  string
	Level       int
	ReviewItems []ReviewItem
	Credentials Credentials

	// Plays counts completed intro submissions plus restarts, for the
	// diagnostics log.
	Plays int
}

// NewState creates a fresh session at the intro stage, level 1.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Stage:     StageIntro,
		Level:     content.MinLevel,
	}
}

// SubmitIntro records the player name and grading credentials and
// enters the first mission. The API key must be at least MinKeyLength
// characters; an empty name falls back to DefaultName. The intro screen
// additionally gates submission on a non-empty name, matching the
// credential-entry rules.
func (s *State) SubmitIntro(name string, creds Credentials) error {
	if len(creds.APIKey) < MinKeyLength {
		return ErrKeyTooShort
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	s.PlayerName = name
	s.Credentials = creds
	s.Stage = StagePersistence
	s.Plays++
	return nil
}

// ApplyStageResult accumulates a completed stage's score delta and
// review items, then advances to the fixed next stage.
func (s *State) ApplyStageResult(r StageResult) {
	s.Score += r.ScoreDelta
	s.ReviewItems = append(s.ReviewItems, r.ReviewItems...)
	s.Stage = s.Stage.Next()
}

// Restart begins a new playthrough from the completion screen: score
// and review items reset, name and credentials are kept, the intro is
// skipped, and the difficulty level increases by one, clamped at the
// maximum. Restarting at the ceiling keeps the level unchanged.
func (s *State) Restart() {
	s.Score = 0
	s.ReviewItems = nil
	s.Stage = StagePersistence
	if s.Level < content.MaxLevel {
		s.Level++
	}
	s.Plays++
}
