package game

import (
	"math/rand/v2"

	"github.com/abhisek/dbquest/internal/content"
)

const (
	scenarioCount  = 2
	scenarioPoints = 15
)

// ScenarioRound runs the technology-choice mission: two level-selected
// scenarios, binary choice each, no retry. Max score: 2×15 = 30.
type ScenarioRound struct {
	scenarios []content.TechScenario
	index     int
	score     int
	results   []ReviewItem
}

// NewScenarioRound selects two scenarios for the level.
func NewScenarioRound(level int, rng *rand.Rand) *ScenarioRound {
	return &ScenarioRound{
		scenarios: content.Pick(content.TechPool, level, scenarioCount, rng),
	}
}

// Current returns the scenario awaiting a choice, or false when the
// round is over.
func (r *ScenarioRound) Current() (content.TechScenario, bool) {
	if r.index >= len(r.scenarios) {
		return content.TechScenario{}, false
	}
	return r.scenarios[r.index], true
}

// Progress reports answered and total scenario counts.
func (r *ScenarioRound) Progress() (answered, total int) {
	return r.index, len(r.scenarios)
}

// Choose judges the option at the given index and immediately advances;
// there is no retry. Returns the correctness of the choice.
func (r *ScenarioRound) Choose(option int) bool {
	s, ok := r.Current()
	if !ok || option < 0 || option >= len(s.Options) {
		return false
	}

	chosen := s.Options[option]
	if chosen.Correct {
		r.score += scenarioPoints
	}

	r.results = append(r.results, ReviewItem{
		ID:            "s-" + s.ID,
		Stage:         LabelScenario,
		Question:      s.Prompt,
		UserAnswer:    chosen.Label,
		CorrectAnswer: s.CorrectOption(),
		IsCorrect:     chosen.Correct,
		Explanation:   s.Explanation,
	})

	r.index++
	return chosen.Correct
}

// Done reports whether every scenario has been answered.
func (r *ScenarioRound) Done() bool {
	return r.index >= len(r.scenarios)
}

// Result returns the stage outcome: one review item per scenario.
func (r *ScenarioRound) Result() StageResult {
	return StageResult{ScoreDelta: r.score, ReviewItems: r.results}
}
