package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/dbquest/internal/content"
)

// keyPoints is the fixed award for finishing the key-selection mission.
// Only post-hoc PK correctness is graded, so the award does not depend
// on the number of attempts.
const keyPoints = 20

// pkExplanation is the canonical explanation attached to the review item.
const pkExplanation = "기본 키(Primary Key)는 중복되지 않아야 하며(Unique), 시간이 지나도 변하지 않는(NotNull/Immutable) 속성을 가져야 합니다."

// KeyPhase is the key-selection mission phase.
type KeyPhase int

const (
	// PhasePick has the learner choosing a primary-key column.
	PhasePick KeyPhase = iota

	// PhaseIndex runs the fixed-outcome index timing demo.
	PhaseIndex

	// PhaseDone marks the stage as complete.
	PhaseDone
)

// KeyRound runs the primary-key selection mission: one table scenario
// per level. Picking an ineligible column shows a rejection and records
// the attempt without advancing; picking the eligible column moves to
// the index demo, which has no decision logic.
type KeyRound struct {
	scenario content.TableScenario
	phase    KeyPhase
	rejects  []string
}

// NewKeyRound selects one table scenario for the level.
func NewKeyRound(level int, rng *rand.Rand) *KeyRound {
	scenario, _ := content.PickOne(content.TablePool, level, rng)
	return &KeyRound{scenario: scenario}
}

// Scenario returns the active table scenario.
func (r *KeyRound) Scenario() content.TableScenario { return r.scenario }

// Phase returns the current mission phase.
func (r *KeyRound) Phase() KeyPhase { return r.phase }

// Pick submits a column choice. An ineligible column is a recoverable
// rejection: the attempt is recorded and the phase does not change.
// The eligible column advances to the index demo.
func (r *KeyRound) Pick(columnID string) bool {
	if r.phase != PhasePick {
		return false
	}
	for _, c := range r.scenario.Columns {
		if c.ID == columnID && c.PKEligible {
			r.phase = PhaseIndex
			return true
		}
	}
	r.rejects = append(r.rejects, columnID)
	return false
}

// RejectedAttempts returns the number of ineligible picks made before
// the eligible column was found.
func (r *KeyRound) RejectedAttempts() int { return len(r.rejects) }

// FinishIndexDemo marks the index simulation as watched, completing the
// stage.
func (r *KeyRound) FinishIndexDemo() {
	if r.phase == PhaseIndex {
		r.phase = PhaseDone
	}
}

// Done reports whether the stage is complete.
func (r *KeyRound) Done() bool { return r.phase == PhaseDone }

// Result returns the fixed 20-point award and a single review item.
// Any rejected attempt before the eventual correct pick grades the item
// as incorrect, the same tainted-success policy as the matching board.
func (r *KeyRound) Result() StageResult {
	pk, _ := r.scenario.PKColumn()

	wrong := len(r.rejects) > 0
	answer := pk.Label
	if wrong {
		answer = "오답 선택 후 정답 맞춤"
	}

	item := ReviewItem{
		ID:            "pk-select",
		Stage:         LabelKeyPick,
		Question:      fmt.Sprintf("%s의 기본 키(PK)로 가장 적절한 것은?", r.scenario.Title),
		UserAnswer:    answer,
		CorrectAnswer: pk.Label,
		IsCorrect:     !wrong,
		Explanation:   pkExplanation,
	}

	return StageResult{ScoreDelta: keyPoints, ReviewItems: []ReviewItem{item}}
}
