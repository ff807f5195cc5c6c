package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/dbquest/internal/content"
)

const (
	matchingCount  = 4
	matchingPoints = 15
)

// MatchOutcome is the result of a right-side selection.
type MatchOutcome int

const (
	// MatchIgnored means the selection had no effect (no left term
	// selected, or the pair was already locked).
	MatchIgnored MatchOutcome = iota

	// MatchLocked means the pairing was correct and is now locked.
	MatchLocked

	// MatchMiss means the pairing was wrong; the left term is marked
	// as having had an error.
	MatchMiss
)

// MatchBoard runs the terminology matching mission: four pairs, left
// term selected first, then a right term. A correct pairing locks both
// sides and awards 15 points exactly once; a wrong pairing taints the
// left term but the learner keeps trying until every pair is locked.
// Max score: 4×15 = 60.
type MatchBoard struct {
	pairs  []content.MatchingPair
	rights []content.RightCard

	selectedLeft string
	locked       map[string]bool
	tainted      map[string]bool
	score        int
}

// NewMatchBoard selects four pairs for the level and shuffles the
// right-hand column independently of the left.
func NewMatchBoard(level int, rng *rand.Rand) *MatchBoard {
	pairs := content.Pick(content.TerminologyPool, level, matchingCount, rng)
	return &MatchBoard{
		pairs:   pairs,
		rights:  content.ShuffledRights(pairs, rng),
		locked:  make(map[string]bool),
		tainted: make(map[string]bool),
	}
}

// Pairs returns the left-hand column in display order.
func (b *MatchBoard) Pairs() []content.MatchingPair { return b.pairs }

// Rights returns the shuffled right-hand column.
func (b *MatchBoard) Rights() []content.RightCard { return b.rights }

// SelectLeft marks a left term as the active selection. Locked terms
// cannot be re-selected.
func (b *MatchBoard) SelectLeft(pairID string) bool {
	if b.locked[pairID] {
		return false
	}
	b.selectedLeft = pairID
	return true
}

// SelectedLeft returns the active left selection, or "".
func (b *MatchBoard) SelectedLeft() string { return b.selectedLeft }

// SelectRight attempts to pair the active left term with a right card.
// Identifiers matching means a correct pair: both sides lock and 15
// points are awarded, exactly once per pair. A mismatch taints the left
// term; repeated mismatches on the same term do not stack.
func (b *MatchBoard) SelectRight(pairID string) MatchOutcome {
	if b.locked[pairID] || b.selectedLeft == "" {
		return MatchIgnored
	}

	if b.selectedLeft == pairID {
		// Locking awards the pair's points exactly once; earlier wrong
		// attempts only affect review correctness, not the score.
		b.locked[pairID] = true
		b.score += matchingPoints
		b.selectedLeft = ""
		return MatchLocked
	}

	b.tainted[b.selectedLeft] = true
	b.selectedLeft = ""
	return MatchMiss
}

// Locked reports whether a pair is locked.
func (b *MatchBoard) Locked(pairID string) bool { return b.locked[pairID] }

// Tainted reports whether a wrong attempt was made on the pair's left
// term before it was resolved.
func (b *MatchBoard) Tainted(pairID string) bool { return b.tainted[pairID] }

// Complete reports whether every pair is locked.
func (b *MatchBoard) Complete() bool {
	return len(b.pairs) > 0 && len(b.locked) == len(b.pairs)
}

// Result returns the stage outcome: one review item per pair, in the
// left-column display order. A pair resolved after any wrong attempt is
// reviewed as incorrect even though it was eventually matched.
func (b *MatchBoard) Result() StageResult {
	items := make([]ReviewItem, 0, len(b.pairs))
	for _, p := range b.pairs {
		wrong := b.tainted[p.ID]
		answer := p.Right
		if wrong {
			answer = "(오답 선택)"
		}
		items = append(items, ReviewItem{
			ID:            "t-" + p.ID,
			Stage:         LabelMatching,
			Question:      fmt.Sprintf("엑셀의 '%s'에 해당하는 DB 용어는?", p.Left),
			UserAnswer:    answer,
			CorrectAnswer: p.Right,
			IsCorrect:     !wrong,
			Explanation:   fmt.Sprintf("%s은(는) 데이터베이스에서 %s라고 부릅니다.", p.Left, p.Right),
		})
	}
	return StageResult{ScoreDelta: b.score, ReviewItems: items}
}
