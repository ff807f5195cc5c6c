package game

import (
	"math/rand/v2"

	"github.com/abhisek/dbquest/internal/content"
)

const (
	classifyCount  = 4
	classifyPoints = 10
	essayPoints    = 20
)

// ClassifyRound runs the RAM-vs-DISK sorting mission: four level-selected
// cards judged locally, then one free-text question graded externally.
// Max score: 4×10 + 20 = 60.
type ClassifyRound struct {
	items   []content.ClassificationItem
	essay   content.EssayPrompt
	index   int
	score   int
	results []ReviewItem

	essayGraded bool
}

// NewClassifyRound selects four cards and one essay prompt for the
// level. The essay is selected independently from the cards.
func NewClassifyRound(level int, rng *rand.Rand) *ClassifyRound {
	items := content.Pick(content.ClassificationPool, level, classifyCount, rng)
	essay, _ := content.PickOne(content.EssayPool, level, rng)
	return &ClassifyRound{items: items, essay: essay}
}

// Current returns the card awaiting an answer, or false when all cards
// have been answered.
func (r *ClassifyRound) Current() (content.ClassificationItem, bool) {
	if r.index >= len(r.items) {
		return content.ClassificationItem{}, false
	}
	return r.items[r.index], true
}

// Progress reports answered and total card counts.
func (r *ClassifyRound) Progress() (answered, total int) {
	return r.index, len(r.items)
}

// Answer judges the current card against the chosen storage kind,
// awards points, records a review item and advances. A wrong choice
// costs nothing. Returns the correctness of the choice.
func (r *ClassifyRound) Answer(choice content.Storage) bool {
	item, ok := r.Current()
	if !ok {
		return false
	}

	correct := item.Answer == choice
	if correct {
		r.score += classifyPoints
	}

	r.results = append(r.results, ReviewItem{
		ID:            "p-" + item.ID,
		Stage:         LabelClassify,
		Question:      item.Text,
		UserAnswer:    string(choice),
		CorrectAnswer: string(item.Answer),
		IsCorrect:     correct,
		Explanation:   item.Explanation,
	})

	r.index++
	return correct
}

// ItemsDone reports whether all cards are answered and the essay phase
// has begun.
func (r *ClassifyRound) ItemsDone() bool {
	return r.index >= len(r.items)
}

// Essay returns the free-text prompt for this round.
func (r *ClassifyRound) Essay() content.EssayPrompt {
	return r.essay
}

// GradeEssay records the external grading verdict for the learner's
// free-text answer. A correct verdict awards 20 points. Grading is
// recorded at most once.
func (r *ClassifyRound) GradeEssay(userAnswer string, isCorrect bool, feedback string) {
	if r.essayGraded {
		return
	}
	r.essayGraded = true

	r.results = append(r.results, ReviewItem{
		ID:            "p-essay",
		Stage:         LabelEssay,
		Question:      r.essay.Question,
		UserAnswer:    userAnswer,
		CorrectAnswer: r.essay.ModelAnswer,
		IsCorrect:     isCorrect,
		Explanation:   feedback,
	})

	if isCorrect {
		r.score += essayPoints
	}
}

// Done reports whether the stage is complete.
func (r *ClassifyRound) Done() bool {
	return r.ItemsDone() && r.essayGraded
}

// Result returns the stage outcome: the score delta and one review item
// per judged answer (four cards plus the essay).
func (r *ClassifyRound) Result() StageResult {
	return StageResult{ScoreDelta: r.score, ReviewItems: r.results}
}
