package game

import "errors"

// Validation errors surfaced inline by the intro screen.
var (
	ErrKeyTooShort = errors.New("API key must be at least 10 characters")
)

// Mission labels stamped onto review items, shown on the report screen.
const (
	LabelClassify = "Mission 1: RAM vs DISK"
	LabelEssay    = "Mission 1: 심화 질문"
	LabelMatching = "Mission 2: 용어 매칭"
	LabelKeyPick  = "Mission 3: PK 선정"
	LabelScenario = "Final Mission: 기술 선정"
)

// ReviewItem is the normalized record of one judged answer. Items are
// immutable once created and owned by the session after a stage hands
// them up.
type ReviewItem struct {
	ID            string
	Stage         string
	Question      string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Explanation   string
}
