// Package content holds the static question bank consumed by the game
// stages, plus the difficulty-aware selection helpers. Records are
// immutable: gameplay only selects them and copies fields into review
// items.
package content

// MinLevel and MaxLevel bound the difficulty range used across all pools.
const (
	MinLevel = 1
	MaxLevel = 4
)

// Storage is the answer category for a classification item.
type Storage string

const (
	StorageRAM  Storage = "RAM"
	StorageDisk Storage = "DISK"
)

// Record is the common shape of every pool entry.
type Record interface {
	// Key returns the identifier, unique within its pool.
	Key() string

	// Level returns the difficulty (1-4).
	Level() int
}

// ClassificationItem is a single RAM-vs-DISK sorting card.
type ClassificationItem struct {
	ID          string
	Difficulty  int
	Text        string
	Answer      Storage
	Explanation string
}

func (c ClassificationItem) Key() string { return c.ID }
func (c ClassificationItem) Level() int  { return c.Difficulty }

// EssayPrompt is the free-text follow-up question graded by the LLM.
// Concept is the core idea the grader checks the answer against, and
// ModelAnswer is shown to the learner after grading.
type EssayPrompt struct {
	ID          string
	Difficulty  int
	Question    string
	Concept     string
	ModelAnswer string
}

func (e EssayPrompt) Key() string { return e.ID }
func (e EssayPrompt) Level() int  { return e.Difficulty }

// MatchingPair maps a spreadsheet term (Left) to its database
// counterpart (Right).
type MatchingPair struct {
	ID         string
	Difficulty int
	Left       string
	Right      string
}

func (m MatchingPair) Key() string { return m.ID }
func (m MatchingPair) Level() int  { return m.Difficulty }

// Column is one column of a table scenario. Sample is the example value
// rendered in the schema table.
type Column struct {
	ID         string
	Label      string
	Sample     string
	PKEligible bool
}

// TableScenario is a primary-key selection puzzle: one table schema with
// exactly one PK-eligible column, plus the value searched during the
// index demo.
type TableScenario struct {
	ID           string
	Difficulty   int
	Title        string
	Columns      []Column
	SearchTarget string
}

func (t TableScenario) Key() string { return t.ID }
func (t TableScenario) Level() int  { return t.Difficulty }

// PKColumn returns the PK-eligible column of the scenario.
func (t TableScenario) PKColumn() (Column, bool) {
	for _, c := range t.Columns {
		if c.PKEligible {
			return c, true
		}
	}
	return Column{}, false
}

// Option is one choice of a technology scenario.
type Option struct {
	Label   string
	Correct bool
}

// TechScenario is a technology-choice question with exactly one correct
// option.
type TechScenario struct {
	ID          string
	Difficulty  int
	Prompt      string
	Options     []Option
	Explanation string
}

func (t TechScenario) Key() string { return t.ID }
func (t TechScenario) Level() int  { return t.Difficulty }

// CorrectOption returns the label of the correct option.
func (t TechScenario) CorrectOption() string {
	for _, o := range t.Options {
		if o.Correct {
			return o.Label
		}
	}
	return ""
}
