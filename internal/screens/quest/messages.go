package quest

import (
	"time"

	"github.com/abhisek/dbquest/internal/grading"
)

// essayGradedMsg is sent when the async grading call resolves.
type essayGradedMsg struct {
	Answer  string
	Verdict grading.Verdict
}

// scanTickMsg drives the full-scan animation of the index demo.
type scanTickMsg time.Time

// sparkleTickMsg animates the completion screen celebration.
type sparkleTickMsg time.Time
