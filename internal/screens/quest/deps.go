// Package quest holds the mission screens of the learning run. The
// missions form a fixed chain, so the screens live in one package and
// hand off to each other through the router's replace mechanism.
package quest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/grading"
	"github.com/abhisek/dbquest/internal/router"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/store"
)

// Deps bundles the run state and services threaded through the mission
// screens. The intro screen fills in the Grader once credentials are
// known; everything else is wired up at program start.
type Deps struct {
	State  *game.State
	Grader *grading.Grader
	Events store.EventRepo
	Rng    *rand.Rand
}

// finishStage applies a mission result to the run state, logs it, and
// returns a command replacing the active screen with the next mission.
func (d *Deps) finishStage(res game.StageResult) tea.Cmd {
	stage := d.State.Stage
	d.State.ApplyStageResult(res)

	correct := 0
	for _, it := range res.ReviewItems {
		if it.IsCorrect {
			correct++
		}
	}
	if d.Events != nil {
		// Log the result but don't block the run if logging fails.
		err := d.Events.AppendStageResult(context.Background(), store.StageResultEventData{
			SessionID:    d.State.SessionID,
			PlayerName:   d.State.PlayerName,
			Stage:        stage.String(),
			Level:        d.State.Level,
			ScoreDelta:   res.ScoreDelta,
			TotalScore:   d.State.Score,
			CorrectItems: correct,
			TotalItems:   len(res.ReviewItems),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log stage result event: %v\n", err)
		}
	}

	next := d.screenFor(d.State.Stage)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// screenFor builds the screen serving a stage.
func (d *Deps) screenFor(stage game.Stage) screen.Screen {
	switch stage {
	case game.StagePersistence:
		return NewClassifyScreen(d)
	case game.StageTerminology:
		return NewMatchScreen(d)
	case game.StageKeysIndex:
		return NewKeyIndexScreen(d)
	case game.StageScenarios:
		return NewScenarioScreen(d)
	default:
		return NewCompletionScreen(d)
	}
}

// DisplayScore caps the raw run total at the advertised ceiling.
func (d *Deps) DisplayScore() int {
	if d.State.Score > game.MaxScore {
		return game.MaxScore
	}
	return d.State.Score
}
