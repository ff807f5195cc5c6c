package quest

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dbquest/internal/content"
	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/grading"
	"github.com/abhisek/dbquest/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testDeps(t *testing.T) *Deps {
	t.Helper()
	state := game.NewState("sess-test")
	if err := state.SubmitIntro("Kim", game.Credentials{Provider: "gemini", APIKey: "0123456789"}); err != nil {
		t.Fatal(err)
	}
	return &Deps{
		State:  state,
		Grader: grading.NewGrader(nil, grading.DefaultGraderConfig()),
		Rng:    rand.New(rand.NewPCG(7, 9)),
	}
}

// runCmd executes a command chain until it yields a message, following
// single-function commands the way the Bubble Tea runtime would.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// clearKeyEnv blanks the discovery env vars so intro tests start from
// an empty form regardless of the host environment.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(v, "")
	}
}

func TestIntro_ShortKeyShowsError(t *testing.T) {
	clearKeyEnv(t)
	state := game.NewState("sess-intro")
	deps := &Deps{State: state, Rng: rand.New(rand.NewPCG(1, 2))}
	s := NewIntroScreen(deps)

	// Type a name, tab to provider, tab to key, type a short key.
	for _, r := range "Kim" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "short" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(enterKey())

	if cmd != nil {
		t.Fatal("short key must not start the run")
	}
	if s.errMsg == "" {
		t.Fatal("expected a validation message")
	}
	if state.Stage != game.StageIntro {
		t.Fatalf("stage advanced despite rejection: %v", state.Stage)
	}
}

func TestIntro_EmptyNameShowsError(t *testing.T) {
	clearKeyEnv(t)
	state := game.NewState("sess-noname")
	deps := &Deps{State: state, Rng: rand.New(rand.NewPCG(1, 2))}
	s := NewIntroScreen(deps)

	// Leave the name blank, fill a valid key, try to start.
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "0123456789abc" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(enterKey())

	if cmd != nil {
		t.Fatal("empty name must not start the run")
	}
	if s.errMsg == "" {
		t.Fatal("expected a validation message")
	}
	if state.Stage != game.StageIntro {
		t.Fatalf("stage advanced despite rejection: %v", state.Stage)
	}
}

func TestIntro_WhitespaceNameFallsBackToDefault(t *testing.T) {
	clearKeyEnv(t)
	state := game.NewState("sess-ws")
	deps := &Deps{State: state, Rng: rand.New(rand.NewPCG(1, 2))}
	s := NewIntroScreen(deps)

	// A whitespace-only name passes the emptiness gate but falls back
	// to the default at submission.
	s.Update(keyPress(' '))
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "0123456789abc" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(enterKey())

	if cmd == nil {
		t.Fatal("whitespace name must still start the run")
	}
	if state.PlayerName != game.DefaultName {
		t.Fatalf("expected fallback name %q, got %q", game.DefaultName, state.PlayerName)
	}
}

func TestIntro_ValidFormStartsFirstMission(t *testing.T) {
	clearKeyEnv(t)
	state := game.NewState("sess-intro2")
	deps := &Deps{State: state, Rng: rand.New(rand.NewPCG(1, 2))}
	s := NewIntroScreen(deps)

	for _, r := range "Lee" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "0123456789abc" {
		s.Update(keyPress(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(enterKey())

	msg := runCmd(cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*ClassifyScreen); !ok {
		t.Fatalf("expected classify screen, got %T", rep.Screen)
	}
	if state.Stage != game.StagePersistence {
		t.Fatalf("expected persistence stage, got %v", state.Stage)
	}
	if deps.Grader == nil {
		t.Fatal("grader must be wired after intro")
	}
}

func TestClassify_FullRunAdvancesToMatching(t *testing.T) {
	deps := testDeps(t)
	s := NewClassifyScreen(deps)

	// Answer every card correctly, dismissing feedback each time.
	for {
		item, ok := s.round.Current()
		if !ok {
			break
		}
		if item.Answer == content.StorageRAM {
			s.Update(keyPress('1'))
		} else {
			s.Update(keyPress('2'))
		}
		s.Update(enterKey())
		s.Update(keyPress(' ')) // dismiss feedback
	}

	if s.phase != classifyEssayInput {
		t.Fatalf("expected essay input phase, got %d", s.phase)
	}

	// Submit an essay answer; the keyless grader resolves synchronously.
	for _, r := range "사라집니다" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())
	msg := runCmd(cmd)
	if _, ok := msg.(essayGradedMsg); !ok {
		t.Fatalf("expected essayGradedMsg, got %T", msg)
	}
	s.Update(msg)

	if s.phase != classifyEssayFeedback {
		t.Fatalf("expected essay feedback phase, got %d", s.phase)
	}

	// Dismissing the verdict finishes the mission.
	_, cmd = s.Update(keyPress(' '))
	rep, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a screen replacement after the essay")
	}
	if _, ok := rep.Screen.(*MatchScreen); !ok {
		t.Fatalf("expected match screen next, got %T", rep.Screen)
	}
	if deps.State.Score != 60 {
		t.Errorf("perfect first mission should bank 60, got %d", deps.State.Score)
	}
}

func TestMatch_CompletingBoardAdvances(t *testing.T) {
	deps := testDeps(t)
	deps.State.Stage = game.StageTerminology
	s := NewMatchScreen(deps)

	var lastCmd tea.Cmd
	for _, p := range s.board.Pairs() {
		// Select the pair on the left, then find it on the right.
		for i, q := range s.board.Pairs() {
			if q.ID == p.ID {
				s.cursor = i
				break
			}
		}
		s.onRight = false
		s.Update(enterKey())
		for i, c := range s.board.Rights() {
			if c.PairID == p.ID {
				s.cursor = i
				break
			}
		}
		_, lastCmd = s.Update(enterKey())
	}

	rep, ok := runCmd(lastCmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a screen replacement once all pairs lock")
	}
	if _, ok := rep.Screen.(*KeyIndexScreen); !ok {
		t.Fatalf("expected key-index screen next, got %T", rep.Screen)
	}
	if deps.State.Score != 60 {
		t.Errorf("clean board should bank 60, got %d", deps.State.Score)
	}
}

func TestKeyIndex_ScanFinishesThenAdvances(t *testing.T) {
	deps := testDeps(t)
	deps.State.Stage = game.StageKeysIndex
	s := NewKeyIndexScreen(deps)

	// Move the cursor onto the PK column and pick it.
	pk, _ := s.round.Scenario().PKColumn()
	for i, c := range s.round.Scenario().Columns {
		if c.ID == pk.ID {
			s.cursor = i
			break
		}
	}
	_, cmd := s.Update(enterKey())
	if s.phase != keyScanPhase {
		t.Fatalf("expected scan phase, got %d", s.phase)
	}

	// Drive the scan animation to completion.
	for s.phase == keyScanPhase {
		msg := runCmd(cmd)
		if _, ok := msg.(scanTickMsg); !ok {
			t.Fatalf("expected scanTickMsg, got %T", msg)
		}
		_, cmd = s.Update(msg)
	}
	if s.phase != keyResultPhase {
		t.Fatalf("expected result phase, got %d", s.phase)
	}

	_, cmd = s.Update(keyPress(' '))
	rep, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a screen replacement after the demo")
	}
	if _, ok := rep.Screen.(*ScenarioScreen); !ok {
		t.Fatalf("expected scenario screen next, got %T", rep.Screen)
	}
	if deps.State.Score != 20 {
		t.Errorf("key mission banks a fixed 20, got %d", deps.State.Score)
	}
}

func TestScenario_FinishingRunReachesCompletion(t *testing.T) {
	deps := testDeps(t)
	deps.State.Stage = game.StageScenarios
	s := NewScenarioScreen(deps)

	var cmd tea.Cmd
	for !s.round.Done() {
		sc, _ := s.round.Current()
		for i, opt := range sc.Options {
			if opt.Correct {
				s.cursor = i
				break
			}
		}
		s.Update(enterKey())
		_, cmd = s.Update(keyPress(' ')) // dismiss feedback
	}

	rep, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a screen replacement after the last scenario")
	}
	if _, ok := rep.Screen.(*CompletionScreen); !ok {
		t.Fatalf("expected completion screen, got %T", rep.Screen)
	}
	if deps.State.Stage != game.StageCompletion {
		t.Fatalf("expected completion stage, got %v", deps.State.Stage)
	}
}

func TestCompletion_DefaultFilterAndRestart(t *testing.T) {
	deps := testDeps(t)
	deps.State.Stage = game.StageCompletion
	deps.State.Score = 95
	deps.State.ReviewItems = []game.ReviewItem{
		{ID: "a", IsCorrect: true},
		{ID: "b", IsCorrect: false},
	}

	s := NewCompletionScreen(deps)
	if s.filter != filterIncorrect {
		t.Error("review must open on the incorrect filter when errors exist")
	}
	if got := len(s.filtered()); got != 1 {
		t.Errorf("incorrect filter shows 1 item, got %d", got)
	}

	_, cmd := s.Update(keyPress('r'))
	rep, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("restart must replace the screen")
	}
	if _, ok := rep.Screen.(*ClassifyScreen); !ok {
		t.Fatalf("restart re-enters the first mission, got %T", rep.Screen)
	}
	if deps.State.Level != 2 {
		t.Errorf("restart raises the level, got %d", deps.State.Level)
	}
	if deps.State.Score != 0 {
		t.Errorf("restart resets the score, got %d", deps.State.Score)
	}
}

func TestCompletion_PerfectRunOpensOnAll(t *testing.T) {
	deps := testDeps(t)
	deps.State.Score = 170
	deps.State.ReviewItems = []game.ReviewItem{{ID: "a", IsCorrect: true}}

	s := NewCompletionScreen(deps)
	if s.filter != filterAll {
		t.Error("perfect run opens on the all filter")
	}
	if s.rank.title != "전설의 아키텍트" {
		t.Errorf("capped 100 earns the top title, got %q", s.rank.title)
	}
}
