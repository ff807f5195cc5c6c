package game

import (
	"testing"

	"github.com/abhisek/dbquest/internal/content"
)

func testScenarioRound() *ScenarioRound {
	return &ScenarioRound{
		scenarios: []content.TechScenario{
			{
				ID: "x1", Difficulty: 1, Prompt: "로컬 저장이 필요한 모바일 앱",
				Options:     []content.Option{{Label: "SQLite", Correct: true}, {Label: "Oracle Cloud"}},
				Explanation: "모바일 로컬 저장소로는 SQLite가 표준입니다.",
			},
			{
				ID: "x2", Difficulty: 1, Prompt: "실시간 카운팅",
				Options:     []content.Option{{Label: "MySQL"}, {Label: "Redis", Correct: true}},
				Explanation: "실시간 카운팅은 인메모리 DB가 적합합니다.",
			},
		},
	}
}

func TestScenarioRound_MixedChoices(t *testing.T) {
	r := testScenarioRound()

	if !r.Choose(0) {
		t.Fatal("first scenario: option 0 is correct")
	}
	if r.Done() {
		t.Fatal("round must not finish before the last scenario")
	}
	if r.Choose(0) {
		t.Fatal("second scenario: option 0 is incorrect")
	}
	if !r.Done() {
		t.Fatal("round must finish after the last scenario")
	}

	res := r.Result()
	if res.ScoreDelta != 15 {
		t.Errorf("expected 15 points, got %d", res.ScoreDelta)
	}
	if len(res.ReviewItems) != 2 {
		t.Fatalf("expected 2 review items, got %d", len(res.ReviewItems))
	}
	if !res.ReviewItems[0].IsCorrect || res.ReviewItems[1].IsCorrect {
		t.Error("review correctness must follow the choices")
	}
	if res.ReviewItems[1].CorrectAnswer != "Redis" {
		t.Errorf("correct answer label: %q", res.ReviewItems[1].CorrectAnswer)
	}
}

func TestScenarioRound_NoRetry(t *testing.T) {
	r := testScenarioRound()
	r.Choose(1) // wrong on the first scenario
	if answered, _ := r.Progress(); answered != 1 {
		t.Fatal("a wrong choice must still advance")
	}
}

func TestScenarioRound_OutOfRangeChoiceIgnored(t *testing.T) {
	r := testScenarioRound()
	if r.Choose(5) {
		t.Fatal("out-of-range option must not be judged correct")
	}
	if answered, _ := r.Progress(); answered != 0 {
		t.Error("out-of-range choice must not consume the scenario")
	}
}

func TestNewScenarioRound_SelectsTwo(t *testing.T) {
	r := NewScenarioRound(4, content.NewRand())
	if _, total := r.Progress(); total != 2 {
		t.Fatalf("expected 2 scenarios, got %d", total)
	}
}
