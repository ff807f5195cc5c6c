package game

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/dbquest/internal/content"
)

func classifyRand() *rand.Rand {
	return rand.New(rand.NewPCG(11, 12))
}

func TestClassifyRound_PerfectRun(t *testing.T) {
	r := NewClassifyRound(1, classifyRand())

	for {
		item, ok := r.Current()
		if !ok {
			break
		}
		if !r.Answer(item.Answer) {
			t.Fatalf("answering with the labeled category must be correct (%s)", item.ID)
		}
	}

	if !r.ItemsDone() {
		t.Fatal("expected all cards answered")
	}
	if r.Done() {
		t.Fatal("round must not complete before the essay is graded")
	}

	r.GradeEssay("전원이 꺼지면 휘발성 메모리는 내용을 잃습니다", true, "정확합니다!")

	res := r.Result()
	if res.ScoreDelta != 60 {
		t.Errorf("perfect run should score 60, got %d", res.ScoreDelta)
	}
	if len(res.ReviewItems) != 5 {
		t.Fatalf("expected 5 review items (4 cards + essay), got %d", len(res.ReviewItems))
	}
	for _, item := range res.ReviewItems {
		if !item.IsCorrect {
			t.Errorf("item %s unexpectedly incorrect", item.ID)
		}
	}
}

func TestClassifyRound_WrongAnswersScoreNothing(t *testing.T) {
	r := NewClassifyRound(2, classifyRand())

	for {
		item, ok := r.Current()
		if !ok {
			break
		}
		wrong := content.StorageRAM
		if item.Answer == content.StorageRAM {
			wrong = content.StorageDisk
		}
		if r.Answer(wrong) {
			t.Fatal("opposite category must be judged incorrect")
		}
	}

	r.GradeEssay("모르겠어요", false, "핵심 개념이 빠졌습니다.")

	res := r.Result()
	if res.ScoreDelta != 0 {
		t.Errorf("all-wrong run should score 0, got %d", res.ScoreDelta)
	}
	if len(res.ReviewItems) != 5 {
		t.Fatalf("expected 5 review items, got %d", len(res.ReviewItems))
	}
	for _, item := range res.ReviewItems {
		if item.IsCorrect {
			t.Errorf("item %s unexpectedly correct", item.ID)
		}
	}
}

func TestClassifyRound_EssayGradedOnce(t *testing.T) {
	r := NewClassifyRound(1, classifyRand())
	for {
		item, ok := r.Current()
		if !ok {
			break
		}
		r.Answer(item.Answer)
	}

	r.GradeEssay("답", true, "ok")
	r.GradeEssay("답", true, "ok")

	res := r.Result()
	if res.ScoreDelta != 60 {
		t.Errorf("double grading must not double-award, got %d", res.ScoreDelta)
	}
	if len(res.ReviewItems) != 5 {
		t.Errorf("double grading must not duplicate review items, got %d", len(res.ReviewItems))
	}
}

func TestClassifyRound_AnswerAfterDoneIgnored(t *testing.T) {
	r := NewClassifyRound(1, classifyRand())
	for {
		item, ok := r.Current()
		if !ok {
			break
		}
		r.Answer(item.Answer)
	}
	if r.Answer(content.StorageRAM) {
		t.Error("answering past the last card must be a no-op")
	}
	if got := len(r.results); got != 4 {
		t.Errorf("expected 4 review items, got %d", got)
	}
}
