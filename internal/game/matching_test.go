package game

import (
	"testing"

	"github.com/abhisek/dbquest/internal/content"
)

func testBoard() *MatchBoard {
	pairs := []content.MatchingPair{
		{ID: "A", Difficulty: 1, Left: "시트 (Sheet)", Right: "테이블 (Table)"},
		{ID: "B", Difficulty: 1, Left: "행 (Row)", Right: "레코드 (Record)"},
		{ID: "C", Difficulty: 1, Left: "열 (Column)", Right: "필드 (Field)"},
		{ID: "D", Difficulty: 1, Left: "엑셀 파일 (.xlsx)", Right: "데이터베이스 (DB)"},
	}
	rights := make([]content.RightCard, len(pairs))
	for i, p := range pairs {
		rights[i] = content.RightCard{PairID: p.ID, Text: p.Right}
	}
	return &MatchBoard{
		pairs:   pairs,
		rights:  rights,
		locked:  make(map[string]bool),
		tainted: make(map[string]bool),
	}
}

func TestMatchBoard_TaintedPairReviewedIncorrect(t *testing.T) {
	b := testBoard()

	// Mismatch A twice, then match it correctly.
	b.SelectLeft("A")
	if got := b.SelectRight("B"); got != MatchMiss {
		t.Fatalf("expected miss, got %v", got)
	}
	b.SelectLeft("A")
	if got := b.SelectRight("C"); got != MatchMiss {
		t.Fatalf("expected miss, got %v", got)
	}
	b.SelectLeft("A")
	if got := b.SelectRight("A"); got != MatchLocked {
		t.Fatalf("expected lock, got %v", got)
	}

	// Match the rest on first try.
	for _, id := range []string{"B", "C", "D"} {
		b.SelectLeft(id)
		if got := b.SelectRight(id); got != MatchLocked {
			t.Fatalf("expected lock for %s, got %v", id, got)
		}
	}

	if !b.Complete() {
		t.Fatal("all pairs locked, board must be complete")
	}

	res := b.Result()
	if res.ScoreDelta != 60 {
		t.Errorf("expected 60 points, got %d", res.ScoreDelta)
	}
	if len(res.ReviewItems) != 4 {
		t.Fatalf("expected 4 review items, got %d", len(res.ReviewItems))
	}
	for _, item := range res.ReviewItems {
		wantCorrect := item.ID != "t-A"
		if item.IsCorrect != wantCorrect {
			t.Errorf("item %s: IsCorrect=%v, want %v", item.ID, item.IsCorrect, wantCorrect)
		}
	}
}

func TestMatchBoard_LockIsIdempotent(t *testing.T) {
	b := testBoard()

	b.SelectLeft("A")
	b.SelectRight("A")
	if b.score != 15 {
		t.Fatalf("expected 15 after first lock, got %d", b.score)
	}

	// Locked terms cannot re-enter play in either column.
	if b.SelectLeft("A") {
		t.Error("locked left term must not be selectable")
	}
	b.SelectLeft("B")
	if got := b.SelectRight("A"); got != MatchIgnored {
		t.Errorf("locked right card must be ignored, got %v", got)
	}
	if b.score != 15 {
		t.Errorf("score changed by a no-op selection: %d", b.score)
	}
}

func TestMatchBoard_RepeatedMissesDoNotStack(t *testing.T) {
	b := testBoard()

	for i := 0; i < 3; i++ {
		b.SelectLeft("A")
		b.SelectRight("D")
	}
	if !b.Tainted("A") {
		t.Fatal("A must be tainted after a miss")
	}

	b.SelectLeft("A")
	b.SelectRight("A")

	res := b.Result()
	if res.ScoreDelta != 15 {
		t.Errorf("expected 15, got %d", res.ScoreDelta)
	}
}

func TestMatchBoard_RightWithoutLeftIgnored(t *testing.T) {
	b := testBoard()
	if got := b.SelectRight("A"); got != MatchIgnored {
		t.Errorf("right selection without a left term must be ignored, got %v", got)
	}
}

func TestMatchBoard_NotCompleteUntilAllLocked(t *testing.T) {
	b := testBoard()
	for _, id := range []string{"A", "B", "C"} {
		b.SelectLeft(id)
		b.SelectRight(id)
	}
	if b.Complete() {
		t.Fatal("board complete with one pair still open")
	}
	b.SelectLeft("D")
	b.SelectRight("D")
	if !b.Complete() {
		t.Fatal("board must complete once every pair is locked")
	}
}

func TestNewMatchBoard_SelectsFourPairs(t *testing.T) {
	b := NewMatchBoard(2, content.NewRand())
	if len(b.Pairs()) != 4 {
		t.Fatalf("expected 4 pairs, got %d", len(b.Pairs()))
	}
	if len(b.Rights()) != 4 {
		t.Fatalf("expected 4 right cards, got %d", len(b.Rights()))
	}
}
