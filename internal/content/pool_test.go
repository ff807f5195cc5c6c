package content

import "testing"

func TestPools_DifficultyRange(t *testing.T) {
	check := func(name, id string, level int) {
		t.Helper()
		if level < MinLevel || level > MaxLevel {
			t.Errorf("%s %s: difficulty %d out of range", name, id, level)
		}
	}

	for _, r := range ClassificationPool {
		check("classification", r.ID, r.Difficulty)
	}
	for _, r := range EssayPool {
		check("essay", r.ID, r.Difficulty)
	}
	for _, r := range TerminologyPool {
		check("terminology", r.ID, r.Difficulty)
	}
	for _, r := range TablePool {
		check("table", r.ID, r.Difficulty)
	}
	for _, r := range TechPool {
		check("tech", r.ID, r.Difficulty)
	}
}

func TestPools_UniqueIDs(t *testing.T) {
	assertUnique := func(name string, ids []string) {
		t.Helper()
		seen := make(map[string]bool)
		for _, id := range ids {
			if seen[id] {
				t.Errorf("%s: duplicate id %s", name, id)
			}
			seen[id] = true
		}
	}

	var ids []string
	for _, r := range ClassificationPool {
		ids = append(ids, r.ID)
	}
	assertUnique("classification", ids)

	ids = nil
	for _, r := range TerminologyPool {
		ids = append(ids, r.ID)
	}
	assertUnique("terminology", ids)

	ids = nil
	for _, r := range TablePool {
		ids = append(ids, r.ID)
	}
	assertUnique("table", ids)
}

func TestPools_EveryLevelPlayable(t *testing.T) {
	// Each stage needs enough records per level so the selection never
	// falls through to the whole-pool fallback in normal play.
	for level := MinLevel; level <= MaxLevel; level++ {
		counts := map[string]int{}
		for _, r := range ClassificationPool {
			if r.Difficulty == level {
				counts["classification"]++
			}
		}
		for _, r := range TerminologyPool {
			if r.Difficulty == level {
				counts["terminology"]++
			}
		}
		for _, r := range TechPool {
			if r.Difficulty == level {
				counts["tech"]++
			}
		}

		if counts["classification"] < 4 {
			t.Errorf("level %d: only %d classification items", level, counts["classification"])
		}
		if counts["terminology"] < 4 {
			t.Errorf("level %d: only %d terminology pairs", level, counts["terminology"])
		}
		if counts["tech"] < 2 {
			t.Errorf("level %d: only %d tech scenarios", level, counts["tech"])
		}
	}
}

func TestTablePool_ExactlyOnePKColumn(t *testing.T) {
	for _, s := range TablePool {
		eligible := 0
		for _, c := range s.Columns {
			if c.PKEligible {
				eligible++
			}
		}
		if eligible != 1 {
			t.Errorf("scenario %s: %d PK-eligible columns, want exactly 1", s.ID, eligible)
		}
	}
}

func TestTechPool_ExactlyOneCorrectOption(t *testing.T) {
	for _, s := range TechPool {
		correct := 0
		for _, o := range s.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("scenario %s: %d correct options, want exactly 1", s.ID, correct)
		}
	}
}
