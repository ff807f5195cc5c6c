package content

import "math/rand/v2"

// NewRand returns an unseeded random source for production selection.
// Tests inject their own seeded source for determinism.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick selects up to count records for the given difficulty level.
//
// Candidates are records whose difficulty equals level. When that set is
// smaller than count, records from lower levels are added. When the set
// is still empty the whole pool is used, so a stage can never come up
// empty. The candidate set is shuffled uniformly and the first count
// records are returned; output never contains duplicate identifiers
// because the pool itself does not.
func Pick[T Record](pool []T, level, count int, rng *rand.Rand) []T {
	candidates := make([]T, 0, len(pool))
	for _, r := range pool {
		if r.Level() == level {
			candidates = append(candidates, r)
		}
	}

	if len(candidates) < count {
		for _, r := range pool {
			if r.Level() < level {
				candidates = append(candidates, r)
			}
		}
	}

	if len(candidates) == 0 {
		candidates = append(candidates, pool...)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

// PickOne selects a single record for the level. The second return is
// false only when the pool is empty.
func PickOne[T Record](pool []T, level int, rng *rand.Rand) (T, bool) {
	picked := Pick(pool, level, 1, rng)
	if len(picked) == 0 {
		var zero T
		return zero, false
	}
	return picked[0], true
}

// RightCard is one entry of the right-hand column of the matching board.
type RightCard struct {
	PairID string
	Text   string
}

// ShuffledRights builds the right-hand column for a set of pairs,
// shuffled independently from the left-hand order so the board is never
// trivially aligned.
func ShuffledRights(pairs []MatchingPair, rng *rand.Rand) []RightCard {
	cards := make([]RightCard, len(pairs))
	for i, p := range pairs {
		cards[i] = RightCard{PairID: p.ID, Text: p.Right}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
