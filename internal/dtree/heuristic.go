package dtree

import "math/rand"

// Heuristic picks one candidate among several with equal semantic
// standing: the compiler's correctness never depends on the choice, only
// compile-time cost and the emitted tree's shape do.
type Heuristic interface {
	Pick(candidates []candidate) candidate
}

// FewestMinimaHeuristic is deterministic: it picks the column with the
// fewest distinct minima among the candidates, ties broken by column
// index.
type FewestMinimaHeuristic struct{}

func (FewestMinimaHeuristic) Pick(candidates []candidate) candidate {
	countByColumn := map[int]int{}
	for _, c := range candidates {
		countByColumn[c.columnIndex]++
	}
	best := candidates[0]
	bestCount := countByColumn[best.columnIndex]
	for _, c := range candidates[1:] {
		cnt := countByColumn[c.columnIndex]
		if cnt < bestCount || (cnt == bestCount && c.columnIndex < best.columnIndex) {
			best = c
			bestCount = cnt
		}
	}
	return best
}

// RandomHeuristic chooses uniformly at random from a seeded source, so
// that a fixed seed reproduces the same tree shape across runs.
type RandomHeuristic struct {
	Rand *rand.Rand
}

// NewRandomHeuristic builds a RandomHeuristic seeded deterministically.
func NewRandomHeuristic(seed int64) *RandomHeuristic {
	return &RandomHeuristic{Rand: rand.New(rand.NewSource(seed))}
}

func (h *RandomHeuristic) Pick(candidates []candidate) candidate {
	return candidates[h.Rand.Intn(len(candidates))]
}
