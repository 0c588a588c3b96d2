package card

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	// Size is the fixed edge length of the grid.
	Size = 5
	// CenterRow and CenterCol locate the free cell.
	CenterRow = 2
	CenterCol = 2
	// PoolCells is the number of cells filled from the pool.
	PoolCells = Size*Size - 1
)

// DefaultMaxAttempts caps how often GenerateSet regenerates a candidate that
// collides with an already accepted card before giving up and accepting the
// duplicate.
const DefaultMaxAttempts = 1000

// Card is one bingo grid, indexed [row][col].
type Card [Size][Size]string

// Key returns the card's uniqueness key: its 24 non-center labels, sorted
// and joined with a non-printing separator. Two cards with the same labels
// in any arrangement share a key.
func (c Card) Key() string {
	labels := make([]string, 0, PoolCells)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if row == CenterRow && col == CenterCol {
				continue
			}
			labels = append(labels, c[row][col])
		}
	}
	slices.Sort(labels)
	return strings.Join(labels, "\x1f")
}

// Generate produces a single card: a Fisher–Yates shuffle of a copy of the
// pool with the provided PRNG, then the first 24 shuffled items placed
// row-major around the center cell.
func Generate(rng *rand.Rand, center string, pool []string) (Card, error) {
	if len(pool) < PoolCells {
		return Card{}, fmt.Errorf("pool has %d items, need at least %d", len(pool), PoolCells)
	}

	shuffled := slices.Clone(pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	var c Card
	next := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if row == CenterRow && col == CenterCol {
				c[row][col] = center
				continue
			}
			c[row][col] = shuffled[next]
			next++
		}
	}
	return c, nil
}

// Outcome records how a card earned its place in a set.
type Outcome int

const (
	// Unique means the card's key collided with no previously accepted card.
	Unique Outcome = iota
	// DuplicateAccepted means the attempt cap was exhausted and the final
	// candidate was accepted despite a key collision.
	DuplicateAccepted
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	if o == DuplicateAccepted {
		return "duplicate_accepted"
	}
	return "unique"
}

// Result pairs a generated card with its acceptance outcome.
type Result struct {
	Card     Card
	Outcome  Outcome
	Attempts int
}

// GenerateSet produces exactly count cards in generation order. Each card is
// regenerated on a key collision with any previously accepted card, up to
// maxAttempts tries; the final candidate is then accepted as a duplicate.
// A pool of exactly 24 items is a legitimate degenerate case: every card is
// a permutation of the same labels and all but the first come back tagged
// DuplicateAccepted.
func GenerateSet(rng *rand.Rand, center string, pool []string, count, maxAttempts int) ([]Result, error) {
	if maxAttempts < 1 {
		return nil, fmt.Errorf("maxAttempts must be at least 1, got %d", maxAttempts)
	}

	seen := make(map[string]struct{}, count)
	results := make([]Result, 0, count)
	for len(results) < count {
		var (
			candidate Card
			key       string
			attempts  int
			outcome   = DuplicateAccepted
		)
		for attempts = 1; attempts <= maxAttempts; attempts++ {
			c, err := Generate(rng, center, pool)
			if err != nil {
				return nil, err
			}
			candidate, key = c, c.Key()
			if _, dup := seen[key]; !dup {
				outcome = Unique
				break
			}
		}
		if attempts > maxAttempts {
			attempts = maxAttempts
		}

		seen[key] = struct{}{}
		results = append(results, Result{Card: candidate, Outcome: outcome, Attempts: attempts})
	}
	return results, nil
}
