package game

import (
	"fmt"
	"sort"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

// Supply is the shared pool of acquirable card stacks, one count per kind.
// Counts never go negative; a take on an empty pile fails.
type Supply struct {
	counts map[string]int
	kinds  []string // sorted, for deterministic legal-choice sets
}

// NewSupply builds a supply from kind -> pile size. Kinds must exist in the
// catalog; sizes must be non-negative.
func NewSupply(catalog *cards.Catalog, piles map[string]int) (*Supply, error) {
	counts := make(map[string]int, len(piles))
	kinds := make([]string, 0, len(piles))
	for kind, n := range piles {
		if catalog.Get(kind) == nil {
			return nil, fmt.Errorf("%w: supply pile %q", ErrUnknownCard, kind)
		}
		if n < 0 {
			return nil, fmt.Errorf("supply pile %q has negative size %d", kind, n)
		}
		counts[kind] = n
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return &Supply{counts: counts, kinds: kinds}, nil
}

// Count returns the remaining stock of a kind; unknown kinds report 0.
func (s *Supply) Count(kind string) int {
	return s.counts[kind]
}

// Has reports whether at least one card of the kind remains.
func (s *Supply) Has(kind string) bool {
	return s.counts[kind] > 0
}

// Kinds returns all pile kinds in sorted order, including emptied piles.
func (s *Supply) Kinds() []string {
	out := make([]string, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Take removes one card of the kind. Returns ErrSupplyExhausted if the pile
// is empty and ErrUnknownCard if the kind was never stocked; the count is
// untouched either way.
func (s *Supply) Take(kind string) error {
	n, ok := s.counts[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, kind)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSupplyExhausted, kind)
	}
	s.counts[kind] = n - 1
	return nil
}

// EmptyPiles returns the number of piles with zero stock.
func (s *Supply) EmptyPiles() int {
	empty := 0
	for _, kind := range s.kinds {
		if s.counts[kind] == 0 {
			empty++
		}
	}
	return empty
}
