package watchers

import (
	"github.com/dominionfree/dominion-engine-go/internal/game/rules"
)

// Registry keys for the match-level watchers.
const (
	CardsGainedKey = "CardsGainedWatcher"
	EmptyPilesKey  = "EmptyPilesWatcher"
)

// CardsGainedWatcher tracks cards gained by each seat over the match.
// Buys publish both CARD_BOUGHT and CARD_GAINED, so watching gains alone
// covers the full acquisition history.
type CardsGainedWatcher struct {
	*rules.BaseWatcher
	gained map[int][]string // seat -> card kinds in gain order
}

// NewCardsGainedWatcher creates a new cards gained watcher.
func NewCardsGainedWatcher() *CardsGainedWatcher {
	w := &CardsGainedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
		gained:      make(map[int][]string),
	}
	w.SetKey(CardsGainedKey)
	return w
}

// Watch implements the Watcher interface.
func (w *CardsGainedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventCardGained {
		return
	}
	if event.Seat < 0 || event.Card == "" {
		return
	}
	w.gained[event.Seat] = append(w.gained[event.Seat], event.Card)
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *CardsGainedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.gained = make(map[int][]string)
}

// GainedBy returns the card kinds gained by a seat, in gain order.
func (w *CardsGainedWatcher) GainedBy(seat int) []string {
	return w.gained[seat]
}

// Count returns the number of cards gained by a seat.
func (w *CardsGainedWatcher) Count(seat int) int {
	return len(w.gained[seat])
}

// EmptyPilesWatcher tracks supply piles that have been emptied, in the
// order they ran out. Feeds the end-condition report.
type EmptyPilesWatcher struct {
	*rules.BaseWatcher
	emptied []string
	seen    map[string]bool
}

// NewEmptyPilesWatcher creates a new empty piles watcher.
func NewEmptyPilesWatcher() *EmptyPilesWatcher {
	w := &EmptyPilesWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
		seen:        make(map[string]bool),
	}
	w.SetKey(EmptyPilesKey)
	return w
}

// Watch implements the Watcher interface.
func (w *EmptyPilesWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventPileEmptied {
		return
	}
	if event.Card == "" || w.seen[event.Card] {
		return
	}
	w.seen[event.Card] = true
	w.emptied = append(w.emptied, event.Card)
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *EmptyPilesWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.emptied = nil
	w.seen = make(map[string]bool)
}

// EmptiedPiles returns the emptied pile kinds in the order they ran out.
func (w *EmptyPilesWatcher) EmptiedPiles() []string {
	out := make([]string, len(w.emptied))
	copy(out, w.emptied)
	return out
}

// CountEmpty returns the number of piles that have been emptied.
func (w *EmptyPilesWatcher) CountEmpty() int {
	return len(w.emptied)
}
