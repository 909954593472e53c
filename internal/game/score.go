package game

import (
	"github.com/dominionfree/dominion-engine-go/internal/game/watchers"
)

// Score recomputes a player's victory points over every Victory- or
// Curse-tagged card across all four zones. Computed point values (Gardens)
// are evaluated against the player's final collection; nothing is cached.
func (g *Game) Score(p *Player) int {
	total := 0
	for _, c := range p.AllCards() {
		if c.Points == nil {
			continue
		}
		total += c.Points(p)
	}
	return total
}

// Scores returns the score for every seat in seating order.
func (g *Game) Scores() []int {
	scores := make([]int, len(g.players))
	for i, p := range g.players {
		scores[i] = g.Score(p)
	}
	return scores
}

// Result holds the outcome of a finished match. The acquisition and pile
// history comes from the match watchers.
type Result struct {
	Scores       []int    // by seat
	TurnsTaken   []int    // by seat
	CardsGained  []int    // by seat, over the whole match
	EmptiedPiles []string // in the order they ran out
	WinnerSeat   int      // -1 on a tie
	Tie          bool
}

// Result computes the final standing. Highest score wins; an equal score
// goes to whoever finished in fewer turns; still equal is a declared tie.
func (g *Game) Result() (*Result, error) {
	if !g.over {
		return nil, ErrGameInProgress
	}
	res := &Result{
		Scores:     g.Scores(),
		TurnsTaken: append([]int(nil), g.turnsTaken...),
		WinnerSeat: -1,
	}
	if w, ok := g.registry.Get(watchers.CardsGainedKey).(*watchers.CardsGainedWatcher); ok {
		res.CardsGained = make([]int, len(g.players))
		for seat := range g.players {
			res.CardsGained[seat] = w.Count(seat)
		}
	}
	if w, ok := g.registry.Get(watchers.EmptyPilesKey).(*watchers.EmptyPilesWatcher); ok {
		res.EmptiedPiles = w.EmptiedPiles()
	}
	best := -1
	for seat := range g.players {
		if best == -1 {
			best = seat
			continue
		}
		switch {
		case res.Scores[seat] > res.Scores[best]:
			best = seat
		case res.Scores[seat] == res.Scores[best] && res.TurnsTaken[seat] < res.TurnsTaken[best]:
			best = seat
		}
	}
	// A second pass detects an unbroken tie with the best seat.
	for seat := range g.players {
		if seat == best {
			continue
		}
		if res.Scores[seat] == res.Scores[best] && res.TurnsTaken[seat] == res.TurnsTaken[best] {
			res.Tie = true
			return res, nil
		}
	}
	res.WinnerSeat = best
	return res, nil
}
