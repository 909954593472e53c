package game

import (
	"github.com/dominionfree/dominion-engine-go/internal/game/rules"
)

// TurnSummary reports what happened during one player's turn, assembled
// from the match event bus.
type TurnSummary struct {
	GameID string
	Turn   int
	Seat   int
	Player string

	ActionsPlayed   []string
	TreasuresPlayed []string
	Bought          []string
	Gained          []string
	Trashed         []string
	CardsDrawn      int
	CoinsSpent      int
	Reshuffles      int
	PilesEmptied    []string
	GameEnded       bool
}

// summaryRecorder subscribes to a game's bus for the duration of one turn
// and folds the events it sees into a TurnSummary.
type summaryRecorder struct {
	g       *Game
	handle  int
	summary *TurnSummary
}

// newSummaryRecorder starts recording the upcoming turn on g's bus.
func newSummaryRecorder(g *Game) *summaryRecorder {
	p := g.ActivePlayer()
	r := &summaryRecorder{
		g: g,
		summary: &TurnSummary{
			Turn:   g.TurnNumber(),
			Seat:   p.Seat,
			Player: p.Name,
		},
	}
	r.handle = g.Bus().Subscribe(r.record)
	return r
}

func (r *summaryRecorder) record(event rules.Event) {
	s := r.summary
	switch event.Type {
	case rules.EventCardPlayed:
		if event.Seat != s.Seat {
			return
		}
		if def := r.g.Catalog().Get(event.Card); def != nil && def.IsTreasure() {
			s.TreasuresPlayed = append(s.TreasuresPlayed, event.Card)
		} else {
			s.ActionsPlayed = append(s.ActionsPlayed, event.Card)
		}
	case rules.EventCardBought:
		if event.Seat == s.Seat {
			s.Bought = append(s.Bought, event.Card)
			s.CoinsSpent += event.Amount
		}
	case rules.EventCardGained:
		if event.Seat == s.Seat {
			s.Gained = append(s.Gained, event.Card)
		}
	case rules.EventCardTrashed:
		if event.Seat == s.Seat {
			s.Trashed = append(s.Trashed, event.Card)
		}
	case rules.EventCardDrawn:
		if event.Seat == s.Seat {
			s.CardsDrawn++
		}
	case rules.EventDeckReshuffled:
		if event.Seat == s.Seat {
			s.Reshuffles++
		}
	case rules.EventPileEmptied:
		s.PilesEmptied = append(s.PilesEmptied, event.Card)
	case rules.EventGameEnded:
		s.GameEnded = true
	}
}

// finish stops recording and returns the assembled summary.
func (r *summaryRecorder) finish() *TurnSummary {
	r.g.Bus().Unsubscribe(r.handle)
	return r.summary
}
