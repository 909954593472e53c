package game

import (
	"fmt"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
	"github.com/dominionfree/dominion-engine-go/internal/game/rules"
)

// playTurn runs one complete turn for the active player: action phase, buy
// phase, cleanup, then the end-of-game check. The entire effect chain of
// every chosen card resolves before the next decision is requested.
func (g *Game) playTurn() error {
	if g.over {
		return ErrGameOver
	}
	p := g.ActivePlayer()
	g.publish(rules.NewEventWithAmount(rules.EventTurnBegan, p.Seat, "", g.turns.TurnNumber()))

	if err := g.runActionPhase(p); err != nil {
		return err
	}
	g.advancePhase(p)
	if err := g.runBuyPhase(p); err != nil {
		return err
	}
	g.advancePhase(p)
	g.runCleanupPhase(p)

	g.turnsTaken[p.Seat]++
	g.publish(rules.NewEventWithAmount(rules.EventTurnEnded, p.Seat, "", g.turns.TurnNumber()))
	g.advancePhase(p) // wraps into the next player's action phase

	if g.matchEnded() {
		g.over = true
		g.publish(rules.NewEvent(rules.EventGameEnded, -1, ""))
	}
	return nil
}

func (g *Game) advancePhase(p *Player) {
	next := g.turns.AdvancePhase()
	g.publish(rules.NewEvent(rules.EventPhaseChanged, p.Seat, next.String()))
}

// runActionPhase repeatedly offers the active player an action card to
// play while actions remain. Playing a card consumes one action before its
// effect resolves, so +2 actions nets +1 for the turn.
func (g *Game) runActionPhase(p *Player) error {
	for p.Pool().Actions >= 1 {
		playable := p.handCards((*cards.Card).IsAction)
		if len(playable) == 0 {
			return nil
		}
		choice := g.provider.ChooseActionCard(p, playable)
		if choice == nil {
			return nil
		}
		if err := validateCard(choice, playable); err != nil {
			return err
		}
		p.Pool().AdjustActions(-1)
		if !p.moveHandToPlayed(choice) {
			return fmt.Errorf("card %s vanished from hand", choice.Name)
		}
		g.publish(rules.NewEvent(rules.EventCardPlayed, p.Seat, choice.Name))
		if err := g.resolveEffect(choice, p); err != nil {
			return err
		}
	}
	return nil
}

// runBuyPhase lets the active player play treasures for their coin value
// (no buy consumed) and then make purchases while buys remain.
func (g *Game) runBuyPhase(p *Player) error {
	for {
		playable := p.handCards((*cards.Card).IsTreasure)
		if len(playable) == 0 {
			break
		}
		choice := g.provider.ChooseTreasure(p, playable)
		if choice == nil {
			break
		}
		if err := validateCard(choice, playable); err != nil {
			return err
		}
		if !p.moveHandToPlayed(choice) {
			return fmt.Errorf("card %s vanished from hand", choice.Name)
		}
		p.Pool().AdjustCoins(choice.Value)
		g.publish(rules.NewEvent(rules.EventCardPlayed, p.Seat, choice.Name))
		if err := g.resolveEffect(choice, p); err != nil {
			return err
		}
	}

	for p.Pool().Buys >= 1 {
		affordable := g.kindsCostingUpTo(p.Pool().Coins, nil)
		if len(affordable) == 0 {
			return nil
		}
		kind := g.provider.ChoosePurchase(p, affordable)
		if kind == "" {
			return nil
		}
		if err := validateKind(kind, affordable); err != nil {
			return err
		}
		if err := g.buyCard(p, kind); err != nil {
			return err
		}
	}
	return nil
}

// runCleanupPhase is unconditional: the hand and play area go to the
// discard pile, a fresh hand is drawn, and the resource pool resets.
func (g *Game) runCleanupPhase(p *Player) {
	p.discardAll()
	g.drawCards(p, g.opts.HandSize)
	p.Pool().ResetForTurn()
}

// matchEnded evaluates the end conditions: the top-tier victory pile is
// empty, enough piles are simultaneously empty, or the turn cap is hit.
func (g *Game) matchEnded() bool {
	if _, stocked := g.pileStocked(g.opts.ProvincePile); stocked && g.supply.Count(g.opts.ProvincePile) == 0 {
		return true
	}
	if g.supply.EmptyPiles() >= g.opts.EmptyPileLimit {
		return true
	}
	if g.opts.MaxTurns > 0 && g.turns.TurnNumber() > g.opts.MaxTurns {
		return true
	}
	return false
}

// pileStocked reports whether the kind was ever part of this supply layout.
func (g *Game) pileStocked(kind string) (int, bool) {
	for _, k := range g.supply.Kinds() {
		if k == kind {
			return g.supply.Count(k), true
		}
	}
	return 0, false
}
