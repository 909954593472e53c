package game

import (
	"fmt"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

// effectFunc applies one named card effect for the acting player. Effects
// run synchronously and mutate game state only through the primitive
// operations; any error aborts the turn.
type effectFunc func(g *Game, p *Player) error

// effectRegistry maps a card's declared effect routine to its
// implementation. Dispatch is by this one table; adding a card means adding
// a definition and a routine, never touching engine control flow.
var effectRegistry = map[string]effectFunc{
	cards.Village: func(g *Game, p *Player) error {
		g.drawCards(p, 1)
		p.Pool().AdjustActions(2)
		return nil
	},
	cards.Smithy: func(g *Game, p *Player) error {
		g.drawCards(p, 3)
		return nil
	},
	cards.Laboratory: func(g *Game, p *Player) error {
		g.drawCards(p, 2)
		p.Pool().AdjustActions(1)
		return nil
	},
	cards.Market: func(g *Game, p *Player) error {
		g.drawCards(p, 1)
		p.Pool().AdjustActions(1)
		p.Pool().AdjustBuys(1)
		p.Pool().AdjustCoins(1)
		return nil
	},
	cards.Festival: func(g *Game, p *Player) error {
		p.Pool().AdjustActions(2)
		p.Pool().AdjustBuys(1)
		p.Pool().AdjustCoins(2)
		return nil
	},
	cards.Woodcutter: func(g *Game, p *Player) error {
		p.Pool().AdjustBuys(1)
		p.Pool().AdjustCoins(2)
		return nil
	},
	// Council Room lets every opponent draw; it is not an Attack, so no
	// reaction window opens.
	cards.CouncilRoom: func(g *Game, p *Player) error {
		g.drawCards(p, 4)
		p.Pool().AdjustBuys(1)
		g.eachOtherPlayer(p, func(other *Player) {
			g.drawCards(other, 1)
		})
		return nil
	},
	cards.Cellar: func(g *Game, p *Player) error {
		p.Pool().AdjustActions(1)
		if p.HandSize() == 0 {
			return nil
		}
		legal := append([]*cards.Card(nil), p.Hand()...)
		chosen := g.provider.ChooseCardsToDiscard(p, legal)
		if err := validateSubset(chosen, legal); err != nil {
			return err
		}
		for _, c := range chosen {
			g.discardFromHand(p, c)
		}
		g.drawCards(p, len(chosen))
		return nil
	},
	cards.Chapel: func(g *Game, p *Player) error {
		if p.HandSize() == 0 {
			return nil
		}
		legal := append([]*cards.Card(nil), p.Hand()...)
		chosen := g.provider.ChooseCardsToTrash(p, legal, 4)
		if err := validateSubset(chosen, legal); err != nil {
			return err
		}
		if len(chosen) > 4 {
			return fmt.Errorf("%w: chose %d cards to trash, limit 4", ErrInvalidChoice, len(chosen))
		}
		for _, c := range chosen {
			g.trashCard(p, c)
		}
		return nil
	},
	cards.Workshop: func(g *Game, p *Player) error {
		eligible := g.kindsCostingUpTo(4, nil)
		if len(eligible) == 0 {
			return nil
		}
		kind := g.provider.ChooseCardToGain(p, eligible)
		if kind == "" {
			return nil
		}
		if err := validateKind(kind, eligible); err != nil {
			return err
		}
		g.gainCard(p, kind)
		return nil
	},
	// Mine trades a treasure in hand for one costing up to 3 more. The
	// cost bound is enforced here, not trusted to the provider.
	cards.Mine: func(g *Game, p *Player) error {
		treasures := p.handCards((*cards.Card).IsTreasure)
		if len(treasures) == 0 {
			return nil
		}
		trash := g.provider.ChooseTreasureToTrash(p, treasures)
		if trash == nil {
			return nil
		}
		if err := validateCard(trash, treasures); err != nil {
			return err
		}
		g.trashCard(p, trash)
		eligible := g.kindsCostingUpTo(trash.Cost+3, (*cards.Card).IsTreasure)
		if len(eligible) == 0 {
			return nil
		}
		kind := g.provider.ChooseCardToGain(p, eligible)
		if kind == "" {
			return nil
		}
		if err := validateKind(kind, eligible); err != nil {
			return err
		}
		g.gainCard(p, kind)
		return nil
	},
	cards.Moat: func(g *Game, p *Player) error {
		g.drawCards(p, 2)
		return nil
	},
	cards.Witch: func(g *Game, p *Player) error {
		g.drawCards(p, 2)
		return g.attack(p, g.catalog.Get(cards.Witch), func(other *Player) error {
			g.gainCard(other, cards.Curse)
			return nil
		})
	},
}

// resolveEffect applies the effect routine declared on def, if any. While
// the routine runs, events it causes carry def as their source.
func (g *Game) resolveEffect(def *cards.Card, p *Player) error {
	if def.Effect == "" {
		return nil
	}
	routine, ok := effectRegistry[def.Effect]
	if !ok {
		return fmt.Errorf("card %s references unregistered effect %q", def.Name, def.Effect)
	}
	prev := g.resolving
	g.resolving = def
	defer func() { g.resolving = prev }()
	return routine(g, p)
}

// attack applies an Attack card's effect to every other player in seating
// order. Each defender may first reveal a Reaction card from hand; a
// revealed reaction makes that defender unaffected.
func (g *Game) attack(actor *Player, source *cards.Card, apply func(*Player) error) error {
	var visitErr error
	g.eachOtherPlayer(actor, func(other *Player) {
		if visitErr != nil {
			return
		}
		blocked, err := g.offerReaction(other, source)
		if err != nil {
			visitErr = err
			return
		}
		if blocked {
			return
		}
		visitErr = apply(other)
	})
	return visitErr
}

// offerReaction gives the defender the chance to reveal a Reaction card
// against the incoming attack. Revealing changes no zone state.
func (g *Game) offerReaction(defender *Player, attack *cards.Card) (bool, error) {
	revealable := defender.handCards((*cards.Card).IsReaction)
	if len(revealable) == 0 {
		return false, nil
	}
	choice := g.provider.ChooseReaction(defender, revealable, attack)
	if choice == nil {
		return false, nil
	}
	if err := validateCard(choice, revealable); err != nil {
		return false, err
	}
	g.revealCard(defender, choice)
	return true, nil
}

// validateCard checks a single-card answer against its legal set.
func validateCard(choice *cards.Card, legal []*cards.Card) error {
	for _, c := range legal {
		if c == choice {
			return nil
		}
	}
	name := "<nil>"
	if choice != nil {
		name = choice.Name
	}
	return fmt.Errorf("%w: %s not in legal set", ErrInvalidChoice, name)
}

// validateKind checks a pile-kind answer against its legal set.
func validateKind(kind string, legal []string) error {
	for _, k := range legal {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("%w: %q not in legal set", ErrInvalidChoice, kind)
}

// validateSubset checks a multi-card answer: every chosen card must be a
// distinct element of the legal set.
func validateSubset(chosen, legal []*cards.Card) error {
	used := make(map[int]bool, len(legal))
	for _, c := range chosen {
		found := false
		for i, l := range legal {
			if used[i] || l != c {
				continue
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			name := "<nil>"
			if c != nil {
				name = c.Name
			}
			return fmt.Errorf("%w: %s not in legal set", ErrInvalidChoice, name)
		}
	}
	return nil
}
