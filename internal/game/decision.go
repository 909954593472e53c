package game

import (
	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

// DecisionProvider supplies the choices the engine requests during turn
// resolution. Every method receives a legal-choice set computed by the
// engine and must answer from that set; a nil/empty answer means pass or
// decline. Answers outside the set are rejected with ErrInvalidChoice,
// never silently replaced.
//
// The engine never calls a method with an empty legal set; an effect whose
// legal set is empty resolves as a decline without consulting the provider.
type DecisionProvider interface {
	// ChooseActionCard picks an action card from playable to play, or nil
	// to end the action phase early.
	ChooseActionCard(p *Player, playable []*cards.Card) *cards.Card

	// ChooseTreasure picks a treasure from playable to play for its coin
	// value, or nil to stop playing treasures.
	ChooseTreasure(p *Player, playable []*cards.Card) *cards.Card

	// ChoosePurchase picks a supply kind to buy from affordable, or ""
	// to end the buy phase. Kinds are ordered most expensive first.
	ChoosePurchase(p *Player, affordable []string) string

	// ChooseCardsToDiscard picks any subset of hand to discard.
	ChooseCardsToDiscard(p *Player, hand []*cards.Card) []*cards.Card

	// ChooseCardsToTrash picks up to max cards from eligible to trash.
	ChooseCardsToTrash(p *Player, eligible []*cards.Card, max int) []*cards.Card

	// ChooseTreasureToTrash picks a treasure from eligible to trash, or
	// nil to decline.
	ChooseTreasureToTrash(p *Player, eligible []*cards.Card) *cards.Card

	// ChooseCardToGain picks a supply kind to gain from eligible, or ""
	// to decline. Kinds are ordered most expensive first.
	ChooseCardToGain(p *Player, eligible []string) string

	// ChooseReaction picks a reaction card to reveal against an incoming
	// attack, or nil to take the attack.
	ChooseReaction(p *Player, revealable []*cards.Card, attack *cards.Card) *cards.Card
}

// FirstOptionProvider is the deterministic reference provider: it always
// takes the first legal option, plays every treasure, never discards or
// trashes voluntarily, and always reveals a reaction. Purchase and gain
// sets arrive most-expensive-first, so "first" buys the best affordable
// pile. Used by tests and the simulator to keep matches reproducible.
type FirstOptionProvider struct{}

// NewFirstOptionProvider returns the reference provider.
func NewFirstOptionProvider() *FirstOptionProvider {
	return &FirstOptionProvider{}
}

// ChooseActionCard implements DecisionProvider.
func (fp *FirstOptionProvider) ChooseActionCard(_ *Player, playable []*cards.Card) *cards.Card {
	if len(playable) == 0 {
		return nil
	}
	return playable[0]
}

// ChooseTreasure implements DecisionProvider.
func (fp *FirstOptionProvider) ChooseTreasure(_ *Player, playable []*cards.Card) *cards.Card {
	if len(playable) == 0 {
		return nil
	}
	return playable[0]
}

// ChoosePurchase implements DecisionProvider.
func (fp *FirstOptionProvider) ChoosePurchase(_ *Player, affordable []string) string {
	if len(affordable) == 0 {
		return ""
	}
	return affordable[0]
}

// ChooseCardsToDiscard implements DecisionProvider. Declines.
func (fp *FirstOptionProvider) ChooseCardsToDiscard(_ *Player, _ []*cards.Card) []*cards.Card {
	return nil
}

// ChooseCardsToTrash implements DecisionProvider. Declines.
func (fp *FirstOptionProvider) ChooseCardsToTrash(_ *Player, _ []*cards.Card, _ int) []*cards.Card {
	return nil
}

// ChooseTreasureToTrash implements DecisionProvider.
func (fp *FirstOptionProvider) ChooseTreasureToTrash(_ *Player, eligible []*cards.Card) *cards.Card {
	if len(eligible) == 0 {
		return nil
	}
	return eligible[0]
}

// ChooseCardToGain implements DecisionProvider.
func (fp *FirstOptionProvider) ChooseCardToGain(_ *Player, eligible []string) string {
	if len(eligible) == 0 {
		return ""
	}
	return eligible[0]
}

// ChooseReaction implements DecisionProvider.
func (fp *FirstOptionProvider) ChooseReaction(_ *Player, revealable []*cards.Card, _ *cards.Card) *cards.Card {
	if len(revealable) == 0 {
		return nil
	}
	return revealable[0]
}
