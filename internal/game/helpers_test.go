package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

// newTestGame builds a 2-player match over the base set with a fixed seed.
func newTestGame(t *testing.T, provider DecisionProvider, opts Options) *Game {
	t.Helper()
	catalog, err := cards.NewCatalog(cards.BaseSet())
	require.NoError(t, err)
	if provider == nil {
		provider = NewFirstOptionProvider()
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	g, err := NewGame([]string{"Alice", "Bob"}, catalog, provider, opts)
	require.NoError(t, err)
	return g
}

// setHand replaces a player's hand with the named cards.
func setHand(t *testing.T, g *Game, p *Player, names ...string) {
	t.Helper()
	p.hand = nil
	for _, name := range names {
		def := g.Catalog().Get(name)
		require.NotNil(t, def, "unknown card %s", name)
		p.hand = append(p.hand, def)
	}
}

// setDeck replaces a player's deck with the named cards; the last name is
// the top of the deck.
func setDeck(t *testing.T, g *Game, p *Player, names ...string) {
	t.Helper()
	p.deck = nil
	for _, name := range names {
		def := g.Catalog().Get(name)
		require.NotNil(t, def, "unknown card %s", name)
		p.deck = append(p.deck, def)
	}
}

// setDiscard replaces a player's discard pile with the named cards.
func setDiscard(t *testing.T, g *Game, p *Player, names ...string) {
	t.Helper()
	p.discard = nil
	for _, name := range names {
		def := g.Catalog().Get(name)
		require.NotNil(t, def, "unknown card %s", name)
		p.discard = append(p.discard, def)
	}
}

// kindCounts tallies cards by name.
func kindCounts(cs []*cards.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cs {
		counts[c.Name]++
	}
	return counts
}

// scriptedProvider overrides individual decisions for a test while
// defaulting to the first-option behavior.
type scriptedProvider struct {
	FirstOptionProvider

	actionCard      func(p *Player, playable []*cards.Card) *cards.Card
	treasure        func(p *Player, playable []*cards.Card) *cards.Card
	purchase        func(p *Player, affordable []string) string
	cardsToDiscard  func(p *Player, hand []*cards.Card) []*cards.Card
	cardsToTrash    func(p *Player, eligible []*cards.Card, max int) []*cards.Card
	treasureToTrash func(p *Player, eligible []*cards.Card) *cards.Card
	cardToGain      func(p *Player, eligible []string) string
	reaction        func(p *Player, revealable []*cards.Card, attack *cards.Card) *cards.Card
}

func (sp *scriptedProvider) ChooseActionCard(p *Player, playable []*cards.Card) *cards.Card {
	if sp.actionCard != nil {
		return sp.actionCard(p, playable)
	}
	return sp.FirstOptionProvider.ChooseActionCard(p, playable)
}

func (sp *scriptedProvider) ChooseTreasure(p *Player, playable []*cards.Card) *cards.Card {
	if sp.treasure != nil {
		return sp.treasure(p, playable)
	}
	return sp.FirstOptionProvider.ChooseTreasure(p, playable)
}

func (sp *scriptedProvider) ChoosePurchase(p *Player, affordable []string) string {
	if sp.purchase != nil {
		return sp.purchase(p, affordable)
	}
	return sp.FirstOptionProvider.ChoosePurchase(p, affordable)
}

func (sp *scriptedProvider) ChooseCardsToDiscard(p *Player, hand []*cards.Card) []*cards.Card {
	if sp.cardsToDiscard != nil {
		return sp.cardsToDiscard(p, hand)
	}
	return sp.FirstOptionProvider.ChooseCardsToDiscard(p, hand)
}

func (sp *scriptedProvider) ChooseCardsToTrash(p *Player, eligible []*cards.Card, max int) []*cards.Card {
	if sp.cardsToTrash != nil {
		return sp.cardsToTrash(p, eligible, max)
	}
	return sp.FirstOptionProvider.ChooseCardsToTrash(p, eligible, max)
}

func (sp *scriptedProvider) ChooseTreasureToTrash(p *Player, eligible []*cards.Card) *cards.Card {
	if sp.treasureToTrash != nil {
		return sp.treasureToTrash(p, eligible)
	}
	return sp.FirstOptionProvider.ChooseTreasureToTrash(p, eligible)
}

func (sp *scriptedProvider) ChooseCardToGain(p *Player, eligible []string) string {
	if sp.cardToGain != nil {
		return sp.cardToGain(p, eligible)
	}
	return sp.FirstOptionProvider.ChooseCardToGain(p, eligible)
}

func (sp *scriptedProvider) ChooseReaction(p *Player, revealable []*cards.Card, attack *cards.Card) *cards.Card {
	if sp.reaction != nil {
		return sp.reaction(p, revealable, attack)
	}
	return sp.FirstOptionProvider.ChooseReaction(p, revealable, attack)
}
