package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

func TestDrawReshufflesDiscardIntoDeck(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setHand(t, g, p)
	setDeck(t, g, p, cards.Estate)
	setDiscard(t, g, p, cards.Copper, cards.Copper, cards.Silver)
	before := kindCounts(p.AllCards())

	drawn := g.drawCards(p, 3)

	assert.Equal(t, 3, drawn)
	assert.Equal(t, 3, p.HandSize())
	assert.Equal(t, 1, p.DeckSize())
	assert.Equal(t, 0, p.DiscardSize())
	// The reshuffle is a permutation: the multiset of owned cards is
	// unchanged.
	assert.Equal(t, before, kindCounts(p.AllCards()))
}

func TestDrawFromNothingYieldsFewerCards(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setHand(t, g, p, cards.Copper)
	setDeck(t, g, p)
	setDiscard(t, g, p)

	drawn := g.drawCards(p, 5)

	// Not an error: a player out of cards simply draws nothing.
	assert.Equal(t, 0, drawn)
	assert.Equal(t, 1, p.HandSize())
}

func TestDrawPartiallyExhausts(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setHand(t, g, p)
	setDeck(t, g, p, cards.Copper, cards.Copper)
	setDiscard(t, g, p, cards.Estate)

	drawn := g.drawCards(p, 5)

	assert.Equal(t, 3, drawn)
	assert.Equal(t, 3, p.HandSize())
	assert.Equal(t, 0, p.DeckSize())
	assert.Equal(t, 0, p.DiscardSize())
}

func TestShuffleIsAPermutation(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setDeck(t, g, p,
		cards.Copper, cards.Copper, cards.Copper, cards.Silver,
		cards.Gold, cards.Estate, cards.Estate, cards.Province,
	)
	before := kindCounts(p.deck)

	p.Shuffle(rand.New(rand.NewSource(7)))

	assert.Equal(t, before, kindCounts(p.deck))
	assert.Equal(t, 8, p.DeckSize())
}

func TestDiscardAllMovesHandAndPlayArea(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setHand(t, g, p, cards.Copper, cards.Estate)
	p.played = []*cards.Card{g.Catalog().Get(cards.Village)}
	setDiscard(t, g, p)

	moved := p.discardAll()

	assert.Equal(t, 3, moved)
	assert.Equal(t, 0, p.HandSize())
	assert.Empty(t, p.Played())
	assert.Equal(t, 3, p.DiscardSize())
}

func TestTotalCardsSpansAllZones(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	// Starting collection: 7 Copper + 3 Estate across deck and hand.
	require.Equal(t, 10, p.TotalCards())
	counts := kindCounts(p.AllCards())
	assert.Equal(t, 7, counts[cards.Copper])
	assert.Equal(t, 3, counts[cards.Estate])
}

func TestRemoveFromHand(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)

	setHand(t, g, p, cards.Copper, cards.Silver, cards.Copper)

	require.True(t, p.removeFromHand(g.Catalog().Get(cards.Copper)))
	assert.Equal(t, 2, p.HandSize())
	assert.False(t, p.removeFromHand(g.Catalog().Get(cards.Gold)))
}
