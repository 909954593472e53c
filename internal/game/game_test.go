package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
	"github.com/dominionfree/dominion-engine-go/internal/game/rules"
)

func TestNewGameDealsStartingState(t *testing.T) {
	g := newTestGame(t, nil, Options{})

	require.Len(t, g.Players(), 2)
	for _, p := range g.Players() {
		assert.Equal(t, 5, p.HandSize(), "opening hand")
		assert.Equal(t, 5, p.DeckSize())
		assert.Equal(t, 0, p.DiscardSize())
		assert.Equal(t, 10, p.TotalCards())
		counts := kindCounts(p.AllCards())
		assert.Equal(t, 7, counts[cards.Copper])
		assert.Equal(t, 3, counts[cards.Estate])
	}

	// Two-player layout: victory piles of 8, one curse pile of 10.
	assert.Equal(t, 8, g.Supply().Count(cards.Province))
	assert.Equal(t, 8, g.Supply().Count(cards.Estate))
	assert.Equal(t, 10, g.Supply().Count(cards.Curse))
	assert.Equal(t, 60, g.Supply().Count(cards.Copper))
}

func TestNewGameValidation(t *testing.T) {
	catalog, err := cards.NewCatalog(cards.BaseSet())
	require.NoError(t, err)

	_, err = NewGame([]string{"Solo"}, catalog, NewFirstOptionProvider(), Options{})
	assert.ErrorContains(t, err, "at least 2 players")

	_, err = NewGame([]string{"A", "B"}, nil, NewFirstOptionProvider(), Options{})
	assert.ErrorContains(t, err, "catalog is required")

	_, err = NewGame([]string{"A", "B"}, catalog, nil, Options{})
	assert.ErrorContains(t, err, "decision provider is required")

	_, err = NewGame([]string{"A", "B"}, catalog, NewFirstOptionProvider(), Options{
		StartingDeck: []string{"Platinum"},
	})
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestBuyCardHappyPath(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.ActivePlayer()

	p.Pool().AdjustCoins(3)
	supplyBefore := g.Supply().Count(cards.Silver)

	require.NoError(t, g.buyCard(p, cards.Silver))

	assert.Equal(t, 0, p.Pool().Coins)
	assert.Equal(t, 0, p.Pool().Buys)
	assert.Equal(t, supplyBefore-1, g.Supply().Count(cards.Silver))
	// The bought card lands in the discard pile.
	assert.Equal(t, cards.Silver, p.discard[len(p.discard)-1].Name)
}

func TestBuyCardInsufficientCoins(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.ActivePlayer()

	p.Pool().AdjustCoins(2)
	supplyBefore := g.Supply().Count(cards.Silver)
	discardBefore := p.DiscardSize()

	err := g.buyCard(p, cards.Silver)

	require.ErrorIs(t, err, ErrIllegalPurchase)
	// No partial mutation: coins, buys, and the supply are untouched.
	assert.Equal(t, 2, p.Pool().Coins)
	assert.Equal(t, 1, p.Pool().Buys)
	assert.Equal(t, supplyBefore, g.Supply().Count(cards.Silver))
	assert.Equal(t, discardBefore, p.DiscardSize())
}

func TestBuyCardNoBuysLeft(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.ActivePlayer()

	p.Pool().AdjustCoins(10)
	p.Pool().AdjustBuys(-1)

	err := g.buyCard(p, cards.Silver)
	assert.ErrorIs(t, err, ErrIllegalPurchase)
	assert.Equal(t, 10, p.Pool().Coins)
}

func TestBuyCardEmptyPile(t *testing.T) {
	g := newTestGame(t, nil, Options{
		Piles: map[string]int{cards.Copper: 60, cards.Silver: 0, cards.Province: 8},
	})
	p := g.ActivePlayer()
	p.Pool().AdjustCoins(6)

	err := g.buyCard(p, cards.Silver)
	assert.ErrorIs(t, err, ErrIllegalPurchase)
	assert.Equal(t, 6, p.Pool().Coins)
}

func TestGainCardMovesSupplyToDiscard(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(1)
	before := g.Supply().Count(cards.Curse)

	require.True(t, g.gainCard(p, cards.Curse))

	assert.Equal(t, before-1, g.Supply().Count(cards.Curse))
	assert.Equal(t, cards.Curse, p.discard[len(p.discard)-1].Name)
	assert.Equal(t, 11, p.TotalCards())
}

func TestGainFromEmptyPileIsSilentNoOp(t *testing.T) {
	g := newTestGame(t, nil, Options{
		Piles: map[string]int{cards.Copper: 60, cards.Curse: 0, cards.Province: 8},
	})
	p := g.Player(1)

	assert.False(t, g.gainCard(p, cards.Curse))
	assert.Equal(t, 10, p.TotalCards())
}

func TestGainEmitsPileEmptiedEvent(t *testing.T) {
	g := newTestGame(t, nil, Options{
		Piles: map[string]int{cards.Copper: 60, cards.Curse: 1, cards.Province: 8},
	})

	var emptied []string
	g.Bus().SubscribeTyped(rules.EventPileEmptied, func(event rules.Event) {
		emptied = append(emptied, event.Card)
	})

	require.True(t, g.gainCard(g.Player(0), cards.Curse))
	assert.Equal(t, []string{cards.Curse}, emptied)
}

func TestTrashCardLeavesTheMatch(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	p := g.Player(0)
	setHand(t, g, p, cards.Copper, cards.Estate)

	require.True(t, g.trashCard(p, g.Catalog().Get(cards.Copper)))

	assert.Equal(t, 1, p.HandSize())
	assert.Equal(t, 9, p.TotalCards())
	assert.Equal(t, 1, g.TrashSize())
	// Not returned to the supply.
	assert.Equal(t, 60, g.Supply().Count(cards.Copper))
}

func TestEachOtherPlayerVisitsInSeatingOrder(t *testing.T) {
	catalog, err := cards.NewCatalog(cards.BaseSet())
	require.NoError(t, err)
	g, err := NewGame([]string{"A", "B", "C", "D"}, catalog, NewFirstOptionProvider(), Options{Seed: 3})
	require.NoError(t, err)

	var visited []int
	g.eachOtherPlayer(g.Player(2), func(p *Player) {
		visited = append(visited, p.Seat)
	})

	// Starts left of the actor and wraps, skipping the actor.
	assert.Equal(t, []int{3, 0, 1}, visited)
}

func TestKindsCostingUpToOrdersByCostDescending(t *testing.T) {
	g := newTestGame(t, nil, Options{
		Piles: map[string]int{
			cards.Copper: 60, cards.Silver: 40, cards.Estate: 8,
			cards.Moat: 10, cards.Province: 8,
		},
	})

	kinds := g.kindsCostingUpTo(3, nil)
	assert.Equal(t, []string{cards.Silver, cards.Estate, cards.Moat, cards.Copper}, kinds)

	treasures := g.kindsCostingUpTo(3, (*cards.Card).IsTreasure)
	assert.Equal(t, []string{cards.Silver, cards.Copper}, treasures)
}

func TestKindsCostingUpToSkipsEmptyPiles(t *testing.T) {
	g := newTestGame(t, nil, Options{
		Piles: map[string]int{cards.Copper: 60, cards.Silver: 0, cards.Province: 8},
	})

	kinds := g.kindsCostingUpTo(6, nil)
	assert.Equal(t, []string{cards.Copper}, kinds)
}
