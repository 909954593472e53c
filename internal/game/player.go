package game

import (
	"math/rand"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
	"github.com/dominionfree/dominion-engine-go/internal/game/counters"
)

// Player holds one seat's zones and per-turn resources. Zones are ordered
// slices of catalog pointers; the top of the deck is the end of the slice.
// All mutation goes through the engine's single turn thread of control.
type Player struct {
	Name string
	Seat int

	deck    []*cards.Card
	hand    []*cards.Card
	discard []*cards.Card
	played  []*cards.Card // play area, cleared at cleanup

	pool *counters.Pool
}

// NewPlayer creates a player with empty zones and a fresh resource pool.
func NewPlayer(name string, seat int) *Player {
	return &Player{
		Name: name,
		Seat: seat,
		pool: counters.NewPool(),
	}
}

// Pool returns the player's per-turn resource pool.
func (p *Player) Pool() *counters.Pool {
	return p.pool
}

// Hand returns the player's hand. The slice is shared; callers must not
// mutate it.
func (p *Player) Hand() []*cards.Card {
	return p.hand
}

// Played returns the cards played this turn.
func (p *Player) Played() []*cards.Card {
	return p.played
}

// DeckSize returns the number of cards left in the draw deck.
func (p *Player) DeckSize() int {
	return len(p.deck)
}

// DiscardSize returns the number of cards in the discard pile.
func (p *Player) DiscardSize() int {
	return len(p.discard)
}

// HandSize returns the number of cards in hand.
func (p *Player) HandSize() int {
	return len(p.hand)
}

// TotalCards returns the card count across all four zones. Implements
// cards.DeckInfo for computed victory points.
func (p *Player) TotalCards() int {
	return len(p.deck) + len(p.hand) + len(p.discard) + len(p.played)
}

// AllCards returns every card the player owns, across all zones.
func (p *Player) AllCards() []*cards.Card {
	all := make([]*cards.Card, 0, p.TotalCards())
	all = append(all, p.deck...)
	all = append(all, p.hand...)
	all = append(all, p.discard...)
	all = append(all, p.played...)
	return all
}

// AddToDeck places a card on top of the deck.
func (p *Player) AddToDeck(c *cards.Card) {
	p.deck = append(p.deck, c)
}

// AddToDiscard places a card in the discard pile. Gains land here.
func (p *Player) AddToDiscard(c *cards.Card) {
	p.discard = append(p.discard, c)
}

// Shuffle permutes the deck uniformly using the provided source.
func (p *Player) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.deck), func(i, j int) {
		p.deck[i], p.deck[j] = p.deck[j], p.deck[i]
	})
}

// drawOne moves the top deck card to hand, reshuffling the discard pile
// into the deck first if the deck is empty. Returns the drawn card,
// whether a reshuffle happened, and false if both piles were empty.
// A player who is fully out of cards legitimately draws nothing.
func (p *Player) drawOne(rng *rand.Rand) (card *cards.Card, reshuffled, ok bool) {
	if len(p.deck) == 0 {
		if len(p.discard) == 0 {
			return nil, false, false
		}
		p.deck = p.discard
		p.discard = nil
		p.Shuffle(rng)
		reshuffled = true
	}
	card = p.deck[len(p.deck)-1]
	p.deck = p.deck[:len(p.deck)-1]
	p.hand = append(p.hand, card)
	return card, reshuffled, true
}

// removeFromHand removes one instance of the given kind from hand.
// Returns false if no copy is present.
func (p *Player) removeFromHand(c *cards.Card) bool {
	for i, h := range p.hand {
		if h == c || h.Name == c.Name {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return true
		}
	}
	return false
}

// moveHandToPlayed moves one instance of the given kind from hand to the
// play area. Returns false if the card is not in hand.
func (p *Player) moveHandToPlayed(c *cards.Card) bool {
	if !p.removeFromHand(c) {
		return false
	}
	p.played = append(p.played, c)
	return true
}

// discardAll moves the entire hand and play area to the discard pile and
// returns how many cards moved.
func (p *Player) discardAll() int {
	n := len(p.hand) + len(p.played)
	p.discard = append(p.discard, p.hand...)
	p.discard = append(p.discard, p.played...)
	p.hand = nil
	p.played = nil
	return n
}

// handCards returns the cards in hand matching the filter.
func (p *Player) handCards(match func(*cards.Card) bool) []*cards.Card {
	var out []*cards.Card
	for _, c := range p.hand {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}
