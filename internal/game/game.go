package game

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
	"github.com/dominionfree/dominion-engine-go/internal/game/rules"
	"github.com/dominionfree/dominion-engine-go/internal/game/watchers"
)

// Standard zone sizes from the base rules. Pile sizes are configurable per
// match; these are the defaults.
const (
	defaultHandSize       = 5
	defaultCopperPile     = 60
	defaultSilverPile     = 40
	defaultGoldPile       = 30
	defaultKingdomPile    = 10
	defaultEmptyPileLimit = 3
)

// Options configures a single match. The zero value plus FillDefaults is a
// playable 2-player setup.
type Options struct {
	// Seed feeds the match's permutation source. Two matches with the
	// same seed, players, and provider replay identically.
	Seed int64

	// EmptyPileLimit is the number of simultaneously empty supply piles
	// that ends the game. Defaults to 3.
	EmptyPileLimit int

	// ProvincePile is the top-tier victory pile whose exhaustion ends
	// the game on its own. Defaults to Province.
	ProvincePile string

	// MaxTurns hard-stops a match that never terminates (e.g. a provider
	// that refuses to buy). 0 means no limit.
	MaxTurns int

	// Piles overrides the supply layout (kind -> pile size). Empty means
	// the default base-game layout for the player count.
	Piles map[string]int

	// StartingDeck overrides the per-player starting cards. Empty means
	// 7 Copper and 3 Estate.
	StartingDeck []string

	// HandSize is the cleanup redraw size. Defaults to 5.
	HandSize int
}

// FillDefaults populates unset option fields.
func (o *Options) FillDefaults() {
	if o.EmptyPileLimit <= 0 {
		o.EmptyPileLimit = defaultEmptyPileLimit
	}
	if o.ProvincePile == "" {
		o.ProvincePile = cards.Province
	}
	if o.HandSize <= 0 {
		o.HandSize = defaultHandSize
	}
	if len(o.StartingDeck) == 0 {
		deck := make([]string, 0, 10)
		for i := 0; i < 7; i++ {
			deck = append(deck, cards.Copper)
		}
		for i := 0; i < 3; i++ {
			deck = append(deck, cards.Estate)
		}
		o.StartingDeck = deck
	}
}

// DefaultPiles returns the base-game supply layout for the player count:
// treasure piles 60/40/30, victory piles 8 (two players) or 12, one Curse
// pile of 10 per opponent, kingdom piles of 10.
func DefaultPiles(playerCount int) map[string]int {
	victory := 12
	if playerCount <= 2 {
		victory = 8
	}
	piles := map[string]int{
		cards.Copper:   defaultCopperPile,
		cards.Silver:   defaultSilverPile,
		cards.Gold:     defaultGoldPile,
		cards.Estate:   victory,
		cards.Duchy:    victory,
		cards.Province: victory,
		cards.Gardens:  victory,
		cards.Curse:    10 * (playerCount - 1),
	}
	for _, name := range []string{
		cards.Cellar, cards.Chapel, cards.Moat, cards.Village,
		cards.Woodcutter, cards.Workshop, cards.Smithy, cards.CouncilRoom,
		cards.Festival, cards.Laboratory, cards.Market, cards.Mine,
		cards.Witch,
	} {
		piles[name] = defaultKingdomPile
	}
	return piles
}

// Game owns one match: the seated players, the shared supply, the trash,
// the turn sequence, and the event bus. All state is mutated from a single
// logical thread of control; the engine serializes access.
type Game struct {
	players  []*Player
	supply   *Supply
	catalog  *cards.Catalog
	turns    *rules.TurnManager
	bus      *rules.EventBus
	registry *rules.WatcherRegistry
	rng      *rand.Rand
	provider DecisionProvider
	trash    []*cards.Card

	opts       Options
	over       bool
	aborted    bool
	resolving  *cards.Card // card whose effect is currently resolving
	turnsTaken []int       // completed turns per seat, for the tiebreak
}

// NewGame seats the named players, stocks the supply, deals and shuffles
// starting decks, and draws opening hands.
func NewGame(names []string, catalog *cards.Catalog, provider DecisionProvider, opts Options) (*Game, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("at least 2 players required, got %d", len(names))
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("decision provider is required")
	}
	opts.FillDefaults()

	piles := opts.Piles
	if len(piles) == 0 {
		piles = DefaultPiles(len(names))
	}
	supply, err := NewSupply(catalog, piles)
	if err != nil {
		return nil, err
	}

	bus := rules.NewEventBus()
	g := &Game{
		supply:     supply,
		catalog:    catalog,
		turns:      rules.NewTurnManager(len(names)),
		bus:        bus,
		registry:   rules.NewWatcherRegistry(bus),
		rng:        rand.New(rand.NewSource(opts.Seed)),
		provider:   provider,
		opts:       opts,
		turnsTaken: make([]int, len(names)),
	}
	g.registry.Add(watchers.NewCardsGainedWatcher())
	g.registry.Add(watchers.NewEmptyPilesWatcher())

	for seat, name := range names {
		p := NewPlayer(name, seat)
		for _, kind := range opts.StartingDeck {
			def := catalog.Get(kind)
			if def == nil {
				return nil, fmt.Errorf("%w: starting deck card %q", ErrUnknownCard, kind)
			}
			p.AddToDeck(def)
		}
		p.Shuffle(g.rng)
		g.players = append(g.players, p)
	}
	// Opening hands are drawn after every deck is shuffled so seat order
	// does not leak into the permutations.
	for _, p := range g.players {
		g.drawCards(p, opts.HandSize)
	}
	return g, nil
}

// Players returns the seated players in order.
func (g *Game) Players() []*Player {
	return g.players
}

// Player returns the player at the given seat, or nil.
func (g *Game) Player(seat int) *Player {
	if seat < 0 || seat >= len(g.players) {
		return nil
	}
	return g.players[seat]
}

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() *Player {
	return g.players[g.turns.ActiveSeat()]
}

// Supply returns the shared supply.
func (g *Game) Supply() *Supply {
	return g.supply
}

// Catalog returns the card catalog.
func (g *Game) Catalog() *cards.Catalog {
	return g.catalog
}

// Bus returns the match event bus.
func (g *Game) Bus() *rules.EventBus {
	return g.bus
}

// Watchers returns the match watcher registry.
func (g *Game) Watchers() *rules.WatcherRegistry {
	return g.registry
}

// TurnNumber returns the current 1-based turn number.
func (g *Game) TurnNumber() int {
	return g.turns.TurnNumber()
}

// TurnsTaken returns the number of completed turns for a seat.
func (g *Game) TurnsTaken(seat int) int {
	if seat < 0 || seat >= len(g.turnsTaken) {
		return 0
	}
	return g.turnsTaken[seat]
}

// TrashSize returns the number of cards trashed so far.
func (g *Game) TrashSize() int {
	return len(g.trash)
}

// Over reports whether the match has ended (or was aborted).
func (g *Game) Over() bool {
	return g.over
}

// abort marks the match over between turns. Mid-turn cancellation is not
// reachable through the engine API.
func (g *Game) abort() {
	g.aborted = true
	g.over = true
}

// publish stamps the event with the card effect that caused it, if one is
// resolving, and delivers it on the bus.
func (g *Game) publish(event rules.Event) {
	if g.resolving != nil {
		event.Source = g.resolving.Name
	}
	g.bus.Publish(event)
}

// drawCards draws up to n cards for p, reshuffling the discard pile into
// the deck as needed. Drawing past an empty deck and discard yields fewer
// cards, never an error. Returns the number actually drawn.
func (g *Game) drawCards(p *Player, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		card, reshuffled, ok := p.drawOne(g.rng)
		if reshuffled {
			g.publish(rules.NewEventWithAmount(rules.EventDeckReshuffled, p.Seat, "", p.DeckSize()))
		}
		if !ok {
			break
		}
		drawn++
		g.publish(rules.NewEvent(rules.EventCardDrawn, p.Seat, card.Name))
	}
	return drawn
}

// gainCard moves one card of the kind from the supply to p's discard pile.
// An empty or unknown pile is a normal game outcome: the gain silently
// resolves as a no-op and false is returned.
func (g *Game) gainCard(p *Player, kind string) bool {
	def := g.catalog.Get(kind)
	if def == nil {
		return false
	}
	if err := g.supply.Take(kind); err != nil {
		return false
	}
	p.AddToDiscard(def)
	g.publish(rules.NewEvent(rules.EventCardGained, p.Seat, kind))
	if g.supply.Count(kind) == 0 {
		g.publish(rules.NewEvent(rules.EventPileEmptied, -1, kind))
	}
	return true
}

// trashCard removes one instance of the kind from p's hand, permanently
// out of the match. Returns false if the card is not in hand.
func (g *Game) trashCard(p *Player, c *cards.Card) bool {
	if !p.removeFromHand(c) {
		return false
	}
	g.trash = append(g.trash, c)
	g.publish(rules.NewEvent(rules.EventCardTrashed, p.Seat, c.Name))
	return true
}

// revealCard announces a card without changing any state. Reaction timing
// rides on this event.
func (g *Game) revealCard(p *Player, c *cards.Card) {
	g.publish(rules.NewEvent(rules.EventCardRevealed, p.Seat, c.Name))
}

// discardFromHand moves one instance of the kind from p's hand to the
// discard pile.
func (g *Game) discardFromHand(p *Player, c *cards.Card) bool {
	if !p.removeFromHand(c) {
		return false
	}
	p.AddToDiscard(c)
	g.publish(rules.NewEvent(rules.EventCardDiscarded, p.Seat, c.Name))
	return true
}

// buyCard performs a purchase for the active player: one buy and the full
// cost are consumed and one card moves supply -> discard. Any unmet
// precondition returns ErrIllegalPurchase with no partial mutation.
func (g *Game) buyCard(p *Player, kind string) error {
	def := g.catalog.Get(kind)
	if def == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCard, kind)
	}
	switch {
	case p.Pool().Buys < 1:
		return fmt.Errorf("%w: no buys remaining", ErrIllegalPurchase)
	case p.Pool().Coins < def.Cost:
		return fmt.Errorf("%w: %s costs %d, have %d coins", ErrIllegalPurchase, kind, def.Cost, p.Pool().Coins)
	case !g.supply.Has(kind):
		return fmt.Errorf("%w: %s pile is empty", ErrIllegalPurchase, kind)
	}
	p.Pool().AdjustCoins(-def.Cost)
	p.Pool().AdjustBuys(-1)
	g.publish(rules.NewEventWithAmount(rules.EventCardBought, p.Seat, kind, def.Cost))
	g.gainCard(p, kind)
	return nil
}

// eachOtherPlayer visits every player except the actor in seating order,
// starting with the player to the actor's left.
func (g *Game) eachOtherPlayer(actor *Player, visit func(*Player)) {
	n := len(g.players)
	for i := 1; i < n; i++ {
		visit(g.players[(actor.Seat+i)%n])
	}
}

// kindsCostingUpTo returns supply kinds with stock whose cost is at most
// maxCost, filtered by match, ordered most expensive first (ties by name)
// so a first-option provider gains the best eligible pile.
func (g *Game) kindsCostingUpTo(maxCost int, match func(*cards.Card) bool) []string {
	var out []string
	for _, kind := range g.supply.Kinds() {
		def := g.catalog.Get(kind)
		if def == nil || def.Cost > maxCost || !g.supply.Has(kind) {
			continue
		}
		if match != nil && !match(def) {
			continue
		}
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := g.catalog.Get(out[i]).Cost, g.catalog.Get(out[j]).Cost
		if ci != cj {
			return ci > cj
		}
		return out[i] < out[j]
	})
	return out
}
