package cards

import (
	"fmt"
	"sort"
)

// Type is a bit set of card type tags. A card may carry several tags
// (e.g. Moat is Action|Reaction, Witch is Action|Attack).
type Type uint8

const (
	TypeTreasure Type = 1 << iota
	TypeVictory
	TypeAction
	TypeReaction
	TypeAttack
	TypeCurse
)

var typeNames = []struct {
	t    Type
	name string
}{
	{TypeTreasure, "Treasure"},
	{TypeVictory, "Victory"},
	{TypeAction, "Action"},
	{TypeReaction, "Reaction"},
	{TypeAttack, "Attack"},
	{TypeCurse, "Curse"},
}

func (t Type) String() string {
	s := ""
	for _, tn := range typeNames {
		if t&tn.t == 0 {
			continue
		}
		if s != "" {
			s += "-"
		}
		s += tn.name
	}
	if s == "" {
		return "None"
	}
	return s
}

// Has reports whether all tags in want are set.
func (t Type) Has(want Type) bool {
	return t&want == want
}

// PointsFunc computes a victory card's points for one owner. Scoring state
// is passed through the Deck interface so cards like Gardens can count the
// owner's full collection without this package importing the game package.
type PointsFunc func(owned DeckInfo) int

// DeckInfo is the slice of owner state a points computation may read.
type DeckInfo interface {
	// TotalCards is the number of cards the owner has across all zones.
	TotalCards() int
}

// StaticPoints returns a PointsFunc for a fixed point value.
func StaticPoints(n int) PointsFunc {
	return func(DeckInfo) int { return n }
}

// Card is an immutable card definition. Instances are fungible within a
// kind: zones hold *Card pointers into the catalog, never copies.
type Card struct {
	Name   string
	Cost   int
	Types  Type
	Value  int        // coin value, Treasure only
	Points PointsFunc // victory points, Victory/Curse only
	Effect string     // dispatcher routine name, empty for vanilla cards
}

// IsTreasure reports whether the card carries the Treasure tag.
func (c *Card) IsTreasure() bool { return c.Types.Has(TypeTreasure) }

// IsVictory reports whether the card carries the Victory tag.
func (c *Card) IsVictory() bool { return c.Types.Has(TypeVictory) }

// IsAction reports whether the card carries the Action tag.
func (c *Card) IsAction() bool { return c.Types.Has(TypeAction) }

// IsReaction reports whether the card carries the Reaction tag.
func (c *Card) IsReaction() bool { return c.Types.Has(TypeReaction) }

// IsAttack reports whether the card carries the Attack tag.
func (c *Card) IsAttack() bool { return c.Types.Has(TypeAttack) }

func (c *Card) String() string {
	return fmt.Sprintf("%s (Cost: %d, Type: %s)", c.Name, c.Cost, c.Types)
}

// Catalog is an immutable name -> definition lookup built once at game
// construction.
type Catalog struct {
	byName map[string]*Card
	names  []string // sorted, for deterministic iteration
}

// NewCatalog builds a catalog from the given definitions. Duplicate names
// are rejected so a kingdom list cannot shadow a base card.
func NewCatalog(defs []*Card) (*Catalog, error) {
	byName := make(map[string]*Card, len(defs))
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("card definition without a name")
		}
		if _, ok := byName[def.Name]; ok {
			return nil, fmt.Errorf("duplicate card definition: %s", def.Name)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("card %s has negative cost %d", def.Name, def.Cost)
		}
		byName[def.Name] = def
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return &Catalog{byName: byName, names: names}, nil
}

// Get returns the definition for name, or nil if unknown.
func (cat *Catalog) Get(name string) *Card {
	return cat.byName[name]
}

// Names returns all card names in sorted order.
func (cat *Catalog) Names() []string {
	out := make([]string, len(cat.names))
	copy(out, cat.names)
	return out
}

// Len returns the number of definitions in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.byName)
}

// Base set card names used by the default supply layout.
const (
	Copper   = "Copper"
	Silver   = "Silver"
	Gold     = "Gold"
	Estate   = "Estate"
	Duchy    = "Duchy"
	Province = "Province"
	Curse    = "Curse"
	Gardens  = "Gardens"

	Cellar      = "Cellar"
	Chapel      = "Chapel"
	Moat        = "Moat"
	Village     = "Village"
	Woodcutter  = "Woodcutter"
	Workshop    = "Workshop"
	Smithy      = "Smithy"
	CouncilRoom = "Council Room"
	Festival    = "Festival"
	Laboratory  = "Laboratory"
	Market      = "Market"
	Mine        = "Mine"
	Witch       = "Witch"
)

// BaseSet returns the definitions for the base game. Effect names match the
// routines registered by the game package's dispatcher.
func BaseSet() []*Card {
	return []*Card{
		{Name: Copper, Cost: 0, Types: TypeTreasure, Value: 1},
		{Name: Silver, Cost: 3, Types: TypeTreasure, Value: 2},
		{Name: Gold, Cost: 6, Types: TypeTreasure, Value: 3},

		{Name: Estate, Cost: 2, Types: TypeVictory, Points: StaticPoints(1)},
		{Name: Duchy, Cost: 5, Types: TypeVictory, Points: StaticPoints(3)},
		{Name: Province, Cost: 8, Types: TypeVictory, Points: StaticPoints(6)},
		{Name: Curse, Cost: 0, Types: TypeCurse, Points: StaticPoints(-1)},
		// Gardens is worth 1 VP per full 10 cards its owner holds, so its
		// value has to be recomputed against the final collection.
		{Name: Gardens, Cost: 4, Types: TypeVictory, Points: func(owned DeckInfo) int {
			return owned.TotalCards() / 10
		}},

		{Name: Cellar, Cost: 2, Types: TypeAction, Effect: Cellar},
		{Name: Chapel, Cost: 2, Types: TypeAction, Effect: Chapel},
		{Name: Moat, Cost: 2, Types: TypeAction | TypeReaction, Effect: Moat},
		{Name: Village, Cost: 3, Types: TypeAction, Effect: Village},
		{Name: Woodcutter, Cost: 3, Types: TypeAction, Effect: Woodcutter},
		{Name: Workshop, Cost: 3, Types: TypeAction, Effect: Workshop},
		{Name: Smithy, Cost: 4, Types: TypeAction, Effect: Smithy},
		{Name: CouncilRoom, Cost: 5, Types: TypeAction, Effect: CouncilRoom},
		{Name: Festival, Cost: 5, Types: TypeAction, Effect: Festival},
		{Name: Laboratory, Cost: 5, Types: TypeAction, Effect: Laboratory},
		{Name: Market, Cost: 5, Types: TypeAction, Effect: Market},
		{Name: Mine, Cost: 5, Types: TypeAction, Effect: Mine},
		{Name: Witch, Cost: 5, Types: TypeAction | TypeAttack, Effect: Witch},
	}
}
