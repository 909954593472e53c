package game

import "errors"

// Predefined engine errors. Rule outcomes that are normal in-game results
// (drawing from an empty deck, gaining from an empty pile during effect
// resolution) are not represented here; they resolve silently per the rules.
var (
	// ErrIllegalPurchase is returned when a buy fails a precondition:
	// insufficient coins, no buys remaining, or an empty pile. The game
	// state is left untouched.
	ErrIllegalPurchase = errors.New("illegal purchase")

	// ErrSupplyExhausted is returned by Supply.Take on an empty pile.
	// Effect resolution treats it as a silent no-op; direct callers may
	// surface it.
	ErrSupplyExhausted = errors.New("supply pile exhausted")

	// ErrInvalidChoice is returned when a decision provider answers
	// outside the legal set it was given. The engine never substitutes a
	// default for a broken provider.
	ErrInvalidChoice = errors.New("decision provider returned invalid choice")

	// ErrUnknownCard is returned when a card name has no catalog entry.
	ErrUnknownCard = errors.New("unknown card")

	// ErrGameNotFound is returned for operations on an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameOver is returned when a turn is requested on a finished or
	// aborted game.
	ErrGameOver = errors.New("game is over")

	// ErrGameInProgress is returned when a result is requested from a
	// game that has not ended yet.
	ErrGameInProgress = errors.New("game still in progress")
)
