package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

func newTestEngine(t *testing.T) (*DominionEngine, *cards.Catalog) {
	t.Helper()
	catalog, err := cards.NewCatalog(cards.BaseSet())
	require.NoError(t, err)
	return NewDominionEngine(nil), catalog
}

func TestEngineNewGameAndLookup(t *testing.T) {
	e, catalog := newTestEngine(t)

	id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, NewFirstOptionProvider(), Options{Seed: 7})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	over, err := e.IsOver(id)
	require.NoError(t, err)
	assert.False(t, over)

	g, err := e.Game(id)
	require.NoError(t, err)
	assert.Len(t, g.Players(), 2)
}

func TestEngineUnknownGame(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.PlayTurn("no-such-game")
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = e.IsOver("no-such-game")
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = e.Scores("no-such-game")
	assert.ErrorIs(t, err, ErrGameNotFound)
	err = e.RemoveGame("no-such-game")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestEnginePlayTurnSummary(t *testing.T) {
	e, catalog := newTestEngine(t)
	id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, NewFirstOptionProvider(), Options{Seed: 7})
	require.NoError(t, err)

	summary, err := e.PlayTurn(id)
	require.NoError(t, err)
	assert.Equal(t, id, summary.GameID)
	assert.Equal(t, 1, summary.Turn)
	assert.Equal(t, "Alice", summary.Player)
	assert.Equal(t, 0, summary.Seat)
	// Cleanup always redraws a hand.
	assert.Equal(t, 5, summary.CardsDrawn)

	summary, err = e.PlayTurn(id)
	require.NoError(t, err)
	assert.Equal(t, "Bob", summary.Player)
	assert.Equal(t, 1, summary.Seat)
}

func TestEngineFullMatchRunsToCompletion(t *testing.T) {
	e, catalog := newTestEngine(t)
	id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, NewFirstOptionProvider(),
		Options{Seed: 11, MaxTurns: 400})
	require.NoError(t, err)

	turns := 0
	for {
		summary, err := e.PlayTurn(id)
		require.NoError(t, err)
		turns++
		require.LessOrEqual(t, turns, 400, "match must terminate")
		if summary.GameEnded {
			break
		}
	}

	over, err := e.IsOver(id)
	require.NoError(t, err)
	assert.True(t, over)

	scores, err := e.Scores(id)
	require.NoError(t, err)
	assert.Contains(t, scores, "Alice")
	assert.Contains(t, scores, "Bob")

	res, err := e.Result(id)
	require.NoError(t, err)
	assert.Len(t, res.Scores, 2)
	if !res.Tie {
		assert.GreaterOrEqual(t, res.WinnerSeat, 0)
	}
	// Both end conditions empty at least one pile on the way out.
	assert.NotEmpty(t, res.EmptiedPiles)
	assert.Positive(t, res.CardsGained[0]+res.CardsGained[1])

	// One more turn on a finished match is rejected.
	_, err = e.PlayTurn(id)
	assert.ErrorIs(t, err, ErrGameOver)

	require.NoError(t, e.RemoveGame(id))
	_, err = e.Game(id)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestEngineSameSeedSameOutcome(t *testing.T) {
	e, catalog := newTestEngine(t)

	run := func() *Result {
		id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, NewFirstOptionProvider(),
			Options{Seed: 99, MaxTurns: 400})
		require.NoError(t, err)
		for {
			summary, err := e.PlayTurn(id)
			require.NoError(t, err)
			if summary.GameEnded {
				break
			}
		}
		res, err := e.Result(id)
		require.NoError(t, err)
		return res
	}

	first := run()
	second := run()
	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.TurnsTaken, second.TurnsTaken)
	assert.Equal(t, first.WinnerSeat, second.WinnerSeat)
}

func TestEngineAbortGame(t *testing.T) {
	e, catalog := newTestEngine(t)
	id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, NewFirstOptionProvider(), Options{Seed: 7})
	require.NoError(t, err)

	_, err = e.PlayTurn(id)
	require.NoError(t, err)

	require.NoError(t, e.AbortGame(id))

	over, err := e.IsOver(id)
	require.NoError(t, err)
	assert.True(t, over)

	_, err = e.PlayTurn(id)
	assert.ErrorIs(t, err, ErrGameOver)

	// Aborting twice is an error.
	assert.ErrorIs(t, e.AbortGame(id), ErrGameOver)

	// An aborted match still reports a standing.
	res, err := e.Result(id)
	require.NoError(t, err)
	assert.Len(t, res.Scores, 2)
}

func TestEngineFailedTurnAbortsMatch(t *testing.T) {
	e, catalog := newTestEngine(t)
	rogue := &scriptedProvider{
		actionCard: func(_ *Player, _ []*cards.Card) *cards.Card { return nil },
		purchase:   func(_ *Player, _ []string) string { return "Forged Pile" },
	}
	id, err := e.NewGame([]string{"Alice", "Bob"}, catalog, rogue, Options{Seed: 7})
	require.NoError(t, err)

	_, err = e.PlayTurn(id)
	require.ErrorIs(t, err, ErrInvalidChoice)

	// The half-played turn cannot be resumed; the match is closed.
	over, err := e.IsOver(id)
	require.NoError(t, err)
	assert.True(t, over)

	_, err = e.PlayTurn(id)
	assert.ErrorIs(t, err, ErrGameOver)

	// The aborted match still reports its standing.
	res, err := e.Result(id)
	require.NoError(t, err)
	assert.Len(t, res.Scores, 2)
}
