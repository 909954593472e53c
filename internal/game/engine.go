package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

// DominionEngine manages the lifecycle of matches. Each match's state is
// mutated by exactly one turn at a time: the per-match mutex is the single
// logical thread of control the rules assume, and abort points only exist
// between turns.
type DominionEngine struct {
	mu     sync.RWMutex
	games  map[string]*matchState
	logger *zap.Logger
}

type matchState struct {
	mu   sync.Mutex // serializes turns and aborts
	game *Game
}

// NewDominionEngine creates a new engine instance.
func NewDominionEngine(logger *zap.Logger) *DominionEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DominionEngine{
		games:  make(map[string]*matchState),
		logger: logger,
	}
}

// NewGame creates a match for the named players and returns its ID.
func (e *DominionEngine) NewGame(names []string, catalog *cards.Catalog, provider DecisionProvider, opts Options) (string, error) {
	g, err := NewGame(names, catalog, provider, opts)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	gameID := uuid.New().String()

	e.mu.Lock()
	e.games[gameID] = &matchState{game: g}
	e.mu.Unlock()

	e.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.Int("players", len(names)),
		zap.Int64("seed", opts.Seed),
	)
	return gameID, nil
}

func (e *DominionEngine) match(gameID string) (*matchState, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ms, ok := e.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return ms, nil
}

// PlayTurn runs one complete turn for the match's active player and
// returns a summary of what happened. Returns ErrGameOver once the match
// has ended or been aborted.
func (e *DominionEngine) PlayTurn(gameID string) (*TurnSummary, error) {
	ms, err := e.match(gameID)
	if err != nil {
		return nil, err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	g := ms.game
	if g.Over() {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, gameID)
	}

	recorder := newSummaryRecorder(g)
	err = g.playTurn()
	summary := recorder.finish()
	summary.GameID = gameID
	if err != nil {
		// A failed turn leaves the match partially mutated mid-phase.
		// There is no rollback; the match is aborted rather than left
		// resumable in an inconsistent state.
		g.abort()
		e.logger.Error("turn failed",
			zap.String("game_id", gameID),
			zap.Int("turn", summary.Turn),
			zap.String("player", summary.Player),
			zap.Error(err),
		)
		return nil, err
	}

	e.logger.Debug("turn completed",
		zap.String("game_id", gameID),
		zap.Int("turn", summary.Turn),
		zap.String("player", summary.Player),
		zap.Strings("actions", summary.ActionsPlayed),
		zap.Strings("bought", summary.Bought),
		zap.Int("drawn", summary.CardsDrawn),
	)
	if summary.GameEnded {
		e.logger.Info("game ended",
			zap.String("game_id", gameID),
			zap.Int("turns", summary.Turn),
		)
	}
	return summary, nil
}

// IsOver reports whether the match has ended.
func (e *DominionEngine) IsOver(gameID string) (bool, error) {
	ms, err := e.match(gameID)
	if err != nil {
		return false, err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.game.Over(), nil
}

// Scores returns each player's current score by name. Scores are
// recomputed from the zones on every call, never cached.
func (e *DominionEngine) Scores(gameID string) (map[string]int, error) {
	ms, err := e.match(gameID)
	if err != nil {
		return nil, err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	scores := make(map[string]int, len(ms.game.Players()))
	for _, p := range ms.game.Players() {
		scores[p.Name] = ms.game.Score(p)
	}
	return scores, nil
}

// Result returns the final standing of a finished match.
func (e *DominionEngine) Result(gameID string) (*Result, error) {
	ms, err := e.match(gameID)
	if err != nil {
		return nil, err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.game.Result()
}

// AbortGame cancels a match. The per-match lock means the abort lands
// between turns, never inside an effect chain.
func (e *DominionEngine) AbortGame(gameID string) error {
	ms, err := e.match(gameID)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.game.Over() {
		return fmt.Errorf("%w: %s", ErrGameOver, gameID)
	}
	ms.game.abort()
	e.logger.Info("game aborted", zap.String("game_id", gameID))
	return nil
}

// RemoveGame drops a finished match from the engine.
func (e *DominionEngine) RemoveGame(gameID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(e.games, gameID)
	return nil
}

// Game exposes the underlying match state for inspection. Callers must not
// mutate through it while turns may be running.
func (e *DominionEngine) Game(gameID string) (*Game, error) {
	ms, err := e.match(gameID)
	if err != nil {
		return nil, err
	}
	return ms.game, nil
}
