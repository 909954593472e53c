package rules

import "fmt"

// Phase represents the phases of a deck-builder turn.
type Phase int

const (
	PhaseAction Phase = iota
	PhaseBuy
	PhaseCleanup
)

var phaseNames = map[Phase]string{
	PhaseAction:  "ACTION",
	PhaseBuy:     "BUY",
	PhaseCleanup: "CLEANUP",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// phaseSequence is the fixed turn structure. Phases never reorder; a phase
// with nothing eligible to do simply completes immediately.
var phaseSequence = []Phase{PhaseAction, PhaseBuy, PhaseCleanup}

// TurnManager tracks turn progression and the active seat.
type TurnManager struct {
	orderIndex int
	turnNumber int
	activeSeat int
	seats      int
}

// NewTurnManager creates a turn manager for the given number of seats,
// starting at turn 1, action phase, seat 0.
func NewTurnManager(seats int) *TurnManager {
	if seats < 1 {
		seats = 1
	}
	return &TurnManager{
		orderIndex: 0,
		turnNumber: 1,
		activeSeat: 0,
		seats:      seats,
	}
}

// CurrentPhase returns the phase currently in progress.
func (tm *TurnManager) CurrentPhase() Phase {
	return phaseSequence[tm.orderIndex]
}

// TurnNumber returns the current turn number (1-based, incremented after
// every player's cleanup, so it counts turns across all seats).
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// ActiveSeat returns the seat index of the player whose turn it is.
func (tm *TurnManager) ActiveSeat() int {
	return tm.activeSeat
}

// Seats returns the number of seats at the table.
func (tm *TurnManager) Seats() int {
	return tm.seats
}

// AdvancePhase advances to the next phase in the turn structure. When the
// cleanup phase completes, the turn number is incremented and the active
// seat rotates to the next player.
func (tm *TurnManager) AdvancePhase() Phase {
	tm.orderIndex++
	if tm.orderIndex >= len(phaseSequence) {
		tm.orderIndex = 0
		tm.turnNumber++
		tm.activeSeat = (tm.activeSeat + 1) % tm.seats
	}
	return tm.CurrentPhase()
}
