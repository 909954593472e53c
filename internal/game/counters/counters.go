package counters

// Pool tracks one player's per-turn resources. Values never go below zero;
// an adjustment that would underflow clamps instead, since card effects may
// legally subtract more than is present.
type Pool struct {
	Actions int
	Buys    int
	Coins   int
}

// NewPool returns a pool holding the standard start-of-turn resources.
func NewPool() *Pool {
	p := &Pool{}
	p.ResetForTurn()
	return p
}

// ResetForTurn restores the standard start-of-turn resources.
func (p *Pool) ResetForTurn() {
	p.Actions = 1
	p.Buys = 1
	p.Coins = 0
}

// AdjustActions adds delta to the action count, clamping at zero.
func (p *Pool) AdjustActions(delta int) {
	p.Actions = clamp(p.Actions + delta)
}

// AdjustBuys adds delta to the buy count, clamping at zero.
func (p *Pool) AdjustBuys(delta int) {
	p.Buys = clamp(p.Buys + delta)
}

// AdjustCoins adds delta to the coin count, clamping at zero.
func (p *Pool) AdjustCoins(delta int) {
	p.Coins = clamp(p.Coins + delta)
}

// Copy returns an independent copy of the pool.
func (p *Pool) Copy() *Pool {
	cp := *p
	return &cp
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
