package rules

// WatcherScope defines the scope of a watcher's tracking.
type WatcherScope int

const (
	// WatcherScopeGame tracks events for the entire game.
	WatcherScopeGame WatcherScope = iota
	// WatcherScopePlayer tracks events for a specific seat.
	WatcherScopePlayer
)

// String returns the string representation of the watcher scope.
func (ws WatcherScope) String() string {
	switch ws {
	case WatcherScopeGame:
		return "GAME"
	case WatcherScopePlayer:
		return "PLAYER"
	default:
		return "UNKNOWN"
	}
}

// Watcher is an interface for objects that observe game events and track
// derived state across the match (cards gained, piles emptied, and so on).
type Watcher interface {
	// Watch is called for every event published on the game's bus.
	Watch(event Event)

	// Reset clears the watcher's condition and accumulated state.
	Reset()

	// ConditionMet returns true if the tracked condition has been met.
	ConditionMet() bool

	// GetScope returns the scope of this watcher.
	GetScope() WatcherScope

	// GetKey returns a unique key for this watcher instance.
	GetKey() string
}

// BaseWatcher provides a base implementation for watchers.
type BaseWatcher struct {
	scope     WatcherScope
	condition bool
	key       string
}

// NewBaseWatcher creates a new base watcher with the specified scope.
func NewBaseWatcher(scope WatcherScope) *BaseWatcher {
	return &BaseWatcher{scope: scope}
}

// GetScope returns the watcher's scope.
func (bw *BaseWatcher) GetScope() WatcherScope {
	return bw.scope
}

// GetKey returns the watcher's key.
func (bw *BaseWatcher) GetKey() string {
	return bw.key
}

// SetKey sets the watcher's key.
func (bw *BaseWatcher) SetKey(key string) {
	bw.key = key
}

// ConditionMet reports whether the tracked condition has been met.
func (bw *BaseWatcher) ConditionMet() bool {
	return bw.condition
}

// SetCondition sets the tracked condition flag.
func (bw *BaseWatcher) SetCondition(met bool) {
	bw.condition = met
}

// Reset clears the condition flag.
func (bw *BaseWatcher) Reset() {
	bw.condition = false
}

// WatcherRegistry attaches watchers to an event bus and fans events out to
// them. Watchers registered twice under the same key are rejected.
type WatcherRegistry struct {
	watchers map[string]Watcher
	handle   int
	bus      *EventBus
}

// NewWatcherRegistry creates a registry subscribed to the given bus.
func NewWatcherRegistry(bus *EventBus) *WatcherRegistry {
	r := &WatcherRegistry{
		watchers: make(map[string]Watcher),
		bus:      bus,
	}
	r.handle = bus.Subscribe(func(event Event) {
		for _, w := range r.watchers {
			w.Watch(event)
		}
	})
	return r
}

// Add registers a watcher. Returns false if the key is already taken.
func (r *WatcherRegistry) Add(w Watcher) bool {
	if w == nil {
		return false
	}
	if _, ok := r.watchers[w.GetKey()]; ok {
		return false
	}
	r.watchers[w.GetKey()] = w
	return true
}

// Get returns the watcher registered under key, or nil.
func (r *WatcherRegistry) Get(key string) Watcher {
	return r.watchers[key]
}

// ResetAll resets every registered watcher.
func (r *WatcherRegistry) ResetAll() {
	for _, w := range r.watchers {
		w.Reset()
	}
}
