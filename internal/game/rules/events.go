package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	// Turn events
	EventTurnBegan    EventType = "TURN_BEGAN"
	EventTurnEnded    EventType = "TURN_ENDED"
	EventPhaseChanged EventType = "PHASE_CHANGED"

	// Zone events
	EventCardDrawn      EventType = "CARD_DRAWN"
	EventCardPlayed     EventType = "CARD_PLAYED"
	EventCardDiscarded  EventType = "CARD_DISCARDED"
	EventDeckReshuffled EventType = "DECK_RESHUFFLED"

	// Supply events
	EventCardGained  EventType = "CARD_GAINED"
	EventCardBought  EventType = "CARD_BOUGHT"
	EventPileEmptied EventType = "PILE_EMPTIED"

	// Removal and visibility events
	EventCardTrashed  EventType = "CARD_TRASHED"
	EventCardRevealed EventType = "CARD_REVEALED"

	// Match events
	EventGameEnded EventType = "GAME_ENDED"
)

// Event represents a state change that other subsystems may react to.
// Card names identify kinds; cards are fungible within a kind, so no
// per-instance identity is carried.
type Event struct {
	Type      EventType
	Seat      int    // acting player's seat, -1 when not player-scoped
	Card      string // card kind involved, empty when not card-scoped
	Amount    int    // numeric payload (cards drawn, pile count, score)
	Source    string // card kind whose effect caused the event, if any
	Timestamp time.Time
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with
// type filtering. Delivery happens on the publisher's goroutine; the engine
// publishes only from the single active turn's control flow.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]TypedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, listener := range bus.listeners {
		listener(event)
	}
	if typedListeners, ok := bus.typedListeners[event.Type]; ok {
		for _, listener := range typedListeners {
			listener.Callback(event)
		}
	}
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, seat int, card string) Event {
	return Event{
		Type:      eventType,
		Seat:      seat,
		Card:      card,
		Timestamp: time.Now(),
	}
}

// NewEventWithAmount creates a new event with an amount value.
func NewEventWithAmount(eventType EventType, seat int, card string, amount int) Event {
	evt := NewEvent(eventType, seat, card)
	evt.Amount = amount
	return evt
}
