package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// GameContext bundles everything a system needs: the owned state
// aggregate, the event queue, the pausable clock, the task scheduler,
// the tap bank and the persistence port.
type GameContext struct {
	// Immutable after init; internal synchronization where needed
	State *GameState
	Clock *PausableClock
	Tasks *TaskScheduler
	Rand  *rand.Rand
	Taps  []game.Tap
	Store SaveStore

	eventQueue *events.EventQueue
}

// NewGameContext wires a fresh context. store may be nil for an
// ephemeral session; taps must be non-empty (startup precondition).
func NewGameContext(store SaveStore) *GameContext {
	ctx := &GameContext{
		State:      NewGameState(),
		Clock:      NewPausableClock(),
		Tasks:      NewTaskScheduler(),
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Taps:       game.DefaultTaps(),
		Store:      store,
		eventQueue: events.NewEventQueue(),
	}

	if store != nil {
		persisted, err := store.Load()
		if err != nil {
			log.Printf("store load failed, starting fresh: %v", err)
			persisted = DefaultPersisted()
		}
		ctx.State.Lock()
		ctx.State.ApplyPersisted(persisted)
		ctx.State.Unlock()
	}

	return ctx
}

// EventQueue exposes the queue for router construction
func (ctx *GameContext) EventQueue() *events.EventQueue {
	return ctx.eventQueue
}

// PushEvent enqueues a simulation event stamped with game time
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any) {
	ctx.eventQueue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: ctx.Clock.Now(),
	})
}

// PushFeedback emits an outbound feedback event for collaborators
func (ctx *GameContext) PushFeedback(kind events.FeedbackKind, message string) {
	ctx.PushEvent(events.EventFeedback, &events.FeedbackPayload{Kind: kind, Message: message})
}

// ActiveTap resolves the selected tap, falling back to the first tap when
// the id is unknown. Caller holds the state lock.
func (ctx *GameContext) ActiveTap() game.Tap {
	return game.FindTap(ctx.Taps, ctx.State.ActiveTapID)
}

// Persist pushes the persisted subset through the store port. Safe to
// call with the state lock held; store errors are logged, never fatal.
func (ctx *GameContext) Persist() {
	if ctx.Store == nil {
		return
	}
	if err := ctx.Store.Save(ctx.State.CollectPersisted()); err != nil {
		log.Printf("store save failed: %v", err)
	}
}
