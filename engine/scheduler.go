package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hopwire/pour-panic/events"
)

// System is one slice of the simulation. Update runs every tick in
// priority order with the state lock held; systems that also implement
// events.Handler receive routed events in the dispatch phase.
type System interface {
	Priority() int
	Update(ctx *GameContext, dt time.Duration)
}

// ClockScheduler drives the simulation on a fixed tick. One tick is:
// due scheduled tasks, then pending command events, then system updates
// in ascending priority. All of it runs under the state write lock, so
// systems never synchronize among themselves; callers must not re-enter
// Tick before it returns.
type ClockScheduler struct {
	ctx     *GameContext
	router  *events.Router[*GameContext]
	systems []System

	tickInterval time.Duration
	lastGameTick time.Time // last tick in game time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler over the context's event queue
func NewClockScheduler(ctx *GameContext, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		ctx:          ctx,
		router:       events.NewRouter[*GameContext](ctx.EventQueue()),
		tickInterval: tickInterval,
		lastGameTick: ctx.Clock.Now(),
		stopChan:     make(chan struct{}),
	}
}

// Register adds a system; must be called before Start. Systems that
// implement events.Handler are also wired into the dispatch phase.
func (cs *ClockScheduler) Register(system System) {
	cs.systems = append(cs.systems, system)
	if handler, ok := system.(events.Handler[*GameContext]); ok {
		cs.router.Register(handler)
	}
}

// RegisterHandler wires an event-only collaborator (audio, toast feed)
func (cs *ClockScheduler) RegisterHandler(handler events.Handler[*GameContext]) {
	cs.router.Register(handler)
}

// Start launches the tick loop goroutine
func (cs *ClockScheduler) Start() {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	sort.SliceStable(cs.systems, func(i, j int) bool {
		return cs.systems[i].Priority() < cs.systems[j].Priority()
	})

	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		ticker := time.NewTicker(cs.tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cs.stopChan:
				return
			case <-ticker.C:
				cs.Tick()
			}
		}
	}()
}

// Stop terminates the tick loop and waits for the current tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	cs.wg.Wait()
	cs.running.Store(false)
}

// Tick advances the simulation one slice. Exported so tests can drive
// the simulation deterministically without the goroutine.
func (cs *ClockScheduler) Tick() {
	now := cs.ctx.Clock.Now()
	dt := now.Sub(cs.lastGameTick)
	if dt < 0 {
		dt = 0
	}
	cs.lastGameTick = now
	cs.tickCount.Add(1)

	st := cs.ctx.State
	st.Lock()
	defer st.Unlock()

	cs.ctx.Tasks.Advance(cs.ctx, now)
	cs.router.DispatchAll(cs.ctx)
	for _, system := range cs.systems {
		system.Update(cs.ctx, dt)
	}
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
