package engine

import (
	"sort"
	"sync"
	"time"
)

// TaskFn is a scheduled one-shot effect; it runs inside a tick with the
// state lock held
type TaskFn func(ctx *GameContext)

type scheduledTask struct {
	runAt      time.Time // game time
	generation uint64
	fn         TaskFn
}

// TaskScheduler runs delayed one-shot effects (frenzy auto-off, countdown
// digits, reward-ad payout) on game time. Every task is tagged with the
// round generation it belongs to; a task whose generation no longer
// matches the state is dropped instead of mutating a superseded round.
type TaskScheduler struct {
	mu    sync.Mutex
	tasks []scheduledTask
}

func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{}
}

// Schedule registers fn to run at game time runAt under the given
// round generation
func (ts *TaskScheduler) Schedule(runAt time.Time, generation uint64, fn TaskFn) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tasks = append(ts.tasks, scheduledTask{runAt: runAt, generation: generation, fn: fn})
}

// Advance runs all due tasks in schedule order and prunes stale ones.
// Called from the tick loop with the state lock held.
func (ts *TaskScheduler) Advance(ctx *GameContext, now time.Time) {
	ts.mu.Lock()
	current := ctx.State.Generation.Load()

	var due []scheduledTask
	remaining := ts.tasks[:0]
	for _, t := range ts.tasks {
		switch {
		case t.generation != current:
			// Stale: belongs to a round that no longer exists
		case !t.runAt.After(now):
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	ts.tasks = remaining
	ts.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].runAt.Before(due[j].runAt) })
	for _, t := range due {
		// Re-check: an earlier task in this batch may have reset the round
		if ctx.State.Generation.Load() != t.generation {
			continue
		}
		t.fn(ctx)
	}
}

// Pending returns the number of queued tasks, stale ones included
func (ts *TaskScheduler) Pending() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.tasks)
}
