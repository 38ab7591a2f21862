package engine

import (
	"sync"
	"sync/atomic"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/game"
)

// GameState is the single source of truth for one player's round and
// economy. The tick loop holds the write lock for the duration of a tick
// and systems mutate fields directly; everything outside the tick reads
// through Snapshot().
type GameState struct {
	// ===== REAL-TIME STATE (lock-free atomics) =====
	// Read by the render/input goroutines between ticks.

	FrenzyActive atomic.Bool
	IsPouring    atomic.Bool

	// Generation tags scheduled one-shot effects; a task whose recorded
	// generation no longer matches is stale and must not run
	Generation atomic.Uint64

	mu sync.RWMutex

	// ===== TICK STATE (guarded by mu) =====

	Phase game.Phase
	Mode  game.Mode
	Shift game.ShiftID
	Level int

	Score         int
	TipsEarned    float64
	TipsThisShift float64
	Combo         int
	MaxCombo      int
	Perfects      int
	Overflows     int
	Walkouts      int
	LinePressure  float64
	FrenzyMeter   float64

	CustomerQueue []game.Customer
	CurrentFill   float64
	TargetFill    float64
	ActiveTapID   string

	RoundTimeRemaining float64 // seconds, Timed mode only
	CountdownValue     int
	SpawnElapsedMs     float64

	LastSummary *game.RunSummary
	runSaved    bool

	// ===== PERSISTED ECONOMY (guarded by mu, survives rounds) =====

	HighScoreClassic int
	HighScoreTimed   int
	TotalTips        float64
	Upgrades         game.UpgradeList
	Settings         game.Settings
}

// NewGameState creates an idle state with the default catalog
func NewGameState() *GameState {
	return &GameState{
		Phase:       game.PhaseIdle,
		Shift:       game.ShiftOpening,
		Level:       1,
		TargetFill:  constants.DefaultTargetFill,
		ActiveTapID: "tap_1",
		Upgrades:    game.DefaultUpgrades(),
		Settings:    game.DefaultSettings(),
	}
}

// Lock takes the tick-exclusive write lock
func (st *GameState) Lock() { st.mu.Lock() }

// Unlock releases the tick-exclusive write lock
func (st *GameState) Unlock() { st.mu.Unlock() }

// ResetRound clears all in-round state for a fresh start. Bumping the
// generation invalidates every outstanding scheduled effect of the
// superseded round. Caller holds the lock.
func (st *GameState) ResetRound(mode game.Mode) {
	st.Generation.Add(1)
	st.Mode = mode
	st.Shift = game.ShiftOpening
	st.Level = 1
	st.Score = 0
	st.TipsEarned = 0
	st.TipsThisShift = 0
	st.Combo = 0
	st.MaxCombo = 0
	st.Perfects = 0
	st.Overflows = 0
	st.Walkouts = 0
	st.LinePressure = 0
	st.FrenzyMeter = 0
	st.CustomerQueue = nil
	st.CurrentFill = 0
	st.TargetFill = constants.DefaultTargetFill
	st.RoundTimeRemaining = constants.TimedRoundSeconds
	st.SpawnElapsedMs = 0
	st.LastSummary = nil
	st.runSaved = false
	st.FrenzyActive.Store(false)
	st.IsPouring.Store(false)
}

// EnqueueCustomer appends at the tail; an empty queue snaps the round's
// target fill to the new head immediately. Caller holds the lock.
func (st *GameState) EnqueueCustomer(c game.Customer) {
	if len(st.CustomerQueue) == 0 {
		st.TargetFill = c.TargetFill
	}
	st.CustomerQueue = append(st.CustomerQueue, c)
}

// PopHead removes the actively-served customer. Fill resets and the
// target snaps to the next head, or the default when the queue empties.
// Caller holds the lock.
func (st *GameState) PopHead() {
	if len(st.CustomerQueue) == 0 {
		return
	}
	st.CustomerQueue = st.CustomerQueue[1:]
	st.CurrentFill = 0
	if len(st.CustomerQueue) > 0 {
		st.TargetFill = st.CustomerQueue[0].TargetFill
	} else {
		st.TargetFill = constants.DefaultTargetFill
	}
}

// FoldRunSummary snapshots the finished round and folds it into the
// lifetime totals. Guarded so a round terminates into the economy exactly
// once, however it ends. Caller holds the lock.
func (st *GameState) FoldRunSummary() {
	if st.runSaved {
		return
	}
	st.runSaved = true

	summary := game.RunSummary{
		Score:     st.Score,
		Tips:      st.TipsEarned,
		Perfects:  st.Perfects,
		Overflows: st.Overflows,
		MaxCombo:  st.MaxCombo,
		Mode:      st.Mode,
	}
	st.LastSummary = &summary
	st.TotalTips += st.TipsEarned

	switch st.Mode {
	case game.ModeTimed:
		if st.Score > st.HighScoreTimed {
			st.HighScoreTimed = st.Score
		}
	default:
		if st.Score > st.HighScoreClassic {
			st.HighScoreClassic = st.Score
		}
	}
}

// RunFolded reports whether the current round already hit the economy
func (st *GameState) RunFolded() bool {
	return st.runSaved
}
