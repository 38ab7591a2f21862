package engine

import (
	"github.com/hopwire/pour-panic/game"
)

// Snapshot is a consistent read-only copy of the game state for the
// render layer. Collaborators consume snapshots and emitted events only;
// they never reach back into the state.
type Snapshot struct {
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
	FrenzyActive  bool

	CustomerQueue []game.Customer
	CurrentFill   float64
	TargetFill    float64
	IsPouring     bool
	ActiveTapID   string

	RoundTimeRemaining float64
	CountdownValue     int

	HighScoreClassic int
	HighScoreTimed   int
	TotalTips        float64
	Upgrades         game.UpgradeList
	Settings         game.Settings
	LastSummary      *game.RunSummary
}

// Snapshot copies the state under the read lock
func (st *GameState) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()

	queue := make([]game.Customer, len(st.CustomerQueue))
	copy(queue, st.CustomerQueue)
	ups := make(game.UpgradeList, len(st.Upgrades))
	copy(ups, st.Upgrades)

	var summary *game.RunSummary
	if st.LastSummary != nil {
		s := *st.LastSummary
		summary = &s
	}

	return Snapshot{
		Phase:              st.Phase,
		Mode:               st.Mode,
		Shift:              st.Shift,
		Level:              st.Level,
		Score:              st.Score,
		TipsEarned:         st.TipsEarned,
		TipsThisShift:      st.TipsThisShift,
		Combo:              st.Combo,
		MaxCombo:           st.MaxCombo,
		Perfects:           st.Perfects,
		Overflows:          st.Overflows,
		Walkouts:           st.Walkouts,
		LinePressure:       st.LinePressure,
		FrenzyMeter:        st.FrenzyMeter,
		FrenzyActive:       st.FrenzyActive.Load(),
		CustomerQueue:      queue,
		CurrentFill:        st.CurrentFill,
		TargetFill:         st.TargetFill,
		IsPouring:          st.IsPouring.Load(),
		ActiveTapID:        st.ActiveTapID,
		RoundTimeRemaining: st.RoundTimeRemaining,
		CountdownValue:     st.CountdownValue,
		HighScoreClassic:   st.HighScoreClassic,
		HighScoreTimed:     st.HighScoreTimed,
		TotalTips:          st.TotalTips,
		Upgrades:           ups,
		Settings:           st.Settings,
		LastSummary:        summary,
	}
}

// NextShiftThreshold returns the score unlocking the next shift, or
// false at the top tier
func (s *Snapshot) NextShiftThreshold() (int, bool) {
	next, ok := game.NextShift(s.Shift)
	if !ok {
		return 0, false
	}
	return next.Threshold, true
}

// ShiftProgress derives the 0..1 progress toward the next shift. Derived
// on demand, never stored, so it cannot go stale.
func (s *Snapshot) ShiftProgress() float64 {
	next, ok := s.NextShiftThreshold()
	if !ok {
		return 1
	}
	current := game.ShiftParams(s.Shift).Threshold
	span := float64(next - current)
	if span <= 0 {
		return 1
	}
	p := float64(s.Score-current) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
