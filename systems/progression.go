package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// ProgressionSystem watches cumulative score against the shift ladder.
// The top tier has no successor; once reached, no further transitions
// occur.
type ProgressionSystem struct{}

func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

func (ps *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

// Update implements engine.System; progression is checked per score
// mutation, not per tick
func (ps *ProgressionSystem) Update(ctx *engine.GameContext, dt time.Duration) {}

// CheckShiftAdvance promotes to the next shift when the score crosses its
// threshold. The level-up interstitial pauses pouring, and the frenzy
// meter gets a reward nudge that never edge-triggers by itself.
func (ps *ProgressionSystem) CheckShiftAdvance(ctx *engine.GameContext) {
	st := ctx.State
	next, ok := game.NextShift(st.Shift)
	if !ok || st.Score < next.Threshold {
		return
	}

	st.Shift = next.ID
	st.Level = game.ShiftLevel(next.ID)
	st.Phase = game.PhaseLevelUp
	st.IsPouring.Store(false)

	st.FrenzyMeter += constants.LevelUpFrenzyBonus
	if st.FrenzyMeter > constants.FrenzyMeterMax {
		st.FrenzyMeter = constants.FrenzyMeterMax
	}

	ctx.PushFeedback(events.FeedbackLevelUp, next.ID.String())
}
