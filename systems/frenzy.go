package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// FrenzySystem is the timed global boost: doubled multipliers and flow,
// patience decay suspended. Activation is edge-triggered; reaching the
// meter threshold while already active has no additional effect.
type FrenzySystem struct{}

func NewFrenzySystem() *FrenzySystem {
	return &FrenzySystem{}
}

func (fs *FrenzySystem) Priority() int {
	return constants.PriorityFrenzy
}

// Update implements engine.System; deactivation runs as a scheduled task
func (fs *FrenzySystem) Update(ctx *engine.GameContext, dt time.Duration) {}

// Activate flips frenzy on and schedules the automatic reversion. The
// reversion task carries the round generation, so a round ending
// mid-frenzy strands it instead of mutating the next round.
func (fs *FrenzySystem) Activate(ctx *engine.GameContext) {
	st := ctx.State
	if !st.FrenzyActive.CompareAndSwap(false, true) {
		return
	}

	ctx.PushFeedback(events.FeedbackFrenzy, "FRENZY!")

	boostLevel := st.Upgrades.Level(game.UpgradeFrenzyBoost)
	duration := constants.FrenzyBaseDuration + time.Duration(boostLevel)*constants.FrenzyPerBoostLevel

	gen := st.Generation.Load()
	ctx.Tasks.Schedule(ctx.Clock.Now().Add(duration), gen, func(c *engine.GameContext) {
		c.State.FrenzyActive.Store(false)
	})
}
