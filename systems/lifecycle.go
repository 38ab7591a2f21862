package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// LifecycleSystem owns the phase state machine: round start, countdown,
// pause/resume, screen navigation, mode-specific termination and the
// economy commands (shop, settings, reward ad).
type LifecycleSystem struct{}

func NewLifecycleSystem() *LifecycleSystem {
	return &LifecycleSystem{}
}

func (ls *LifecycleSystem) Priority() int {
	return constants.PriorityLifecycle
}

func (ls *LifecycleSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameStart,
		events.EventPhaseSet,
		events.EventShiftBegin,
		events.EventShiftTipsReset,
		events.EventUpgradePurchase,
		events.EventSettingToggle,
		events.EventAdRewardRequest,
	}
}

func (ls *LifecycleSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventGameStart:
		if payload, ok := event.Payload.(*events.GameStartPayload); ok {
			ls.startGame(ctx, payload.Mode)
		}
	case events.EventPhaseSet:
		if payload, ok := event.Payload.(*events.PhaseSetPayload); ok {
			ls.setPhase(ctx, payload.Phase)
		}
	case events.EventShiftBegin:
		ls.beginShift(ctx)
	case events.EventShiftTipsReset:
		ctx.State.TipsThisShift = 0
	case events.EventUpgradePurchase:
		if payload, ok := event.Payload.(*events.UpgradePurchasePayload); ok {
			ls.purchase(ctx, payload.UpgradeID)
		}
	case events.EventSettingToggle:
		if payload, ok := event.Payload.(*events.SettingTogglePayload); ok {
			ctx.State.Settings.Toggle(payload.Key)
			ctx.Persist()
		}
	case events.EventAdRewardRequest:
		ls.watchAd(ctx)
	}
}

// Update drives the Timed-mode countdown; it only advances while running
func (ls *LifecycleSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	st := ctx.State
	if st.Phase != game.PhaseRunning || st.Mode != game.ModeTimed {
		return
	}
	st.RoundTimeRemaining -= dt.Seconds()
	if st.RoundTimeRemaining <= 0 {
		st.RoundTimeRemaining = 0
		endRound(ctx)
	}
}

func (ls *LifecycleSystem) startGame(ctx *engine.GameContext, mode game.Mode) {
	st := ctx.State
	if ctx.Clock.IsPaused() {
		ctx.Clock.Resume()
	}
	st.ResetRound(mode)
	st.Phase = game.PhaseCountdown
	startCountdown(ctx)
}

func (ls *LifecycleSystem) setPhase(ctx *engine.GameContext, phase game.Phase) {
	st := ctx.State
	switch phase {
	case game.PhasePaused:
		if st.Phase != game.PhaseRunning {
			return
		}
		st.Phase = game.PhasePaused
		st.IsPouring.Store(false)
		ctx.Clock.Pause()

	case game.PhaseRunning:
		// Resume re-enters a short countdown; the round stays frozen
		// until it finishes
		if st.Phase != game.PhasePaused {
			return
		}
		ctx.Clock.Resume()
		st.Phase = game.PhaseCountdown
		startCountdown(ctx)

	case game.PhaseIdle:
		// Quit from pause, main-menu from game over, or closing a
		// menu screen. Any outstanding round effects are orphaned.
		if ctx.Clock.IsPaused() {
			ctx.Clock.Resume()
		}
		st.Generation.Add(1)
		st.IsPouring.Store(false)
		st.FrenzyActive.Store(false)
		st.Phase = game.PhaseIdle

	case game.PhaseTutorial, game.PhaseHowToPlay, game.PhaseSettings, game.PhaseRoundEnd:
		// Menu screens open from idle only
		if st.Phase != game.PhaseIdle {
			return
		}
		st.Phase = phase
	}
}

func (ls *LifecycleSystem) beginShift(ctx *engine.GameContext) {
	st := ctx.State
	if st.Phase != game.PhaseLevelUp {
		return
	}
	st.TipsThisShift = 0
	st.Phase = game.PhaseRunning
}

func (ls *LifecycleSystem) purchase(ctx *engine.GameContext, id string) {
	st := ctx.State
	spent := st.Upgrades.Purchase(id, st.TotalTips)
	if spent <= 0 {
		return
	}
	st.TotalTips -= spent
	ctx.Persist()
}

func (ls *LifecycleSystem) watchAd(ctx *engine.GameContext) {
	gen := ctx.State.Generation.Load()
	ctx.Tasks.Schedule(ctx.Clock.Now().Add(constants.AdWatchDelay), gen, func(c *engine.GameContext) {
		c.State.TotalTips += constants.AdRewardTips
		c.Persist()
		c.PushFeedback(events.FeedbackReward, "FREE TIPS!")
	})
}

// startCountdown announces the first digit and schedules the rest at the
// countdown cadence; the final step flips the phase to running. Each step
// is generation-tagged so a reset mid-countdown strands the chain.
func startCountdown(ctx *engine.GameContext) {
	st := ctx.State
	st.CountdownValue = constants.CountdownStart
	ctx.PushEvent(events.EventCountdownTick, &events.CountdownTickPayload{Value: st.CountdownValue})
	scheduleCountdownStep(ctx)
}

func scheduleCountdownStep(ctx *engine.GameContext) {
	gen := ctx.State.Generation.Load()
	ctx.Tasks.Schedule(ctx.Clock.Now().Add(constants.CountdownCadence), gen, func(c *engine.GameContext) {
		st := c.State
		if st.Phase != game.PhaseCountdown {
			return
		}
		st.CountdownValue--
		c.PushEvent(events.EventCountdownTick, &events.CountdownTickPayload{Value: st.CountdownValue})
		if st.CountdownValue > 0 {
			scheduleCountdownStep(c)
			return
		}
		st.Phase = game.PhaseRunning
	})
}

// endRound terminates the current round: fold the run summary into the
// lifetime economy (exactly once), persist, and orphan any scheduled
// effects still belonging to the round.
func endRound(ctx *engine.GameContext) {
	st := ctx.State
	if st.RunFolded() {
		return
	}
	st.FoldRunSummary()
	ctx.Persist()
	st.Phase = game.PhaseGameOver
	st.IsPouring.Store(false)
	st.FrenzyActive.Store(false)
	st.Generation.Add(1)
	ctx.PushFeedback(events.FeedbackGameOver, "GAME OVER")
}
