package engine

import (
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// Inbound command surface. These are the only legal entry points into
// simulation state from outside the tick: each pushes a typed event that
// the systems consume at the start of the next tick. Invalid commands are
// absorbed as no-ops by their consumers.

// StartNewGame resets the round and enters the countdown
func (ctx *GameContext) StartNewGame(mode game.Mode) {
	ctx.PushEvent(events.EventGameStart, &events.GameStartPayload{Mode: mode})
}

// SetPhase requests a direct phase transition (pause, quit, screens)
func (ctx *GameContext) SetPhase(phase game.Phase) {
	ctx.PushEvent(events.EventPhaseSet, &events.PhaseSetPayload{Phase: phase})
}

// StartPour begins the held pour action
func (ctx *GameContext) StartPour() {
	ctx.PushEvent(events.EventPourStart, nil)
}

// StopPour releases the held pour action
func (ctx *GameContext) StopPour() {
	ctx.PushEvent(events.EventPourStop, nil)
}

// Dump resets the fill level to zero
func (ctx *GameContext) Dump() {
	ctx.PushEvent(events.EventFillDump, nil)
}

// SelectTap switches the active tap
func (ctx *GameContext) SelectTap(id string) {
	ctx.PushEvent(events.EventTapSelect, &events.TapSelectPayload{TapID: id})
}

// Serve evaluates the current fill against the queue head
func (ctx *GameContext) Serve() {
	ctx.PushEvent(events.EventServeRequest, nil)
}

// PurchaseUpgrade attempts a shop purchase
func (ctx *GameContext) PurchaseUpgrade(id string) {
	ctx.PushEvent(events.EventUpgradePurchase, &events.UpgradePurchasePayload{UpgradeID: id})
}

// ToggleSetting flips a persisted boolean setting
func (ctx *GameContext) ToggleSetting(key string) {
	ctx.PushEvent(events.EventSettingToggle, &events.SettingTogglePayload{Key: key})
}

// WatchAdForTips simulates a reward ad and grants fixed tips
func (ctx *GameContext) WatchAdForTips() {
	ctx.PushEvent(events.EventAdRewardRequest, nil)
}

// ResetShiftTips zeroes the per-shift tip counter
func (ctx *GameContext) ResetShiftTips() {
	ctx.PushEvent(events.EventShiftTipsReset, nil)
}

// BeginShift leaves the level-up interstitial and resumes the round
func (ctx *GameContext) BeginShift() {
	ctx.PushEvent(events.EventShiftBegin, nil)
}
