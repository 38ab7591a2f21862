package events

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventGameStart resets state and enters the pre-round countdown
	// Trigger: main menu / retry | Consumer: LifecycleSystem
	// Payload: *GameStartPayload
	EventGameStart EventType = iota

	// EventPhaseSet requests a direct phase transition (pause, resume,
	// quit-to-menu, open/close help, settings, shop)
	// Trigger: input layer | Consumer: LifecycleSystem
	// Payload: *PhaseSetPayload
	EventPhaseSet

	// EventShiftBegin leaves the level-up interstitial and resumes the
	// round (shift tip counter reset, phase back to running)
	// Trigger: input layer | Consumer: LifecycleSystem | Payload: nil
	EventShiftBegin

	// EventPourStart / EventPourStop toggle the held pour action
	// Trigger: input layer | Consumer: PourSystem | Payload: nil
	EventPourStart
	EventPourStop

	// EventFillDump resets the fill level to zero
	// Trigger: input layer (dump button) | Consumer: PourSystem
	// Payload: nil
	EventFillDump

	// EventTapSelect switches the active tap
	// Trigger: input layer | Consumer: PourSystem
	// Payload: *TapSelectPayload
	EventTapSelect

	// EventServeRequest evaluates the current fill against the queue head
	// Trigger: input layer (serve button) | Consumer: ScoringSystem
	// Payload: nil
	EventServeRequest

	// EventUpgradePurchase attempts a shop purchase
	// Trigger: shop screen | Consumer: LifecycleSystem
	// Payload: *UpgradePurchasePayload
	EventUpgradePurchase

	// EventSettingToggle flips a persisted boolean setting
	// Trigger: settings screen | Consumer: LifecycleSystem
	// Payload: *SettingTogglePayload
	EventSettingToggle

	// EventAdRewardRequest simulates a reward ad and grants fixed tips
	// Trigger: shop screen | Consumer: LifecycleSystem | Payload: nil
	EventAdRewardRequest

	// EventShiftTipsReset zeroes the per-shift tip counter
	// Trigger: level-up screen | Consumer: LifecycleSystem | Payload: nil
	EventShiftTipsReset

	// EventFeedback is the outbound feedback signal for serve results,
	// walkouts, frenzy, level-ups and game over. The simulation emits it
	// and never reads it back; audio and the toast feed consume it.
	// Payload: *FeedbackPayload
	EventFeedback

	// EventCountdownTick announces a pre-round countdown digit
	// Trigger: LifecycleSystem scheduled task
	// Consumer: audio, render | Payload: *CountdownTickPayload
	EventCountdownTick
)

// FeedbackKind tags a feedback event for collaborators
type FeedbackKind int

const (
	FeedbackPerfect FeedbackKind = iota
	FeedbackGood
	FeedbackBad
	FeedbackOverflow
	FeedbackWrongBeverage
	FeedbackWalkout
	FeedbackFrenzy
	FeedbackLevelUp
	FeedbackGameOver
	FeedbackReward
)

var feedbackNames = map[FeedbackKind]string{
	FeedbackPerfect:       "PERFECT",
	FeedbackGood:          "GOOD",
	FeedbackBad:           "BAD",
	FeedbackOverflow:      "OVERFLOW",
	FeedbackWrongBeverage: "WRONG_BEVERAGE",
	FeedbackWalkout:       "WALKOUT",
	FeedbackFrenzy:        "FRENZY",
	FeedbackLevelUp:       "LEVEL_UP",
	FeedbackGameOver:      "GAME_OVER",
	FeedbackReward:        "REWARD",
}

func (k FeedbackKind) String() string {
	if name, ok := feedbackNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
