package events

import (
	"github.com/hopwire/pour-panic/game"
)

// GameStartPayload selects the round termination rule
type GameStartPayload struct {
	Mode game.Mode
}

// PhaseSetPayload carries the requested phase
type PhaseSetPayload struct {
	Phase game.Phase
}

// TapSelectPayload carries the tap to activate
type TapSelectPayload struct {
	TapID string
}

// UpgradePurchasePayload carries the catalog id to buy
type UpgradePurchasePayload struct {
	UpgradeID string
}

// SettingTogglePayload carries the settings key to flip
type SettingTogglePayload struct {
	Key string
}

// FeedbackPayload carries the result kind plus a short display message
type FeedbackPayload struct {
	Kind    FeedbackKind
	Message string
}

// CountdownTickPayload carries the digit being announced; 0 means "go"
type CountdownTickPayload struct {
	Value int
}
