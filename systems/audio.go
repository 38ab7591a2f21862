package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
)

// CuePlayer is the port the audio collaborator implements. The
// simulation neither knows nor cares whether anything is listening.
type CuePlayer interface {
	PlayFeedback(kind events.FeedbackKind)
	PlayCountdown(value int)
}

// AudioSystem forwards feedback events to the cue player, honoring the
// persisted sound setting. Decouples game systems from the audio engine.
type AudioSystem struct {
	player CuePlayer
}

// NewAudioSystem creates the forwarder; player may be nil when audio is
// disabled
func NewAudioSystem(player CuePlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (as *AudioSystem) Priority() int {
	return constants.PriorityAudio
}

func (as *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFeedback,
		events.EventCountdownTick,
	}
}

func (as *AudioSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	if as.player == nil || !ctx.State.Settings.SoundEnabled {
		return
	}
	switch event.Type {
	case events.EventFeedback:
		if payload, ok := event.Payload.(*events.FeedbackPayload); ok {
			as.player.PlayFeedback(payload.Kind)
		}
	case events.EventCountdownTick:
		if payload, ok := event.Payload.(*events.CountdownTickPayload); ok {
			as.player.PlayCountdown(payload.Value)
		}
	}
}

// Update implements engine.System; audio is purely event-driven
func (as *AudioSystem) Update(ctx *engine.GameContext, dt time.Duration) {}
