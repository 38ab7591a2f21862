package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// PourSystem integrates the fill level while the pour action is held and
// owns the dump/tap-select commands. Fill only moves while the round is
// running; toggling the pour outside that has no effect on it.
type PourSystem struct{}

func NewPourSystem() *PourSystem {
	return &PourSystem{}
}

func (ps *PourSystem) Priority() int {
	return constants.PriorityPour
}

func (ps *PourSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPourStart,
		events.EventPourStop,
		events.EventFillDump,
		events.EventTapSelect,
	}
}

func (ps *PourSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	st := ctx.State
	switch event.Type {
	case events.EventPourStart:
		st.IsPouring.Store(true)
	case events.EventPourStop:
		st.IsPouring.Store(false)
	case events.EventFillDump:
		if st.Phase == game.PhaseRunning {
			st.CurrentFill = 0
		}
	case events.EventTapSelect:
		if payload, ok := event.Payload.(*events.TapSelectPayload); ok {
			for _, t := range ctx.Taps {
				if t.ID == payload.TapID {
					st.ActiveTapID = t.ID
					break
				}
			}
		}
	}
}

func (ps *PourSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	st := ctx.State
	if st.Phase != game.PhaseRunning || !st.IsPouring.Load() {
		return
	}

	flow := ctx.ActiveTap().FlowRate
	if st.FrenzyActive.Load() {
		flow *= constants.FrenzyFlowMultiplier
	}
	st.CurrentFill += flow * dt.Seconds()
	if st.CurrentFill > constants.FillClamp {
		st.CurrentFill = constants.FillClamp
	}
}
