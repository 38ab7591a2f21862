package engine

import (
	"testing"

	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

func TestCommandsQueueTypedEvents(t *testing.T) {
	ctx := newTestContext()

	ctx.StartNewGame(game.ModeTimed)
	ctx.StartPour()
	ctx.Serve()
	ctx.SelectTap("tap_2")

	got := ctx.EventQueue().Consume()
	if len(got) != 4 {
		t.Fatalf("Queued %d events, want 4", len(got))
	}

	if got[0].Type != events.EventGameStart {
		t.Errorf("Event 0 = %v, want GameStart", got[0].Type)
	}
	start, ok := got[0].Payload.(*events.GameStartPayload)
	if !ok || start.Mode != game.ModeTimed {
		t.Error("GameStart payload missing the mode")
	}

	if got[1].Type != events.EventPourStart || got[2].Type != events.EventServeRequest {
		t.Error("Commands queued out of order")
	}

	sel, ok := got[3].Payload.(*events.TapSelectPayload)
	if !ok || sel.TapID != "tap_2" {
		t.Error("TapSelect payload missing the tap id")
	}
}

func TestEventsStampedWithGameTime(t *testing.T) {
	ctx := newTestContext()
	ctx.Clock.Pause()
	frozen := ctx.Clock.Now()

	ctx.Dump()

	got := ctx.EventQueue().Consume()
	if len(got) != 1 {
		t.Fatalf("Queued %d events, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(frozen) {
		t.Errorf("Timestamp = %v, want frozen game time %v", got[0].Timestamp, frozen)
	}
}

func TestActiveTapFallsBack(t *testing.T) {
	ctx := newTestContext()

	ctx.State.ActiveTapID = "tap_2"
	if got := ctx.ActiveTap(); got.ID != "tap_2" {
		t.Errorf("ActiveTap = %s, want tap_2", got.ID)
	}

	ctx.State.ActiveTapID = "gone"
	if got := ctx.ActiveTap(); got.ID != "tap_1" {
		t.Errorf("ActiveTap with unknown id = %s, want tap_1 fallback", got.ID)
	}
}
