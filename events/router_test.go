package events

import "testing"

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ctx any, event GameEvent) {
	*h.log = append(*h.log, h.name)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchesByType(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[any](eq)

	var log []string
	router.Register(&recordingHandler{name: "pour", types: []EventType{EventPourStart}, log: &log})
	router.Register(&recordingHandler{name: "serve", types: []EventType{EventServeRequest}, log: &log})

	eq.Push(GameEvent{Type: EventPourStart})
	eq.Push(GameEvent{Type: EventServeRequest})
	eq.Push(GameEvent{Type: EventFillDump}) // no handler

	router.DispatchAll(nil)

	if len(log) != 2 || log[0] != "pour" || log[1] != "serve" {
		t.Errorf("Dispatch log = %v, want [pour serve]", log)
	}
}

func TestRouterRegistrationOrder(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[any](eq)

	var log []string
	router.Register(&recordingHandler{name: "first", types: []EventType{EventFeedback}, log: &log})
	router.Register(&recordingHandler{name: "second", types: []EventType{EventFeedback}, log: &log})

	eq.Push(GameEvent{Type: EventFeedback})
	router.DispatchAll(nil)

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("Dispatch log = %v, want [first second]", log)
	}
}

func TestRouterHasHandlers(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[any](eq)

	var log []string
	router.Register(&recordingHandler{name: "h", types: []EventType{EventTapSelect}, log: &log})

	if !router.HasHandlers(EventTapSelect) {
		t.Error("Expected handler registered for EventTapSelect")
	}
	if router.HasHandlers(EventFillDump) {
		t.Error("Expected no handler for EventFillDump")
	}
}
