package render

import (
	"sync"
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
)

// Toast is one transient feedback line on the HUD
type Toast struct {
	Kind    events.FeedbackKind
	Message string
	expires time.Time
}

// ToastFeed collects feedback events for the HUD. Newest first, capped,
// expiring after a fixed lifetime. It is a pure consumer: registered on
// the event router, read by the render loop.
type ToastFeed struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewToastFeed() *ToastFeed {
	return &ToastFeed{}
}

func (tf *ToastFeed) EventTypes() []events.EventType {
	return []events.EventType{events.EventFeedback}
}

func (tf *ToastFeed) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	payload, ok := event.Payload.(*events.FeedbackPayload)
	if !ok {
		return
	}
	tf.mu.Lock()
	defer tf.mu.Unlock()

	toast := Toast{
		Kind:    payload.Kind,
		Message: payload.Message,
		expires: event.Timestamp.Add(constants.ToastLifetime),
	}
	tf.toasts = append([]Toast{toast}, tf.toasts...)
	if len(tf.toasts) > constants.ToastCapacity {
		tf.toasts = tf.toasts[:constants.ToastCapacity]
	}
}

// Active returns the live toasts at the given game time, newest first
func (tf *ToastFeed) Active(now time.Time) []Toast {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	live := tf.toasts[:0]
	for _, t := range tf.toasts {
		if t.expires.After(now) {
			live = append(live, t)
		}
	}
	tf.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
