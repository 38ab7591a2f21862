package constants

import "time"

// Tick & Loop
const (
	// GameTickInterval is the fixed period of the simulation tick
	GameTickInterval = 50 * time.Millisecond

	// RenderInterval caps the render loop cadence
	RenderInterval = 33 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Toast Feed
const (
	// ToastCapacity is the maximum number of feedback toasts shown at once
	ToastCapacity = 3

	// ToastLifetime is how long one toast stays visible
	ToastLifetime = 2 * time.Second
)
