package constants

// System update priorities, ascending execution order within one tick.
// Patience decay runs before spawn so a walkout frees a queue slot in the
// same pass; scoring runs on events only and keeps no tick work.
const (
	PriorityLifecycle   = 10
	PriorityPatience    = 20
	PrioritySpawn       = 30
	PriorityPour        = 40
	PriorityScoring     = 50
	PriorityProgression = 60
	PriorityFrenzy      = 70
	PriorityAudio       = 90
)
