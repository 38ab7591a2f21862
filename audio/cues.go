package audio

import (
	"time"

	"github.com/hopwire/pour-panic/events"
)

// cue is one synthesized tone
type cue struct {
	freq     float64
	duration time.Duration
}

// cueTable maps feedback kinds to tones. Pitches are hand-tuned: wins
// climb, failures drop.
var cueTable = map[events.FeedbackKind]cue{
	events.FeedbackPerfect:       {freq: 1320, duration: 140 * time.Millisecond},
	events.FeedbackGood:          {freq: 990, duration: 110 * time.Millisecond},
	events.FeedbackBad:           {freq: 330, duration: 90 * time.Millisecond},
	events.FeedbackOverflow:      {freq: 196, duration: 250 * time.Millisecond},
	events.FeedbackWrongBeverage: {freq: 247, duration: 200 * time.Millisecond},
	events.FeedbackWalkout:       {freq: 165, duration: 300 * time.Millisecond},
	events.FeedbackFrenzy:        {freq: 1760, duration: 350 * time.Millisecond},
	events.FeedbackLevelUp:       {freq: 1568, duration: 300 * time.Millisecond},
	events.FeedbackGameOver:      {freq: 131, duration: 500 * time.Millisecond},
	events.FeedbackReward:        {freq: 1175, duration: 180 * time.Millisecond},
}

func cueFor(kind events.FeedbackKind) cue {
	if c, ok := cueTable[kind]; ok {
		return c
	}
	return cue{freq: 440, duration: 100 * time.Millisecond}
}
