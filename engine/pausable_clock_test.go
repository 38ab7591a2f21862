package engine

import (
	"testing"
	"time"
)

func TestPausableClockAdvances(t *testing.T) {
	clock := NewPausableClock()
	before := clock.Now()
	time.Sleep(10 * time.Millisecond)
	after := clock.Now()

	if !after.After(before) {
		t.Error("Clock should advance while running")
	}
}

func TestPausableClockFreezesDuringPause(t *testing.T) {
	clock := NewPausableClock()

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Clock should report paused")
	}

	frozen := clock.Now()
	time.Sleep(10 * time.Millisecond)
	if got := clock.Now(); !got.Equal(frozen) {
		t.Errorf("Game time moved during pause: %v -> %v", frozen, got)
	}
}

func TestPausableClockResumeExcludesPausedTime(t *testing.T) {
	clock := NewPausableClock()

	clock.Pause()
	pausedAt := clock.Now()
	time.Sleep(20 * time.Millisecond)
	clock.Resume()

	// Right after resume, game time is still close to the pause point
	drift := clock.Now().Sub(pausedAt)
	if drift > 15*time.Millisecond {
		t.Errorf("Game time jumped %v across pause, want near zero", drift)
	}

	time.Sleep(10 * time.Millisecond)
	if !clock.Now().After(pausedAt) {
		t.Error("Clock should advance after resume")
	}
}

func TestPausableClockDoublePauseIsSafe(t *testing.T) {
	clock := NewPausableClock()
	clock.Pause()
	clock.Pause()
	clock.Resume()
	if clock.IsPaused() {
		t.Error("Clock should be running after resume")
	}
	clock.Resume()
}
