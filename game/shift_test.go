package game

import "testing"

func TestLadderIsAscending(t *testing.T) {
	ladder := Ladder()
	if len(ladder) != 5 {
		t.Fatalf("Expected 5 shifts, got %d", len(ladder))
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i].Threshold <= ladder[i-1].Threshold {
			t.Errorf("Ladder not ascending at %s: %d <= %d",
				ladder[i].ID, ladder[i].Threshold, ladder[i-1].Threshold)
		}
	}
	if ladder[0].Threshold != 0 {
		t.Errorf("First shift threshold should be 0, got %d", ladder[0].Threshold)
	}
}

func TestShiftThresholds(t *testing.T) {
	expected := map[ShiftID]int{
		ShiftOpening:    0,
		ShiftHappyHour:  1200,
		ShiftDinner:     4000,
		ShiftClosing:    10000,
		ShiftAfterHours: 25000,
	}
	for id, threshold := range expected {
		if got := ShiftParams(id).Threshold; got != threshold {
			t.Errorf("%s threshold = %d, want %d", id, got, threshold)
		}
	}
}

func TestShiftSpawnParams(t *testing.T) {
	opening := ShiftParams(ShiftOpening)
	if opening.SpawnInterval.Milliseconds() != 7000 || opening.MaxQueue != 3 {
		t.Errorf("OPENING params = %v/%d, want 7000ms/3", opening.SpawnInterval, opening.MaxQueue)
	}
	after := ShiftParams(ShiftAfterHours)
	if after.SpawnInterval.Milliseconds() != 2500 || after.MaxQueue != 6 {
		t.Errorf("AFTER_HOURS params = %v/%d, want 2500ms/6", after.SpawnInterval, after.MaxQueue)
	}
}

func TestNextShift(t *testing.T) {
	next, ok := NextShift(ShiftOpening)
	if !ok || next.ID != ShiftHappyHour {
		t.Errorf("NextShift(OPENING) = %v, %v; want HAPPY_HOUR, true", next.ID, ok)
	}

	// Top tier has no successor
	if _, ok := NextShift(ShiftAfterHours); ok {
		t.Error("NextShift(AFTER_HOURS) should return false")
	}
}

func TestShiftLevel(t *testing.T) {
	if ShiftLevel(ShiftOpening) != 1 {
		t.Errorf("ShiftLevel(OPENING) = %d, want 1", ShiftLevel(ShiftOpening))
	}
	if ShiftLevel(ShiftAfterHours) != 5 {
		t.Errorf("ShiftLevel(AFTER_HOURS) = %d, want 5", ShiftLevel(ShiftAfterHours))
	}
}

func TestRollArchetype_Opening(t *testing.T) {
	// OPENING spawns only very patient customers regardless of roll
	for _, roll := range []float64{0, 0.5, 0.99} {
		if got := RollArchetype(ShiftOpening, roll); got != PatienceVery {
			t.Errorf("RollArchetype(OPENING, %v) = %v, want VERY", roll, got)
		}
	}
}

func TestRollArchetype_Bands(t *testing.T) {
	tests := []struct {
		shift ShiftID
		roll  float64
		want  PatienceArchetype
	}{
		{ShiftHappyHour, 0.49, PatienceVery},
		{ShiftHappyHour, 0.50, PatienceNormal},
		{ShiftHappyHour, 0.74, PatienceNormal},
		{ShiftHappyHour, 0.75, PatienceImpatient},
		{ShiftDinner, 0.24, PatienceVery},
		{ShiftDinner, 0.25, PatienceNormal},
		{ShiftDinner, 0.74, PatienceNormal},
		{ShiftDinner, 0.75, PatienceImpatient},
		{ShiftClosing, 0.24, PatienceNormal},
		{ShiftClosing, 0.25, PatienceVery},
		{ShiftClosing, 0.49, PatienceVery},
		{ShiftClosing, 0.50, PatienceImpatient},
		{ShiftAfterHours, 0.10, PatienceNormal},
		{ShiftAfterHours, 0.30, PatienceVery},
		{ShiftAfterHours, 0.90, PatienceImpatient},
	}
	for _, tt := range tests {
		if got := RollArchetype(tt.shift, tt.roll); got != tt.want {
			t.Errorf("RollArchetype(%s, %v) = %v, want %v", tt.shift, tt.roll, got, tt.want)
		}
	}
}

func TestPatienceRangeMs(t *testing.T) {
	base, span := PatienceRangeMs(PatienceVery)
	if base != 28000 || span != 8000 {
		t.Errorf("VERY range = %v+%v, want 28000+8000", base, span)
	}
	base, span = PatienceRangeMs(PatienceNormal)
	if base != 15000 || span != 6000 {
		t.Errorf("NORMAL range = %v+%v, want 15000+6000", base, span)
	}
	base, span = PatienceRangeMs(PatienceImpatient)
	if base != 8000 || span != 4000 {
		t.Errorf("IMPATIENT range = %v+%v, want 8000+4000", base, span)
	}
}
