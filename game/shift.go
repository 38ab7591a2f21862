package game

import "time"

// ShiftID names a difficulty tier
type ShiftID int

const (
	ShiftOpening ShiftID = iota
	ShiftHappyHour
	ShiftDinner
	ShiftClosing
	ShiftAfterHours
)

var shiftNames = map[ShiftID]string{
	ShiftOpening:    "OPENING",
	ShiftHappyHour:  "HAPPY_HOUR",
	ShiftDinner:     "DINNER",
	ShiftClosing:    "CLOSING",
	ShiftAfterHours: "AFTER_HOURS",
}

func (s ShiftID) String() string {
	if name, ok := shiftNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Shift is one rung of the difficulty ladder: the cumulative score
// threshold that unlocks it plus its spawn pressure parameters.
type Shift struct {
	ID            ShiftID
	Threshold     int
	Desc          string
	SpawnInterval time.Duration
	MaxQueue      int
}

// shiftLadder is the fixed ascending ladder. The last tier has no
// successor; threshold lookups past it are treated as unreachable.
var shiftLadder = []Shift{
	{ID: ShiftOpening, Threshold: 0, Desc: "Quiet morning vibes. Take your time, everyone is chill.", SpawnInterval: 7000 * time.Millisecond, MaxQueue: 3},
	{ID: ShiftHappyHour, Threshold: 1200, Desc: "The rush begins! Fast spawns and mixed patience.", SpawnInterval: 3200 * time.Millisecond, MaxQueue: 5},
	{ID: ShiftDinner, Threshold: 4000, Desc: "Food is out. Customers are hungry and expect perfection.", SpawnInterval: 4200 * time.Millisecond, MaxQueue: 4},
	{ID: ShiftClosing, Threshold: 10000, Desc: "Last call! Everyone is cranky and in a hurry.", SpawnInterval: 4800 * time.Millisecond, MaxQueue: 4},
	{ID: ShiftAfterHours, Threshold: 25000, Desc: "Pure chaos. Only the strongest bartenders survive.", SpawnInterval: 2500 * time.Millisecond, MaxQueue: 6},
}

// Ladder returns the full shift ladder in ascending threshold order
func Ladder() []Shift {
	return shiftLadder
}

// ShiftParams returns the ladder entry for a shift
func ShiftParams(id ShiftID) Shift {
	for _, s := range shiftLadder {
		if s.ID == id {
			return s
		}
	}
	return shiftLadder[0]
}

// NextShift returns the successor ladder entry, false at the top tier
func NextShift(id ShiftID) (Shift, bool) {
	for i, s := range shiftLadder {
		if s.ID == id {
			if i+1 < len(shiftLadder) {
				return shiftLadder[i+1], true
			}
			return Shift{}, false
		}
	}
	return Shift{}, false
}

// ShiftLevel returns the 1-based level for a shift (ladder index + 1)
func ShiftLevel(id ShiftID) int {
	for i, s := range shiftLadder {
		if s.ID == id {
			return i + 1
		}
	}
	return 1
}

// RollArchetype maps a uniform roll in [0,1) to a patience archetype using
// the per-shift weighted bands. Band order follows roll order, not any
// canonical archetype order.
func RollArchetype(shift ShiftID, roll float64) PatienceArchetype {
	switch shift {
	case ShiftOpening:
		return PatienceVery
	case ShiftHappyHour:
		switch {
		case roll < 0.50:
			return PatienceVery
		case roll < 0.75:
			return PatienceNormal
		default:
			return PatienceImpatient
		}
	case ShiftDinner:
		switch {
		case roll < 0.25:
			return PatienceVery
		case roll < 0.75:
			return PatienceNormal
		default:
			return PatienceImpatient
		}
	default: // CLOSING, AFTER_HOURS
		switch {
		case roll < 0.25:
			return PatienceNormal
		case roll < 0.50:
			return PatienceVery
		default:
			return PatienceImpatient
		}
	}
}

// Patience duration ranges in milliseconds, uniform per archetype
const (
	PatienceVeryBaseMs      = 28000.0
	PatienceVerySpanMs      = 8000.0
	PatienceNormalBaseMs    = 15000.0
	PatienceNormalSpanMs    = 6000.0
	PatienceImpatientBaseMs = 8000.0
	PatienceImpatientSpanMs = 4000.0
)

// PatienceRangeMs returns the base and span of the patience duration for
// an archetype; duration = base + U(0,1)*span
func PatienceRangeMs(a PatienceArchetype) (base, span float64) {
	switch a {
	case PatienceVery:
		return PatienceVeryBaseMs, PatienceVerySpanMs
	case PatienceImpatient:
		return PatienceImpatientBaseMs, PatienceImpatientSpanMs
	default:
		return PatienceNormalBaseMs, PatienceNormalSpanMs
	}
}
