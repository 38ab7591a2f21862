package constants

// Serve Points
const (
	PointsPerfect  = 150
	PointsGood     = 75
	PointsBad      = 20
	PointsOverflow = -50

	// Wrong-beverage serves still score on accuracy, never tip
	PointsWrongPerfect = 50
	PointsWrongGood    = 25
)

// Serve Classification
const (
	// OverflowThreshold: fill past this is an overflow regardless of tap
	OverflowThreshold = 1.05
)

// Multipliers
const (
	VIPMultiplier    = 3
	FrenzyMultiplier = 2

	// GoodTipFactor halves the base tip on a GOOD serve
	GoodTipFactor = 0.5
)

// Frenzy Meter Contributions
// WrongBeverage penalty is flat, not scaled by near-miss accuracy; that is
// a balance-tuning knob, not a rule derived from anything else here.
const (
	FrenzyMeterPerfect       = 25.0
	FrenzyMeterGood          = 12.0
	FrenzyMeterWrongBeverage = -20.0
)
