package constants

import "time"

// Round Lifecycle
const (
	// CountdownStart is the first digit of the pre-round countdown
	CountdownStart = 3

	// CountdownCadence is the delay between countdown digits
	CountdownCadence = 800 * time.Millisecond

	// TimedRoundSeconds is the starting budget for Timed mode
	TimedRoundSeconds = 60.0

	// ClassicWalkoutLimit ends a Classic round at this walkout count
	ClassicWalkoutLimit = 3
)

// Customer Generation
const (
	// VIPBaseProbability is the chance a spawned customer is a VIP
	VIPBaseProbability = 0.10

	// VIPMagnetPerLevel is the VIP probability added per magnet level
	VIPMagnetPerLevel = 0.04

	// TargetFillMin / TargetFillSpan bound the uniform target fill roll
	TargetFillMin  = 0.5
	TargetFillSpan = 0.45

	// TolerancePerfectBase / ToleranceGoodBase are the unmodified bands
	TolerancePerfectBase = 0.02
	ToleranceGoodBase    = 0.05

	// FrothPerfectPerLevel / FrothGoodPerLevel widen the bands per
	// froth-master level
	FrothPerfectPerLevel = 0.005
	FrothGoodPerLevel    = 0.01

	// AssistToleranceBonus widens the perfect band in assist mode; the
	// good band gets twice this
	AssistToleranceBonus = 0.01
)

// Patience Pressure
const (
	// VIPPatienceMultiplier makes VIPs lose patience faster
	VIPPatienceMultiplier = 1.4

	// DifficultyPatiencePerLevel steepens decay per level past the first
	DifficultyPatiencePerLevel = 0.12

	// LinePressureBuild is the pressure added per walkout before damping
	LinePressureBuild = 0.15

	// CoolerDampPerLevel reduces pressure build per auto-cooler level
	CoolerDampPerLevel = 0.1
)

// Pour Mechanics
const (
	// FillClamp bounds the fill level; values past 1.0 stay readable as
	// overflow without runaway growth
	FillClamp = 1.2

	// DefaultTargetFill is the target shown while the queue is empty
	DefaultTargetFill = 0.8

	// FrenzyFlowMultiplier scales tap flow while frenzy is active
	FrenzyFlowMultiplier = 2.2
)

// Frenzy Mechanics
const (
	// FrenzyMeterMax is the activation threshold and clamp
	FrenzyMeterMax = 100.0

	// FrenzyBaseDuration is the unupgraded frenzy duration
	FrenzyBaseDuration = 8000 * time.Millisecond

	// FrenzyPerBoostLevel extends frenzy per party-lights level
	FrenzyPerBoostLevel = 2000 * time.Millisecond

	// LevelUpFrenzyBonus is the meter nudge granted on shift advance
	LevelUpFrenzyBonus = 40.0
)

// Economy
const (
	// AdRewardTips is the fixed tip grant for a watched reward ad
	AdRewardTips = 50.0

	// AdWatchDelay simulates the reward ad playing out
	AdWatchDelay = 2 * time.Second
)
