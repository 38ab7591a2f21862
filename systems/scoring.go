package systems

import (
	"math"
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// ServeResult classifies one serve attempt
type ServeResult int

const (
	ResultPerfect ServeResult = iota
	ResultGood
	ResultBad
	ResultOverflow
	ResultWrongBeverage
)

func (r ServeResult) String() string {
	switch r {
	case ResultPerfect:
		return "PERFECT"
	case ResultGood:
		return "GOOD"
	case ResultOverflow:
		return "OVERFLOW"
	case ResultWrongBeverage:
		return "WRONG_BEVERAGE"
	default:
		return "BAD"
	}
}

func (r ServeResult) feedbackKind() events.FeedbackKind {
	switch r {
	case ResultPerfect:
		return events.FeedbackPerfect
	case ResultGood:
		return events.FeedbackGood
	case ResultOverflow:
		return events.FeedbackOverflow
	case ResultWrongBeverage:
		return events.FeedbackWrongBeverage
	default:
		return events.FeedbackBad
	}
}

// ScoringSystem evaluates serve attempts against the head customer's
// tolerance bands and runs the whole scoring transaction: points, tips,
// combo, frenzy meter, shift progression and the head pop.
type ScoringSystem struct {
	progression *ProgressionSystem
	frenzy      *FrenzySystem
}

func NewScoringSystem(progression *ProgressionSystem, frenzy *FrenzySystem) *ScoringSystem {
	return &ScoringSystem{progression: progression, frenzy: frenzy}
}

func (ss *ScoringSystem) Priority() int {
	return constants.PriorityScoring
}

func (ss *ScoringSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventServeRequest}
}

func (ss *ScoringSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	if event.Type == events.EventServeRequest {
		ss.serve(ctx)
	}
}

// Update implements engine.System; scoring is purely event-driven
func (ss *ScoringSystem) Update(ctx *engine.GameContext, dt time.Duration) {}

// Classify applies the decision order: overflow, wrong beverage, then
// tolerance bands. Returns the result with its unmultiplied points and
// tips; wrong-beverage tips are zeroed here, before any multiplier.
func Classify(fill float64, customer *game.Customer, activeTapID string) (ServeResult, int, float64) {
	diff := math.Abs(fill - customer.TargetFill)

	switch {
	case fill > constants.OverflowThreshold:
		return ResultOverflow, constants.PointsOverflow, 0

	case activeTapID != customer.BeverageID:
		points := 0
		if diff <= customer.TolerancePerfect {
			points = constants.PointsWrongPerfect
		} else if diff <= customer.ToleranceGood {
			points = constants.PointsWrongGood
		}
		return ResultWrongBeverage, points, 0

	case diff <= customer.TolerancePerfect:
		return ResultPerfect, constants.PointsPerfect, game.BaseTip(customer.BeverageID)

	case diff <= customer.ToleranceGood:
		return ResultGood, constants.PointsGood, game.BaseTip(customer.BeverageID) * constants.GoodTipFactor

	default:
		return ResultBad, constants.PointsBad, 0
	}
}

func (ss *ScoringSystem) serve(ctx *engine.GameContext) {
	st := ctx.State
	if st.Phase != game.PhaseRunning || len(st.CustomerQueue) == 0 {
		return
	}

	customer := &st.CustomerQueue[0]
	result, points, tips := Classify(st.CurrentFill, customer, st.ActiveTapID)

	// Tips were zeroed during classification for wrong-beverage; the
	// multiplier never revives them. Points always multiply.
	multiplier := 1
	if customer.VIP {
		multiplier *= constants.VIPMultiplier
	}
	if st.FrenzyActive.Load() {
		multiplier *= constants.FrenzyMultiplier
	}
	finalPoints := points * multiplier
	finalTips := tips * float64(multiplier)

	st.Score += finalPoints
	if st.Score < 0 {
		st.Score = 0
	}
	st.TipsEarned += finalTips
	st.TipsThisShift += finalTips

	switch result {
	case ResultPerfect, ResultGood:
		st.Combo++
		if st.Combo > st.MaxCombo {
			st.MaxCombo = st.Combo
		}
	default:
		st.Combo = 0
	}

	switch result {
	case ResultPerfect:
		st.Perfects++
		st.FrenzyMeter += constants.FrenzyMeterPerfect
	case ResultGood:
		st.FrenzyMeter += constants.FrenzyMeterGood
	case ResultOverflow:
		st.Overflows++
	case ResultWrongBeverage:
		st.FrenzyMeter += constants.FrenzyMeterWrongBeverage
		if st.FrenzyMeter < 0 {
			st.FrenzyMeter = 0
		}
	}

	// Activation is edge-triggered and part of this same transaction;
	// the meter resets with it
	if st.FrenzyMeter >= constants.FrenzyMeterMax && !st.FrenzyActive.Load() {
		ss.frenzy.Activate(ctx)
		st.FrenzyMeter = 0
	}
	if st.FrenzyMeter > constants.FrenzyMeterMax {
		st.FrenzyMeter = constants.FrenzyMeterMax
	}

	// Shift progression strictly after score mutation from this serve
	ss.progression.CheckShiftAdvance(ctx)

	message := result.String()
	if result == ResultWrongBeverage {
		message = "WRONG BREW!"
	}
	ctx.PushFeedback(result.feedbackKind(), message)

	st.PopHead()
}
