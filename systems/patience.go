package systems

import (
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// PatienceSystem decays queued customers' remaining patience and detects
// walkouts. Decay is suspended entirely while frenzy is active or the
// round is not running.
type PatienceSystem struct{}

func NewPatienceSystem() *PatienceSystem {
	return &PatienceSystem{}
}

func (ps *PatienceSystem) Priority() int {
	return constants.PriorityPatience
}

func (ps *PatienceSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	st := ctx.State
	if st.Phase != game.PhaseRunning || st.FrenzyActive.Load() || dt <= 0 {
		return
	}

	dtMs := dt.Seconds() * 1000
	difficulty := 1 + float64(st.Level-1)*constants.DifficultyPatiencePerLevel
	for i := range st.CustomerQueue {
		c := &st.CustomerQueue[i]
		mult := difficulty
		if c.VIP {
			mult *= constants.VIPPatienceMultiplier
		}
		c.PatienceRemainingMs -= dtMs * mult
		if c.PatienceRemainingMs < 0 {
			c.PatienceRemainingMs = 0
		}
	}

	// Expiry is evaluated after decay in the same pass. At most one
	// walkout per advance; further expired entries wait for the next
	// tick.
	if len(st.CustomerQueue) == 0 || st.CustomerQueue[0].PatienceRemainingMs > 0 {
		return
	}

	st.PopHead()
	st.Walkouts++
	st.Combo = 0

	coolerLevel := st.Upgrades.Level(game.UpgradeAutoCooler)
	build := constants.LinePressureBuild * (1 - float64(coolerLevel)*constants.CoolerDampPerLevel)
	st.LinePressure += build
	if st.LinePressure > 1 {
		st.LinePressure = 1
	}

	ctx.PushFeedback(events.FeedbackWalkout, "WALKOUT!")

	if st.Mode == game.ModeClassic && st.Walkouts >= constants.ClassicWalkoutLimit {
		endRound(ctx)
	}
}
