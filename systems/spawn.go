package systems

import (
	"fmt"
	"time"

	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/game"
)

// CustomerSpawnSystem produces new orders with shift-dependent stochastic
// attributes. The gate fires when the queue is below the shift's cap and
// either the spawn interval elapsed or the bar is empty.
type CustomerSpawnSystem struct {
	nextID int
}

func NewCustomerSpawnSystem() *CustomerSpawnSystem {
	return &CustomerSpawnSystem{}
}

func (ss *CustomerSpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (ss *CustomerSpawnSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	st := ctx.State
	if st.Phase != game.PhaseRunning {
		return
	}

	st.SpawnElapsedMs += dt.Seconds() * 1000

	shift := game.ShiftParams(st.Shift)
	if len(st.CustomerQueue) >= shift.MaxQueue {
		return
	}
	interval := float64(shift.SpawnInterval.Milliseconds())
	if st.SpawnElapsedMs < interval && len(st.CustomerQueue) > 0 {
		return
	}

	st.SpawnElapsedMs = 0
	st.EnqueueCustomer(ss.generate(ctx))
}

// generate rolls one customer from the active shift's distributions
func (ss *CustomerSpawnSystem) generate(ctx *engine.GameContext) game.Customer {
	st := ctx.State
	rng := ctx.Rand

	tap := ctx.Taps[rng.Intn(len(ctx.Taps))]

	archetype := game.RollArchetype(st.Shift, rng.Float64())
	base, span := game.PatienceRangeMs(archetype)
	patience := base + rng.Float64()*span

	vipChance := constants.VIPBaseProbability +
		float64(st.Upgrades.Level(game.UpgradeVIPMagnet))*constants.VIPMagnetPerLevel
	vip := rng.Float64() < vipChance

	frothLevel := float64(st.Upgrades.Level(game.UpgradeFrothMaster))
	perfect := constants.TolerancePerfectBase + frothLevel*constants.FrothPerfectPerLevel
	good := constants.ToleranceGoodBase + frothLevel*constants.FrothGoodPerLevel
	if st.Settings.AssistMode {
		perfect += constants.AssistToleranceBonus
		good += 2 * constants.AssistToleranceBonus
	}

	ss.nextID++
	return game.Customer{
		ID:                  fmt.Sprintf("cust_%d", ss.nextID),
		Archetype:           archetype,
		BeverageID:          tap.ID,
		TargetFill:          constants.TargetFillMin + rng.Float64()*constants.TargetFillSpan,
		TolerancePerfect:    perfect,
		ToleranceGood:       good,
		PatienceMaxMs:       patience,
		PatienceRemainingMs: patience,
		VIP:                 vip,
	}
}
