package systems

import (
	"strings"
	"testing"
	"time"

	"github.com/hopwire/pour-panic/game"
)

func TestSpawnOnlyWhileRunning(t *testing.T) {
	ctx := newTestContext()
	ctx.State.Phase = game.PhaseIdle

	NewCustomerSpawnSystem().Update(ctx, 10*time.Second)

	if len(ctx.State.CustomerQueue) != 0 {
		t.Error("No spawns should happen outside the running phase")
	}
}

func TestEmptyBarSpawnsImmediately(t *testing.T) {
	ctx := newTestContext()
	ctx.State.Phase = game.PhaseRunning

	// Far below the 7s OPENING interval, but the bar is empty
	NewCustomerSpawnSystem().Update(ctx, 50*time.Millisecond)

	if len(ctx.State.CustomerQueue) != 1 {
		t.Fatalf("Queue length = %d, want 1 immediate spawn", len(ctx.State.CustomerQueue))
	}
}

func TestSpawnWaitsForInterval(t *testing.T) {
	ctx := newTestContext()
	st := ctx.State
	st.Phase = game.PhaseRunning
	st.EnqueueCustomer(testCustomer())

	ss := NewCustomerSpawnSystem()
	ss.Update(ctx, 3*time.Second)
	if len(st.CustomerQueue) != 1 {
		t.Fatal("Spawn fired before the interval elapsed")
	}

	ss.Update(ctx, 5*time.Second) // cumulative 8s > 7s OPENING interval
	if len(st.CustomerQueue) != 2 {
		t.Error("Spawn should fire once the interval elapsed")
	}
}

func TestSpawnRespectsQueueCap(t *testing.T) {
	ctx := newTestContext()
	st := ctx.State
	st.Phase = game.PhaseRunning
	for i := 0; i < 3; i++ { // OPENING cap
		st.EnqueueCustomer(testCustomer())
	}

	NewCustomerSpawnSystem().Update(ctx, time.Minute)

	if len(st.CustomerQueue) != 3 {
		t.Errorf("Queue length = %d, want capped at 3", len(st.CustomerQueue))
	}
}

func TestGeneratedCustomerInRanges(t *testing.T) {
	ctx := newTestContext()
	st := ctx.State
	st.Phase = game.PhaseRunning

	ss := NewCustomerSpawnSystem()
	for i := 0; i < 50; i++ {
		st.CustomerQueue = nil
		ss.Update(ctx, 50*time.Millisecond)
		c := st.CustomerQueue[0]

		if !strings.HasPrefix(c.ID, "cust_") {
			t.Fatalf("Customer ID = %q, want cust_ prefix", c.ID)
		}
		if c.TargetFill < 0.5 || c.TargetFill >= 0.95 {
			t.Fatalf("TargetFill = %v, want in [0.5, 0.95)", c.TargetFill)
		}
		if c.Archetype != game.PatienceVery {
			t.Fatalf("OPENING archetype = %v, want VERY", c.Archetype)
		}
		if c.PatienceRemainingMs < 28000 || c.PatienceRemainingMs >= 36000 {
			t.Fatalf("Patience = %v, want in [28000, 36000)", c.PatienceRemainingMs)
		}
		if c.PatienceRemainingMs != c.PatienceMaxMs {
			t.Fatal("Fresh customer should start at full patience")
		}
		if c.TolerancePerfect != 0.02 || c.ToleranceGood != 0.05 {
			t.Fatalf("Tolerances = %v/%v, want base 0.02/0.05", c.TolerancePerfect, c.ToleranceGood)
		}
	}
}

func TestAssistModeWidensTolerances(t *testing.T) {
	ctx := newTestContext()
	st := ctx.State
	st.Phase = game.PhaseRunning
	st.Settings.AssistMode = true

	NewCustomerSpawnSystem().Update(ctx, 50*time.Millisecond)

	c := st.CustomerQueue[0]
	if !closeTo(c.TolerancePerfect, 0.03) {
		t.Errorf("TolerancePerfect = %v, want 0.03 with assist", c.TolerancePerfect)
	}
	if !closeTo(c.ToleranceGood, 0.07) {
		t.Errorf("ToleranceGood = %v, want 0.07 with assist", c.ToleranceGood)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}

func TestFrothMasterWidensTolerances(t *testing.T) {
	ctx := newTestContext()
	st := ctx.State
	st.Phase = game.PhaseRunning
	st.Upgrades.Find(game.UpgradeFrothMaster).Level = 2

	NewCustomerSpawnSystem().Update(ctx, 50*time.Millisecond)

	c := st.CustomerQueue[0]
	if !closeTo(c.TolerancePerfect, 0.03) { // 0.02 + 2*0.005
		t.Errorf("TolerancePerfect = %v, want 0.03 with froth 2", c.TolerancePerfect)
	}
	if !closeTo(c.ToleranceGood, 0.07) { // 0.05 + 2*0.01
		t.Errorf("ToleranceGood = %v, want 0.07 with froth 2", c.ToleranceGood)
	}
}
