package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewRenderer(screen), screen
}

func runningSnapshot() engine.Snapshot {
	st := engine.NewGameState()
	st.Phase = game.PhaseRunning
	st.Score = 321
	st.Combo = 2
	st.CurrentFill = 0.6
	st.EnqueueCustomer(game.Customer{
		ID:                  "cust_1",
		Archetype:           game.PatienceNormal,
		BeverageID:          "tap_2",
		TargetFill:          0.75,
		PatienceMaxMs:       15000,
		PatienceRemainingMs: 7000,
		VIP:                 true,
	})
	return st.Snapshot()
}

// screenContains scans the simulation screen for a substring on any row
func screenContains(screen tcell.SimulationScreen, want string) bool {
	cells, width, height := screen.GetContents()
	for y := 0; y < height; y++ {
		row := make([]rune, 0, width)
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				row = append(row, cell.Runes[0])
			} else {
				row = append(row, ' ')
			}
		}
		if containsRunes(row, want) {
			return true
		}
	}
	return false
}

func containsRunes(row []rune, want string) bool {
	s := string(row)
	for i := 0; i+len(want) <= len(s); i++ {
		if s[i:i+len(want)] == want {
			return true
		}
	}
	return false
}

func TestDrawMenu(t *testing.T) {
	r, screen := newSimRenderer(t)

	snap := engine.NewGameState().Snapshot()
	r.Draw(snap, nil)

	if !screenContains(screen, "POUR PANIC") {
		t.Error("Menu should show the title")
	}
	if !screenContains(screen, "classic mode") {
		t.Error("Menu should list the mode keys")
	}
}

func TestDrawHUDShowsQueueAndScore(t *testing.T) {
	r, screen := newSimRenderer(t)

	r.Draw(runningSnapshot(), nil)

	if !screenContains(screen, "score 321") {
		t.Error("HUD should show the score")
	}
	if !screenContains(screen, "VIP") {
		t.Error("HUD should tag VIP customers")
	}
	if !screenContains(screen, "wants 75%") {
		t.Error("HUD should show the head target")
	}
}

func TestDrawCountdownOverlay(t *testing.T) {
	r, screen := newSimRenderer(t)

	st := engine.NewGameState()
	st.Phase = game.PhaseCountdown
	st.CountdownValue = 3
	r.Draw(st.Snapshot(), nil)

	if !screenContains(screen, "3") {
		t.Error("Countdown digit should be drawn")
	}
}

func TestDrawGameOverSummary(t *testing.T) {
	r, screen := newSimRenderer(t)

	st := engine.NewGameState()
	st.ResetRound(game.ModeClassic)
	st.Score = 777
	st.MaxCombo = 9
	st.FoldRunSummary()
	st.Phase = game.PhaseGameOver
	r.Draw(st.Snapshot(), nil)

	if !screenContains(screen, "SHIFT OVER") {
		t.Error("Game over screen should show the banner")
	}
	if !screenContains(screen, "777") {
		t.Error("Game over screen should show the final score")
	}
}

func TestDrawShopListsUpgrades(t *testing.T) {
	r, screen := newSimRenderer(t)

	st := engine.NewGameState()
	st.Phase = game.PhaseRoundEnd
	r.Draw(st.Snapshot(), nil)

	if !screenContains(screen, "BREWERY SHOP") {
		t.Error("Shop should show its header")
	}
	if !screenContains(screen, "Froth Master") {
		t.Error("Shop should list the catalog")
	}
}

func TestDrawToasts(t *testing.T) {
	r, screen := newSimRenderer(t)

	toasts := []Toast{{Kind: events.FeedbackPerfect, Message: "PERFECT", expires: time.Now().Add(time.Second)}}
	r.Draw(runningSnapshot(), toasts)

	if !screenContains(screen, "PERFECT") {
		t.Error("Toast feed should render on the HUD")
	}
}

func TestDrawAllPhasesWithoutPanic(t *testing.T) {
	r, _ := newSimRenderer(t)

	phases := []game.Phase{
		game.PhaseIdle, game.PhaseTutorial, game.PhaseCountdown,
		game.PhaseRunning, game.PhasePaused, game.PhaseLevelUp,
		game.PhaseRoundEnd, game.PhaseGameOver, game.PhaseHowToPlay,
		game.PhaseSettings,
	}
	for _, phase := range phases {
		st := engine.NewGameState()
		st.Phase = phase
		r.Draw(st.Snapshot(), nil)
	}
}
