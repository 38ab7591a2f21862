package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/game"
)

// HandleKey maps a key press to a simulation command for the current
// phase. Returns false when the key requests application exit. Terminals
// deliver no key-up events, so the pour is a toggle rather than a hold.
func HandleKey(ctx *engine.GameContext, snap engine.Snapshot, ev *tcell.EventKey) bool {
	switch snap.Phase {
	case game.PhaseIdle:
		return handleMenuKey(ctx, ev)
	case game.PhaseRunning, game.PhaseCountdown:
		handleRoundKey(ctx, snap, ev)
	case game.PhasePaused:
		handlePausedKey(ctx, ev)
	case game.PhaseLevelUp:
		if ev.Key() == tcell.KeyEnter {
			ctx.BeginShift()
		}
	case game.PhaseGameOver:
		handleGameOverKey(ctx, snap, ev)
	case game.PhaseRoundEnd:
		handleShopKey(ctx, snap, ev)
	case game.PhaseSettings:
		handleSettingsKey(ctx, ev)
	case game.PhaseTutorial, game.PhaseHowToPlay:
		ctx.SetPhase(game.PhaseIdle)
	}
	return true
}

func handleMenuKey(ctx *engine.GameContext, ev *tcell.EventKey) bool {
	switch ev.Rune() {
	case 'c', 'C':
		ctx.StartNewGame(game.ModeClassic)
	case 't', 'T':
		ctx.StartNewGame(game.ModeTimed)
	case 'u', 'U':
		ctx.SetPhase(game.PhaseRoundEnd)
	case 'g', 'G':
		ctx.SetPhase(game.PhaseHowToPlay)
	case 'o', 'O':
		ctx.SetPhase(game.PhaseTutorial)
	case 's', 'S':
		ctx.SetPhase(game.PhaseSettings)
	case 'q', 'Q':
		return false
	}
	return true
}

func handleRoundKey(ctx *engine.GameContext, snap engine.Snapshot, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		ctx.SetPhase(game.PhasePaused)
		return
	}

	serveKey, dumpKey := 's', 'd'
	if snap.Settings.LeftHanded {
		serveKey, dumpKey = 'd', 's'
	}

	switch r := ev.Rune(); r {
	case ' ':
		if snap.IsPouring {
			ctx.StopPour()
		} else {
			ctx.StartPour()
		}
	case '1', '2', '3':
		idx := int(r - '1')
		if idx < len(ctx.Taps) {
			ctx.SelectTap(ctx.Taps[idx].ID)
		}
	case serveKey, serveKey - 32:
		ctx.Serve()
	case dumpKey, dumpKey - 32:
		ctx.Dump()
	case 'p', 'P':
		ctx.SetPhase(game.PhasePaused)
	}

	if ev.Key() == tcell.KeyEnter {
		ctx.Serve()
	}
}

func handlePausedKey(ctx *engine.GameContext, ev *tcell.EventKey) {
	switch ev.Rune() {
	case 'r', 'R':
		ctx.SetPhase(game.PhaseRunning)
	case 'q', 'Q':
		ctx.SetPhase(game.PhaseIdle)
	}
	if ev.Key() == tcell.KeyEnter {
		ctx.SetPhase(game.PhaseRunning)
	}
}

func handleGameOverKey(ctx *engine.GameContext, snap engine.Snapshot, ev *tcell.EventKey) {
	switch ev.Rune() {
	case 'r', 'R':
		ctx.StartNewGame(snap.Mode)
	case 'm', 'M', 'q', 'Q':
		ctx.SetPhase(game.PhaseIdle)
	}
}

func handleShopKey(ctx *engine.GameContext, snap engine.Snapshot, ev *tcell.EventKey) {
	switch r := ev.Rune(); {
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx < len(snap.Upgrades) {
			ctx.PurchaseUpgrade(snap.Upgrades[idx].ID)
		}
	case r == 'a' || r == 'A':
		ctx.WatchAdForTips()
	case r == 'q' || r == 'Q':
		ctx.SetPhase(game.PhaseIdle)
	}
	if ev.Key() == tcell.KeyEscape {
		ctx.SetPhase(game.PhaseIdle)
	}
}

func handleSettingsKey(ctx *engine.GameContext, ev *tcell.EventKey) {
	switch ev.Rune() {
	case 's', 'S':
		ctx.ToggleSetting(game.SettingSound)
	case 'h', 'H':
		ctx.ToggleSetting(game.SettingHaptic)
	case 'a', 'A':
		ctx.ToggleSetting(game.SettingAssist)
	case 'l', 'L':
		ctx.ToggleSetting(game.SettingLeftHanded)
	case 'q', 'Q':
		ctx.SetPhase(game.PhaseIdle)
	}
	if ev.Key() == tcell.KeyEscape {
		ctx.SetPhase(game.PhaseIdle)
	}
}
