// Package render is the thin terminal shell over the simulation. It
// reads state snapshots and the toast feed; it never mutates simulation
// state except through the command surface in package engine.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/events"
	"github.com/hopwire/pour-panic/game"
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccent  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFrenzy  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Draw renders one frame for the current phase
func (r *Renderer) Draw(snap engine.Snapshot, toasts []Toast) {
	r.screen.Clear()

	switch snap.Phase {
	case game.PhaseIdle:
		r.drawMenu(snap)
	case game.PhaseTutorial:
		r.drawTutorial()
	case game.PhaseHowToPlay:
		r.drawGuide()
	case game.PhaseSettings:
		r.drawSettings(snap)
	case game.PhaseRoundEnd:
		r.drawShop(snap)
	case game.PhaseGameOver:
		r.drawGameOver(snap)
	default:
		// COUNTDOWN, RUNNING, PAUSED, LEVEL_UP share the HUD
		r.drawHUD(snap, toasts)
	}

	r.screen.Show()
}

func (r *Renderer) drawMenu(snap engine.Snapshot) {
	r.text(2, 1, styleAccent, "POUR PANIC")
	r.text(2, 2, styleDim, "next-gen arcade brewery")
	r.text(2, 4, styleDefault, fmt.Sprintf("high score  classic %d   timed %d", snap.HighScoreClassic, snap.HighScoreTimed))
	r.text(2, 5, styleDefault, fmt.Sprintf("tips banked $%.2f", snap.TotalTips))
	r.text(2, 7, styleDefault, "[c] classic mode    [t] timed sprint")
	r.text(2, 8, styleDefault, "[u] shop  [g] guide  [o] tutorial  [s] settings  [q] quit")
}

func (r *Renderer) drawHUD(snap engine.Snapshot, toasts []Toast) {
	width, _ := r.screen.Size()

	// Header: shift, score, combo, mode clock or tips
	r.text(2, 1, styleDim, strings.ReplaceAll(snap.Shift.String(), "_", " "))
	scoreStyle := styleDefault
	if snap.FrenzyActive {
		scoreStyle = styleFrenzy
	}
	r.text(2, 2, scoreStyle, fmt.Sprintf("score %d", snap.Score))
	if snap.Mode == game.ModeTimed {
		r.text(20, 2, styleAccent, fmt.Sprintf(":%02.0f", snap.RoundTimeRemaining))
	} else {
		r.text(20, 2, styleAccent, fmt.Sprintf("$%.2f", snap.TipsEarned))
	}
	if snap.Combo > 1 {
		r.text(32, 2, styleGood, fmt.Sprintf("x%d streak", snap.Combo))
	}

	// Shift progress toward the next threshold
	r.bar(2, 3, 40, snap.ShiftProgress(), styleDim)

	// Customer queue, head first
	y := 5
	for i, c := range snap.CustomerQueue {
		style := styleDim
		if i == 0 {
			style = styleDefault
		}
		tag := ""
		if c.VIP {
			tag = " VIP"
		}
		r.text(2, y, style, fmt.Sprintf("%d. %-9s %s%s  wants %.0f%%", i+1, c.Archetype, c.BeverageID, tag, c.TargetFill*100))
		r.bar(46, y, 14, c.PatienceFraction(), patienceStyle(c.PatienceFraction()))
		y++
	}
	if len(snap.CustomerQueue) == 0 {
		r.text(2, y, styleDim, "bar is empty...")
		y++
	}

	// Glass: fill vs target
	y += 1
	fillStyle := styleGood
	if snap.CurrentFill > 1.0 {
		fillStyle = styleWarn
	}
	r.text(2, y, styleDefault, fmt.Sprintf("fill %5.1f%%  target %4.0f%%", snap.CurrentFill*100, snap.TargetFill*100))
	r.bar(2, y+1, 40, snap.CurrentFill/1.2, fillStyle)
	if snap.IsPouring {
		r.text(44, y+1, styleAccent, "POURING")
	}

	// Meters
	r.text(2, y+3, styleDim, "frenzy")
	r.bar(10, y+3, 25, snap.FrenzyMeter/100, styleFrenzy)
	r.text(2, y+4, styleDim, "line  ")
	r.bar(10, y+4, 25, snap.LinePressure, styleWarn)
	if snap.Mode == game.ModeClassic {
		r.text(38, y+4, styleDim, fmt.Sprintf("walkouts %d/3", snap.Walkouts))
	}

	r.text(2, y+6, styleDim, "[1-3] tap  [space] pour  [s] serve  [d] dump  [esc] pause")
	r.text(2, y+7, styleDefault, fmt.Sprintf("active tap: %s", snap.ActiveTapID))

	// Toast feed, newest on top
	for i, t := range toasts {
		r.text(width-20, 1+i, toastStyle(t.Kind), t.Message)
	}

	// Phase overlays
	switch snap.Phase {
	case game.PhaseCountdown:
		r.center(fmt.Sprintf("  %d  ", snap.CountdownValue), styleAccent)
	case game.PhasePaused:
		r.center(" PAUSED - [r/enter] resume  [q] quit ", styleDefault)
	case game.PhaseLevelUp:
		desc := game.ShiftParams(snap.Shift).Desc
		r.center(fmt.Sprintf(" SHIFT UP: %s - %s [enter] ", snap.Shift, desc), styleGood)
	}
}

func (r *Renderer) drawGameOver(snap engine.Snapshot) {
	r.text(2, 1, styleWarn, "SHIFT OVER")
	if s := snap.LastSummary; s != nil {
		r.text(2, 3, styleDefault, fmt.Sprintf("score      %d", s.Score))
		r.text(2, 4, styleDefault, fmt.Sprintf("tips       $%.2f", s.Tips))
		r.text(2, 5, styleDefault, fmt.Sprintf("perfects   %d", s.Perfects))
		r.text(2, 6, styleDefault, fmt.Sprintf("overflows  %d", s.Overflows))
		r.text(2, 7, styleDefault, fmt.Sprintf("max combo  %d", s.MaxCombo))
	}
	r.text(2, 9, styleDefault, "[r] try again   [m] main menu")
}

func (r *Renderer) drawShop(snap engine.Snapshot) {
	r.text(2, 1, styleAccent, "BREWERY SHOP")
	r.text(2, 2, styleDefault, fmt.Sprintf("available tips $%.2f   [a] free $%d (watch ad)", snap.TotalTips, 50))
	y := 4
	for i, up := range snap.Upgrades {
		label := fmt.Sprintf("[%d] %-13s lvl %d/%d", i+1, up.Name, up.Level, up.MaxLevel)
		price := fmt.Sprintf("$%d", up.Cost)
		if up.Level >= up.MaxLevel {
			price = "MAX"
		}
		r.text(2, y, styleDefault, fmt.Sprintf("%s %6s  %s", label, price, up.Description))
		y++
	}
	r.text(2, y+1, styleDim, "[q/esc] done")
}

func (r *Renderer) drawSettings(snap engine.Snapshot) {
	onOff := func(b bool) string {
		if b {
			return "ON"
		}
		return "off"
	}
	s := snap.Settings
	r.text(2, 1, styleAccent, "CONFIG")
	r.text(2, 3, styleDefault, fmt.Sprintf("[s] sound effects   %s", onOff(s.SoundEnabled)))
	r.text(2, 4, styleDefault, fmt.Sprintf("[h] haptics         %s", onOff(s.HapticEnabled)))
	r.text(2, 5, styleDefault, fmt.Sprintf("[a] assist mode     %s", onOff(s.AssistMode)))
	r.text(2, 6, styleDefault, fmt.Sprintf("[l] left-handed     %s", onOff(s.LeftHanded)))
	r.text(2, 8, styleDim, "[q/esc] close")
}

func (r *Renderer) drawTutorial() {
	r.text(2, 1, styleAccent, "HOW TO BREW")
	r.text(2, 3, styleDefault, "1. Watch the order: each customer wants a beverage at a target fill.")
	r.text(2, 4, styleDefault, "2. Pick the right tap; different brews flow at different rates.")
	r.text(2, 5, styleDefault, "3. Pour with [space], stop on the line for a PERFECT serve.")
	r.text(2, 6, styleDefault, "4. Serve, or dump if you overfilled; overfills cost you.")
	r.text(2, 8, styleDim, "press any key to go back")
}

func (r *Renderer) drawGuide() {
	r.text(2, 1, styleAccent, "GUIDE")
	r.text(2, 3, styleDefault, "Perfect pours earn max points and big tips; combos stack up.")
	r.text(2, 4, styleDefault, "Fill the frenzy meter for doubled rewards and faster taps.")
	r.text(2, 5, styleDefault, "Three walkouts in Classic mode and you're fired.")
	r.text(2, 7, styleDim, "press any key to go back")
}

// text draws a string at x,y
func (r *Renderer) text(x, y int, style tcell.Style, s string) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// bar draws a fixed-width gauge filled to fraction
func (r *Renderer) bar(x, y, width int, fraction float64, style tcell.Style) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// center draws a line in the middle of the screen
func (r *Renderer) center(s string, style tcell.Style) {
	width, height := r.screen.Size()
	x := (width - len(s)) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, height/2, style.Reverse(true), s)
}

func patienceStyle(fraction float64) tcell.Style {
	switch {
	case fraction < 0.25:
		return styleWarn
	case fraction < 0.5:
		return styleAccent
	default:
		return styleGood
	}
}

func toastStyle(kind events.FeedbackKind) tcell.Style {
	switch kind {
	case events.FeedbackPerfect, events.FeedbackLevelUp, events.FeedbackReward:
		return styleGood
	case events.FeedbackGood:
		return styleAccent
	case events.FeedbackFrenzy:
		return styleFrenzy
	case events.FeedbackWalkout, events.FeedbackOverflow, events.FeedbackGameOver:
		return styleWarn
	default:
		return styleDefault
	}
}
