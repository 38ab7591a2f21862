package game

// Phase is the lifecycle state of the round/game state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTutorial
	PhaseCountdown
	PhaseRunning
	PhasePaused
	PhaseLevelUp
	PhaseRoundEnd // shop screen
	PhaseGameOver
	PhaseHowToPlay
	PhaseSettings
)

var phaseNames = map[Phase]string{
	PhaseIdle:      "IDLE",
	PhaseTutorial:  "TUTORIAL",
	PhaseCountdown: "COUNTDOWN",
	PhaseRunning:   "RUNNING",
	PhasePaused:    "PAUSED",
	PhaseLevelUp:   "LEVEL_UP",
	PhaseRoundEnd:  "ROUND_END",
	PhaseGameOver:  "GAME_OVER",
	PhaseHowToPlay: "HOW_TO_PLAY",
	PhaseSettings:  "SETTINGS",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Mode selects the round termination rule
type Mode int

const (
	// ModeClassic ends the round on the third walkout
	ModeClassic Mode = iota

	// ModeTimed ends the round when the 60s budget reaches zero
	ModeTimed
)

func (m Mode) String() string {
	if m == ModeTimed {
		return "TIMED"
	}
	return "CLASSIC"
}
