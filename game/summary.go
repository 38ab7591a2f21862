package game

// RunSummary is the snapshot of a finished round, folded into lifetime
// totals exactly once at termination.
type RunSummary struct {
	Score     int
	Tips      float64
	Perfects  int
	Overflows int
	MaxCombo  int
	Mode      Mode
}

// Settings is the persisted user configuration
type Settings struct {
	SoundEnabled   bool    `json:"soundEnabled"`
	HapticEnabled  bool    `json:"hapticEnabled"`
	Volume         float64 `json:"volume"` // 0.0 - 1.0
	AssistMode     bool    `json:"assistMode"`
	LeftHanded     bool    `json:"leftHanded"`
	OnboardingSeen bool    `json:"onboardingSeen"`
}

// DefaultSettings returns first-launch settings
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:  true,
		HapticEnabled: true,
		Volume:        0.7,
	}
}

// Setting keys accepted by the toggle-setting command
const (
	SettingSound      = "soundEnabled"
	SettingHaptic     = "hapticEnabled"
	SettingAssist     = "assistMode"
	SettingLeftHanded = "leftHanded"
	SettingOnboarding = "onboardingSeen"
)

// Toggle flips a boolean setting by key; unknown keys are a no-op
func (s *Settings) Toggle(key string) {
	switch key {
	case SettingSound:
		s.SoundEnabled = !s.SoundEnabled
	case SettingHaptic:
		s.HapticEnabled = !s.HapticEnabled
	case SettingAssist:
		s.AssistMode = !s.AssistMode
	case SettingLeftHanded:
		s.LeftHanded = !s.LeftHanded
	case SettingOnboarding:
		s.OnboardingSeen = !s.OnboardingSeen
	}
}
