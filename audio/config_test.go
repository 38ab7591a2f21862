package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled || cfg.MasterVolume != 0.7 || cfg.SampleRate != 44100 {
		t.Errorf("DefaultConfig = %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("POUR_PANIC_AUDIO_ENABLED", "false")
	t.Setenv("POUR_PANIC_MASTER_VOLUME", "50")
	t.Setenv("POUR_PANIC_SAMPLE_RATE", "48000")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled should be false")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %v, want 0.5", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
}

func TestLoadConfigClampsVolume(t *testing.T) {
	t.Setenv("POUR_PANIC_MASTER_VOLUME", "150")
	if cfg := LoadConfig(); cfg.MasterVolume != 1.0 {
		t.Errorf("MasterVolume = %v, want clamped to 1.0", cfg.MasterVolume)
	}

	t.Setenv("POUR_PANIC_MASTER_VOLUME", "-5")
	if cfg := LoadConfig(); cfg.MasterVolume != 0 {
		t.Errorf("MasterVolume = %v, want clamped to 0", cfg.MasterVolume)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("POUR_PANIC_AUDIO_ENABLED", "maybe")
	t.Setenv("POUR_PANIC_MASTER_VOLUME", "loud")
	t.Setenv("POUR_PANIC_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	if !cfg.Enabled || cfg.MasterVolume != 0.7 || cfg.SampleRate != 44100 {
		t.Errorf("Garbage env should keep defaults, got %+v", cfg)
	}
}

func TestVolumeGainMapping(t *testing.T) {
	if got := volumeGain(1.0); got != 0 {
		t.Errorf("volumeGain(1.0) = %v, want 0 (unity)", got)
	}
	if got := volumeGain(0); got != -10 {
		t.Errorf("volumeGain(0) = %v, want -10", got)
	}
	if got := volumeGain(0.5); got != -2.5 {
		t.Errorf("volumeGain(0.5) = %v, want -2.5", got)
	}
}
