package store

import (
	"path/filepath"
	"testing"

	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/game"
)

func testPayload() engine.PersistedState {
	p := engine.DefaultPersisted()
	p.HighScoreClassic = 4200
	p.HighScoreTimed = 900
	p.TotalTips = 133.5
	p.Upgrades[0].Level = 2
	p.Upgrades[0].Cost = 384
	p.Settings.AssistMode = true
	return p
}

func TestMemoryStoreDefaultsUntilSaved(t *testing.T) {
	m := NewMemoryStore()

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.HighScoreClassic != 0 || len(got.Upgrades) == 0 {
		t.Error("Fresh store should load defaults")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	m := NewMemoryStore()

	if err := m.Save(testPayload()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.HighScoreClassic != 4200 || got.TotalTips != 133.5 {
		t.Errorf("Round trip lost economy: %+v", got)
	}
	if !got.Settings.AssistMode {
		t.Error("Round trip lost settings")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	// First load on a fresh database returns defaults
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load on empty db failed: %v", err)
	}
	if got.HighScoreClassic != 0 {
		t.Error("Empty database should load defaults")
	}

	if err := s.Save(testPayload()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err = s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.HighScoreClassic != 4200 || got.HighScoreTimed != 900 {
		t.Errorf("High scores lost: %+v", got)
	}
	if got.Upgrades[0].Level != 2 || got.Upgrades[0].Cost != 384 {
		t.Errorf("Upgrade state lost: %+v", got.Upgrades[0])
	}
}

func TestSQLiteStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	first := testPayload()
	if err := s.Save(first); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	first.TotalTips = 999
	if err := s.Save(first); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.TotalTips != 999 {
		t.Errorf("TotalTips = %v, want the newer 999", got.TotalTips)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Save(testPayload()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if got.HighScoreClassic != 4200 {
		t.Error("Save did not survive a reopen")
	}
}

func TestSQLiteStoreRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	_, err = s.db.Exec(`INSERT INTO save_state (id, version, payload) VALUES (1, ?, '{}')`,
		engine.SchemaVersion+1)
	if err != nil {
		t.Fatalf("Seed newer-version row failed: %v", err)
	}

	got, err := s.Load()
	if err == nil {
		t.Error("Load of a newer schema should report an error")
	}
	// Defaults come back so the game can still start
	if len(got.Upgrades) != len(game.DefaultUpgrades()) {
		t.Error("Newer-schema load should fall back to defaults")
	}
}
