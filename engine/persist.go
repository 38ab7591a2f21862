package engine

import (
	"github.com/hopwire/pour-panic/game"
)

// SchemaVersion tags the persisted payload for forward migration
const SchemaVersion = 1

// PersistedState is the cross-session subset of GameState. In-round state
// is ephemeral and rebuilt on new-game start; only the economy and user
// settings survive.
type PersistedState struct {
	SchemaVersion    int              `json:"schemaVersion"`
	HighScoreClassic int              `json:"highScoreClassic"`
	HighScoreTimed   int              `json:"highScoreTimed"`
	TotalTips        float64          `json:"totalTips"`
	Upgrades         []game.Upgrade   `json:"upgrades"`
	Settings         game.Settings    `json:"settings"`
}

// DefaultPersisted returns a first-launch payload
func DefaultPersisted() PersistedState {
	return PersistedState{
		SchemaVersion: SchemaVersion,
		Upgrades:      game.DefaultUpgrades(),
		Settings:      game.DefaultSettings(),
	}
}

// SaveStore is the injected persistence port. Implementations live in the
// store package; the core never sees the storage mechanism.
type SaveStore interface {
	Load() (PersistedState, error)
	Save(PersistedState) error
	Close() error
}

// ApplyPersisted folds a loaded payload into the state. Unknown upgrade
// ids in the payload are dropped; catalog entries missing from the
// payload keep their defaults. Caller holds the lock.
func (st *GameState) ApplyPersisted(p PersistedState) {
	st.HighScoreClassic = p.HighScoreClassic
	st.HighScoreTimed = p.HighScoreTimed
	st.TotalTips = p.TotalTips
	for _, saved := range p.Upgrades {
		if up := st.Upgrades.Find(saved.ID); up != nil {
			up.Level = saved.Level
			up.Cost = saved.Cost
			if up.Level > up.MaxLevel {
				up.Level = up.MaxLevel
			}
		}
	}
	st.Settings = p.Settings
}

// CollectPersisted extracts the persisted subset. Caller holds the lock.
func (st *GameState) CollectPersisted() PersistedState {
	ups := make([]game.Upgrade, len(st.Upgrades))
	copy(ups, st.Upgrades)
	return PersistedState{
		SchemaVersion:    SchemaVersion,
		HighScoreClassic: st.HighScoreClassic,
		HighScoreTimed:   st.HighScoreTimed,
		TotalTips:        st.TotalTips,
		Upgrades:         ups,
		Settings:         st.Settings,
	}
}
