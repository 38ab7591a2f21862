package game

// TapStatus is the operability of a beverage tap
type TapStatus int

const (
	TapOK TapStatus = iota
	TapSticky
	TapBlown
)

// Tap is a beverage source. Flow rate is fill-fraction per second and fixed
// per tap; frenzy applies a global multiplier on top.
type Tap struct {
	ID       string
	Name     string
	Status   TapStatus
	FlowRate float64
	Tint     string // hex color for the render layer
}

// DefaultTaps returns the stock tap bank
func DefaultTaps() []Tap {
	return []Tap{
		{ID: "tap_1", Name: "Lager", Status: TapOK, FlowRate: 0.25, Tint: "#f49d25"},
		{ID: "tap_2", Name: "IPA", Status: TapOK, FlowRate: 0.35, Tint: "#d97706"},
		{ID: "tap_3", Name: "Stout", Status: TapOK, FlowRate: 0.18, Tint: "#31231a"},
	}
}

// baseTips is the fixed per-beverage tip lookup
var baseTips = map[string]float64{
	"tap_1": 1.0,
	"tap_2": 1.5,
	"tap_3": 2.0,
}

// BaseTip returns the base tip for a beverage, defaulting to 1.0 for
// unknown identifiers
func BaseTip(beverageID string) float64 {
	if tip, ok := baseTips[beverageID]; ok {
		return tip
	}
	return 1.0
}

// FindTap returns the tap with the given id, falling back to the first tap
// when the id is unknown. Callers guarantee taps is non-empty at startup.
func FindTap(taps []Tap, id string) Tap {
	for _, t := range taps {
		if t.ID == id {
			return t
		}
	}
	return taps[0]
}
