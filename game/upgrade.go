package game

import "math"

// Upgrade identifiers, referenced by the systems that consume each effect
const (
	UpgradeSteadyHand  = "steady_hand"
	UpgradeFrenzyBoost = "frenzy_boost"
	UpgradeVIPMagnet   = "vip_magnet"
	UpgradeAutoCooler  = "auto_cooler"
	UpgradeFrothMaster = "froth_master"
)

// UpgradeCostGrowth is the cost escalation factor applied per purchase
const UpgradeCostGrowth = 1.6

// Upgrade is a persistent purchasable modifier. Level and Cost survive
// across sessions; the effect magnitude is interpreted by the consuming
// system (tolerance widening, frenzy extension, VIP bias, pressure damping).
type Upgrade struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	MaxLevel    int    `json:"maxLevel"`
	Cost        int    `json:"cost"`
}

// DefaultUpgrades returns the shop catalog at level 0
func DefaultUpgrades() []Upgrade {
	return []Upgrade{
		{ID: UpgradeSteadyHand, Name: "Steady Hand", Description: "Reduces overfill penalties.", MaxLevel: 5, Cost: 150},
		{ID: UpgradeFrenzyBoost, Name: "Party Lights", Description: "Frenzy lasts 2s longer.", MaxLevel: 5, Cost: 250},
		{ID: UpgradeVIPMagnet, Name: "Happy Hour", Description: "VIPs show up more often.", MaxLevel: 5, Cost: 400},
		{ID: UpgradeAutoCooler, Name: "Auto Cooler", Description: "Line pressure builds slower.", MaxLevel: 5, Cost: 350},
		{ID: UpgradeFrothMaster, Name: "Froth Master", Description: "Perfect zone is wider.", MaxLevel: 5, Cost: 500},
	}
}

// UpgradeList is the owned catalog with purchase and lookup rules
type UpgradeList []Upgrade

// Level returns the current level of an upgrade, 0 for unknown ids
func (ul UpgradeList) Level(id string) int {
	for i := range ul {
		if ul[i].ID == id {
			return ul[i].Level
		}
	}
	return 0
}

// Find returns a pointer into the list, nil when absent
func (ul UpgradeList) Find(id string) *Upgrade {
	for i := range ul {
		if ul[i].ID == id {
			return &ul[i]
		}
	}
	return nil
}

// Purchase applies the purchase rule: requires available >= cost and
// level < maxLevel. Returns the tips spent, or 0 when the purchase is a
// no-op. On success the level increments and the cost escalates
// floor(cost * 1.6).
func (ul UpgradeList) Purchase(id string, available float64) float64 {
	up := ul.Find(id)
	if up == nil || up.Level >= up.MaxLevel || available < float64(up.Cost) {
		return 0
	}
	spent := float64(up.Cost)
	up.Level++
	up.Cost = int(math.Floor(float64(up.Cost) * UpgradeCostGrowth))
	return spent
}
