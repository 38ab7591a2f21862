package game

// PatienceArchetype classifies how long a customer is willing to wait
type PatienceArchetype int

const (
	PatienceVery PatienceArchetype = iota
	PatienceNormal
	PatienceImpatient
)

func (a PatienceArchetype) String() string {
	switch a {
	case PatienceVery:
		return "PATIENT"
	case PatienceImpatient:
		return "IMPATIENT"
	default:
		return "REGULAR"
	}
}

// Customer is one order in the FIFO queue. Index 0 is the actively-served
// customer; the round's target fill tracks the head.
type Customer struct {
	ID        string
	Archetype PatienceArchetype

	BeverageID string

	// Fill targets are fractions of a full vessel
	TargetFill       float64
	TolerancePerfect float64
	ToleranceGood    float64

	// Patience in milliseconds; PatienceRemainingMs never drops below 0
	PatienceMaxMs       float64
	PatienceRemainingMs float64

	VIP bool
}

// PatienceFraction returns remaining/max patience for gauges, 0 when drained
func (c *Customer) PatienceFraction() float64 {
	if c.PatienceMaxMs <= 0 {
		return 0
	}
	f := c.PatienceRemainingMs / c.PatienceMaxMs
	if f < 0 {
		return 0
	}
	return f
}
