package landing

// Outcome is the per-tick contact classification.
type Outcome uint8

const (
	None Outcome = iota
	LegCollision
	BodyCollision
	LandingSuccess
)

// Terminal reports whether the outcome ends the attempt.
func (o Outcome) Terminal() bool { return o != None }

// Success reports whether the outcome is a safe touchdown.
func (o Outcome) Success() bool { return o == LandingSuccess }

func (o Outcome) String() string {
	switch o {
	case LegCollision:
		return "leg_collision"
	case BodyCollision:
		return "body_collision"
	case LandingSuccess:
		return "landing_success"
	default:
		return "none"
	}
}
