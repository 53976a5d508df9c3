package terrain

// Difficulty classifies a landing zone. Narrower zones are harder and pay more.
type Difficulty uint8

const (
	// DifficultyNone marks the absence of a zone (e.g. a crash on rough terrain).
	DifficultyNone Difficulty = iota
	Hard
	Medium
	Easy
)

// Difficulties lists the selectable zone difficulties in draw order.
var Difficulties = [...]Difficulty{Hard, Medium, Easy}

// WidthMultiplier scales the reference width into the zone width.
func (d Difficulty) WidthMultiplier() float64 {
	switch d {
	case Hard:
		return 1.0
	case Medium:
		return 1.25
	case Easy:
		return 1.5
	default:
		return 0
	}
}

// ScoreMultiplier is 2 / WidthMultiplier, or 0 when there is no zone.
func (d Difficulty) ScoreMultiplier() float64 {
	m := d.WidthMultiplier()
	if m == 0 {
		return 0
	}
	return 2.0 / m
}

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "Hard"
	case Medium:
		return "Medium"
	case Easy:
		return "Easy"
	default:
		return "None"
	}
}

// narrower returns the next narrower difficulty, or DifficultyNone below Hard.
func (d Difficulty) narrower() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return DifficultyNone
	}
}
