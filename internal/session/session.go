// Package session tracks a three-attempt play session and scores each landing.
package session

import (
	"errors"
	"slices"
	"time"

	"lunar-lander/internal/terrain"
)

const (
	// MaxAttempts is the number of attempts in one session.
	MaxAttempts = 3

	basePoints    = 1000.0
	quickLanding  = 60 * time.Second
	quickBonus    = 1.2
	standardBonus = 1.0
)

// ErrSessionComplete is returned when an attempt is recorded after the last one.
var ErrSessionComplete = errors.New("session: all attempts used")

// Result is the state of one attempt slot.
type Result uint8

const (
	InProgress Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "in_progress"
	}
}

// Attempt is one recorded landing attempt. FuelRemaining is a percentage.
type Attempt struct {
	Result        Result
	Score         float64
	FuelRemaining float64
	Zone          terrain.Difficulty
	TimeTaken     time.Duration
}

// Score rates a landing on zone with fuelPercent left after taken.
func Score(zone terrain.Difficulty, fuelPercent float64, taken time.Duration) float64 {
	bonus := standardBonus
	if taken < quickLanding {
		bonus = quickBonus
	}
	return basePoints * zone.ScoreMultiplier() * (1 + fuelPercent/100) * bonus
}

// Session is the attempt state machine. The zero value is not usable; call New.
type Session struct {
	attempts [MaxAttempts]Attempt
	current  int
	total    float64
	complete bool
}

// New returns a session with every slot in progress.
func New() *Session {
	return &Session{}
}

// Reset discards all attempts.
func (s *Session) Reset() { *s = Session{} }

// CompleteAttempt records the current attempt and advances. Only a success on
// a zone scores.
func (s *Session) CompleteAttempt(result Result, fuelPercent float64, zone terrain.Difficulty, taken time.Duration) (Attempt, error) {
	if s.complete || s.current >= MaxAttempts {
		return Attempt{}, ErrSessionComplete
	}
	a := Attempt{
		Result:        result,
		FuelRemaining: fuelPercent,
		Zone:          zone,
		TimeTaken:     taken,
	}
	if result == Success && zone != terrain.DifficultyNone {
		a.Score = Score(zone, fuelPercent, taken)
	}
	s.attempts[s.current] = a
	s.total += a.Score
	s.current++
	if s.current >= MaxAttempts {
		s.complete = true
	}
	return a, nil
}

// Attempts returns a copy of all slots.
func (s *Session) Attempts() []Attempt { return slices.Clone(s.attempts[:]) }

func (s *Session) TotalScore() float64 { return s.total }
func (s *Session) Complete() bool { return s.complete }
func (s *Session) CurrentIndex() int { return s.current }

// CanStartNextAttempt reports whether another attempt may be recorded.
func (s *Session) CanStartNextAttempt() bool {
	return !s.complete && s.current < MaxAttempts
}

// CurrentAttemptDisplay is the 1-based attempt number, capped at MaxAttempts.
func (s *Session) CurrentAttemptDisplay() int { return min(s.current+1, MaxAttempts) }

// IsFinalAttempt reports whether the current attempt is the last one.
func (s *Session) IsFinalAttempt() bool { return s.current >= MaxAttempts-1 }

func (s *Session) count(r Result) int {
	n := 0
	for _, a := range s.attempts {
		if a.Result == r {
			n++
		}
	}
	return n
}

func (s *Session) SuccessCount() int { return s.count(Success) }
func (s *Session) FailureCount() int { return s.count(Failure) }

// AverageFuelEfficiency is the mean fuel percentage over successful attempts,
// or 0 without any.
func (s *Session) AverageFuelEfficiency() float64 {
	sum, n := 0.0, 0
	for _, a := range s.attempts {
		if a.Result == Success {
			sum += a.FuelRemaining
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// BestAttempt returns the highest scoring success.
func (s *Session) BestAttempt() (Attempt, bool) {
	var best Attempt
	found := false
	for _, a := range s.attempts {
		if a.Result != Success {
			continue
		}
		if !found || a.Score > best.Score {
			best, found = a, true
		}
	}
	return best, found
}

// PerformanceRating grades the session from its successes and fuel use.
func (s *Session) PerformanceRating() string {
	fuel := s.AverageFuelEfficiency()
	switch s.SuccessCount() {
	case 3:
		switch {
		case fuel >= 70:
			return "ACE PILOT"
		case fuel >= 50:
			return "EXPERT"
		default:
			return "SKILLED"
		}
	case 2:
		if fuel >= 60 {
			return "COMPETENT"
		}
		return "ADEQUATE"
	case 1:
		return "NOVICE"
	default:
		return "NEEDS PRACTICE"
	}
}
