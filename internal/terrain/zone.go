package terrain

// Zone is a flat landing area spanning terrain indices [Start, End].
type Zone struct {
	Start       int
	End         int
	Difficulty  Difficulty
	WidthPoints int
}

// Contains reports whether the whole span [lo, hi] lies inside the zone.
// Touching an edge counts; crossing it does not.
func (z Zone) Contains(lo, hi int) bool {
	return z.Start <= lo && hi <= z.End
}

// conflicts reports whether [start, end] comes within gap points of the zone.
func (z Zone) conflicts(start, end, gap int) bool {
	return !(end+gap < z.Start || start > z.End+gap)
}

// Profile holds one elevation sample per horizontal terrain index.
type Profile []float64

// Len returns the number of samples.
func (p Profile) Len() int { return len(p) }

// Bounds returns the lowest and highest sample. Both are 0 for an empty profile.
func (p Profile) Bounds() (lo, hi float64) {
	if len(p) == 0 {
		return 0, 0
	}
	lo, hi = p[0], p[0]
	for _, h := range p[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}
