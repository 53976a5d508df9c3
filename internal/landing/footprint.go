package landing

const (
	// LegHeightRatio is the share of the craft height taken by the legs.
	LegHeightRatio = 0.25
	// LegWidthRatio is the share of the craft width taken by each leg.
	LegWidthRatio = 0.3
)

// Span is a closed interval along one axis.
type Span struct {
	Lo, Hi float64
}

// Contains reports whether v lies in [Lo, Hi].
func (s Span) Contains(v float64) bool { return s.Lo <= v && v <= s.Hi }

// Footprint splits the craft box into the regions that may touch the ground.
type Footprint struct {
	LegBottom  float64
	BodyBottom float64
	LeftLeg    Span
	RightLeg   Span
	Body       Span
}

// FootprintOf computes the contact regions for pose.
func FootprintOf(p Pose) Footprint {
	left := p.Position.X()
	right := left + p.Size.X()
	bottom := p.Position.Y()
	leg := p.Size.X() * LegWidthRatio
	return Footprint{
		LegBottom:  bottom,
		BodyBottom: bottom + p.Size.Y()*LegHeightRatio,
		LeftLeg:    Span{left, left + leg},
		RightLeg:   Span{right - leg, right},
		Body:       Span{left + leg, right - leg},
	}
}

// LegsOver reports whether x lies under either leg.
func (f Footprint) LegsOver(x float64) bool {
	return f.LeftLeg.Contains(x) || f.RightLeg.Contains(x)
}
