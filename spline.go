package spline

// Spline is a uniform B-spline over 2D control points, evaluated with
// de Boor's algorithm on the parameter domain [0, 1].
//
// A looped spline closes on itself by replicating control points at the end
// of the internal control polygon: one replica for an open (clamped) knot
// vector, degree replicas for a periodic one. Replicas are kept in sync by
// SetPoint and never exposed through Point or Points.
type Spline struct {
	degree int
	loop   bool
	open   bool

	n       int    // user-visible control point count
	ctrl    []Vec2 // control polygon including loop replicas
	knots   []float64
	scratch []Vec2 // de Boor working buffer (degree+1)
}

// NewSpline builds a spline from points. The points are copied. The degree
// is clamped to [1, len(points)-1]; with fewer than two points the spline is
// degenerate and Position returns the first point (or the zero vector).
func NewSpline(points []Vec2, degree int, loop, open bool) *Spline {
	s := &Spline{loop: loop, open: open, n: len(points)}

	if s.n < 2 {
		s.degree = max(degree, 1)
		s.ctrl = append([]Vec2(nil), points...)
		return s
	}
	s.degree = min(max(degree, 1), s.n-1)

	rep := s.replicas()
	s.ctrl = make([]Vec2, s.n+rep)
	copy(s.ctrl, points)
	for i := 0; i < rep; i++ {
		s.ctrl[s.n+i] = points[i]
	}
	s.knots = uniformKnots(len(s.ctrl), s.degree, open)
	s.scratch = make([]Vec2, s.degree+1)
	return s
}

// uniformKnots returns m+degree+1 knots for m control points. Clamped knots
// repeat 0 and 1 degree+1 times; periodic knots are evenly spaced so that the
// valid domain [knots[degree], knots[m]] is exactly [0, 1].
func uniformKnots(m, degree int, clamped bool) []float64 {
	knots := make([]float64, m+degree+1)
	span := float64(m - degree)
	for i := range knots {
		switch {
		case clamped && i <= degree:
			knots[i] = 0
		case clamped && i >= m:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / span
		}
	}
	return knots
}

func (s *Spline) replicas() int {
	if !s.loop {
		return 0
	}
	if s.open {
		return 1
	}
	return s.degree
}

// Degree returns the polynomial degree.
func (s *Spline) Degree() int { return s.degree }

// Loop reports whether the curve closes on itself.
func (s *Spline) Loop() bool { return s.loop }

// Open reports whether the knot vector is clamped (open uniform).
func (s *Spline) Open() bool { return s.open }

// Len returns the number of control points.
func (s *Spline) Len() int { return s.n }

// Point returns control point i. Out-of-range indices return the zero vector.
func (s *Spline) Point(i int) Vec2 {
	if i < 0 || i >= s.n {
		return Vec2{}
	}
	return s.ctrl[i]
}

// SetPoint moves control point i in place, leaving the knot vector alone.
// Out-of-range indices are ignored.
func (s *Spline) SetPoint(i int, p Vec2) {
	if i < 0 || i >= s.n {
		return
	}
	s.ctrl[i] = p
	if s.knots != nil && i < s.replicas() {
		s.ctrl[s.n+i] = p
	}
}

// Points returns a copy of the control points.
func (s *Spline) Points() []Vec2 {
	return append([]Vec2(nil), s.ctrl[:s.n]...)
}

// NumKnots returns the length of the knot vector (0 for a degenerate spline).
func (s *Spline) NumKnots() int { return len(s.knots) }

// Knot returns knot i, or 0 when out of range.
func (s *Spline) Knot(i int) float64 {
	if i < 0 || i >= len(s.knots) {
		return 0
	}
	return s.knots[i]
}

// SetKnot sets knot i to v. The knot vector must stay non-decreasing; values
// that would break that and out-of-range indices are refused.
func (s *Spline) SetKnot(i int, v float64) bool {
	if i < 0 || i >= len(s.knots) {
		return false
	}
	if i > 0 && v < s.knots[i-1] {
		return false
	}
	if i < len(s.knots)-1 && v > s.knots[i+1] {
		return false
	}
	s.knots[i] = v
	return true
}

// Position evaluates the curve at parameter t in [0, 1]. t is clamped.
func (s *Spline) Position(t float64) Vec2 {
	if s.knots == nil {
		if len(s.ctrl) == 0 {
			return Vec2{}
		}
		return s.ctrl[0]
	}
	p := s.degree
	m := len(s.ctrl)
	u := lerp(s.knots[p], s.knots[m], clamp01(t))

	k := p
	for k < m-1 && u >= s.knots[k+1] {
		k++
	}

	d := s.scratch
	for j := 0; j <= p; j++ {
		d[j] = s.ctrl[j+k-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			denom := s.knots[i+p-r+1] - s.knots[i]
			var alpha float64
			if denom != 0 {
				alpha = (u - s.knots[i]) / denom
			}
			d[j] = d[j-1].Lerp(d[j], alpha)
		}
	}
	return d[p]
}

// Sample appends n+1 evenly spaced curve positions (t = i/n) to buf and
// returns the extended slice. n below 1 is treated as 1.
func (s *Spline) Sample(buf []Vec2, n int) []Vec2 {
	n = max(n, 1)
	for i := 0; i <= n; i++ {
		buf = append(buf, s.Position(float64(i)/float64(n)))
	}
	return buf
}

// Clone returns a deep copy.
func (s *Spline) Clone() *Spline {
	c := *s
	c.ctrl = append([]Vec2(nil), s.ctrl...)
	if s.knots != nil {
		c.knots = append([]float64(nil), s.knots...)
		c.scratch = make([]Vec2, len(s.scratch))
	}
	return &c
}
