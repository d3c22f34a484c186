package spline

// noTarget marks the absence of a targeted control point.
const noTarget = -1

// splineOwner abstracts who owns the editor's spline. Rebuilds go through
// replace so a borrowed spline is rewritten in place and its owner observes
// every change, while an owned one is simply swapped.
type splineOwner interface {
	spline() *Spline
	replace(next *Spline)
}

// ownedSpline is a spline the editor created and exclusively holds.
type ownedSpline struct{ s *Spline }

func (o *ownedSpline) spline() *Spline      { return o.s }
func (o *ownedSpline) replace(next *Spline) { o.s = next }

// borrowedSpline is a spline handed in by a caller, who keeps its lifetime.
type borrowedSpline struct{ s *Spline }

func (b borrowedSpline) spline() *Spline      { return b.s }
func (b borrowedSpline) replace(next *Spline) { *b.s = *next }

// Editor is an interactive B-spline editor. It owns an ordered list of
// control points in value space and keeps a derived Spline in sync with
// them. Pointer samples pick, add, drag and remove points; every change to
// the curve's shape marks the view dirty and, where the change came from a
// user or property edit, fires OnChange with a copy of the spline.
//
// Editor is not safe for concurrent use; hosts drive it from one goroutine.
type Editor struct {
	View

	// OnChange receives a copy of the spline whenever the curve changes due
	// to a property edit or Load, and on the pointer phases selected by
	// Config.Trigger.
	OnChange func(*Spline)

	// Style controls colors and sizes of the render output.
	Style Style

	cfg    Config
	rng    ValueRange
	points []Vec2
	degree int
	loop   bool
	open   bool
	ref    splineOwner

	hit   int
	pulse markerPulse

	// Reused render buffers. Commands returned by Draw reference them.
	curveBuf []Vec2
	polyBuf  []Vec2
}

// DefaultPoints is the control polygon used when an editor is created
// without a usable spline: a cubic across the unit range.
var DefaultPoints = []Vec2{{0, 0}, {0.25, 0.75}, {0.75, 0.25}, {1, 1}}

// NewEditor creates an editor named name. The initial control points and
// degree/loop/open flags are copied from s; when s is nil or has fewer than
// two points the editor starts from DefaultPoints (expanded into the
// configured range) as a cubic.
func NewEditor(name string, s *Spline, cfg Config) *Editor {
	cfg = cfg.withDefaults()
	e := &Editor{
		View:  newView(name, Rect{X: cfg.X, Y: cfg.Y, Width: cfg.Width, Height: cfg.Height}),
		Style: DefaultStyle(),
		cfg:   cfg,
		rng:   ValueRange{Min: cfg.Min, Max: cfg.Max},
		hit:   noTarget,
	}
	if s == nil || s.Len() < 2 {
		pts := make([]Vec2, len(DefaultPoints))
		for i, p := range DefaultPoints {
			pts[i] = e.FromNormalized(p)
		}
		s = NewSpline(pts, 3, false, true)
	}
	e.points = s.Points()
	e.degree, e.loop, e.open = s.Degree(), s.Loop(), s.Open()
	e.ref = &ownedSpline{}
	e.updateSplineRef(true)
	return e
}

// Setup is the host lifecycle hook run once the editor is placed. It creates
// the label sub-view on first use when labels are enabled.
func (e *Editor) Setup() {
	if e.cfg.Label {
		e.setupLabel(e.cfg.FontSize)
	}
	e.MarkDirty()
}

// Update advances time-based state (the highlight marker tween).
func (e *Editor) Update(dt float64) {
	if e.pulse.update(dt) {
		e.MarkDirty()
	}
}

// Config returns the editor's effective configuration.
func (e *Editor) Config() Config { return e.cfg }

// SetSticky toggles snapping of every sample to the sticky step.
func (e *Editor) SetSticky(on bool) { e.cfg.Sticky = on }

// SetBounds moves or resizes the editor's hit rectangle.
func (e *Editor) SetBounds(r Rect) {
	e.Bounds = r
	e.cfg.X, e.cfg.Y, e.cfg.Width, e.cfg.Height = r.X, r.Y, r.Width, r.Height
	e.MarkDirty()
}

// --- Spline ownership & synchronization ---

// SetSpline replaces the control points and degree/loop/open flags with
// those of s and rebuilds the spline.
func (e *Editor) SetSpline(s *Spline) {
	if s == nil {
		return
	}
	e.points = s.Points()
	e.degree, e.loop, e.open = s.Degree(), s.Loop(), s.Open()
	e.hit = noTarget
	e.updateSplineRef(true)
}

// SetSplineReference adopts s, which the caller keeps owning. The editor
// takes its control points and flags from s and from now on writes every
// rebuild into *s. Passing nil is ignored.
func (e *Editor) SetSplineReference(s *Spline) {
	if s == nil {
		return
	}
	e.ref = borrowedSpline{s: s}
	e.points = s.Points()
	e.degree, e.loop, e.open = s.Degree(), s.Loop(), s.Open()
	e.hit = noTarget
	e.updateSplineRef(false)
}

// Spline returns a copy of the current spline.
func (e *Editor) Spline() *Spline {
	return e.ref.spline().Clone()
}

// updateSplineRef brings the spline in line with the control points. A
// changed point count or force reconstructs it; otherwise points are copied
// in place, which keeps any knot edits.
func (e *Editor) updateSplineRef(force bool) {
	sp := e.ref.spline()
	if force || sp == nil || sp.Len() != len(e.points) {
		e.ref.replace(NewSpline(e.points, e.degree, e.loop, e.open))
		tracer().Debugf("spline %q rebuilt: %d points, degree %d, loop=%v, open=%v",
			e.Name, len(e.points), e.degree, e.loop, e.open)
	} else {
		for i, p := range e.points {
			sp.SetPoint(i, p)
		}
	}
	e.MarkDirty()
}

// changed notifies OnChange.
func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.Spline())
	}
}

// --- Properties ---

// Points returns a copy of the control points in value space.
func (e *Editor) Points() []Vec2 { return append([]Vec2(nil), e.points...) }

// NumPoints returns the number of control points.
func (e *Editor) NumPoints() int { return len(e.points) }

// Degree returns the spline degree.
func (e *Editor) Degree() int { return e.degree }

// Loop reports whether the curve is closed.
func (e *Editor) Loop() bool { return e.loop }

// Open reports whether the knot vector is clamped.
func (e *Editor) Open() bool { return e.open }

// Target returns the index of the control point under interaction.
func (e *Editor) Target() (int, bool) {
	return e.hit, e.hit != noTarget
}

// validDegree reports whether d satisfies 1 <= d <= len(points)-1.
func (e *Editor) validDegree(d int) bool {
	return d >= 1 && d <= len(e.points)-1
}

// SetDegree changes the degree. Degrees outside [1, NumPoints()-1] are
// ignored.
func (e *Editor) SetDegree(d int) {
	if d == e.degree || !e.validDegree(d) {
		return
	}
	e.degree = d
	e.updateSplineRef(true)
	e.changed()
}

// SetLoop closes or opens the curve.
func (e *Editor) SetLoop(loop bool) {
	if loop == e.loop {
		return
	}
	e.loop = loop
	e.updateSplineRef(true)
	e.changed()
}

// SetOpen switches between clamped and periodic knot vectors.
func (e *Editor) SetOpen(open bool) {
	if open == e.open {
		return
	}
	e.open = open
	e.updateSplineRef(true)
	e.changed()
}

// SetProperties assigns degree, loop and open together. The degree is
// clamped into [1, NumPoints()-1].
func (e *Editor) SetProperties(degree int, loop, open bool) {
	e.degree = min(max(degree, 1), max(len(e.points)-1, 1))
	e.loop = loop
	e.open = open
	e.updateSplineRef(true)
	e.changed()
}

// --- Control point edits ---

// setTarget makes point i the interaction target and starts its highlight.
func (e *Editor) setTarget(i int) {
	if e.hit == i {
		return
	}
	e.hit = i
	e.pulse.start(e.Style.MarkerSize, e.Style.HighlightSize)
	e.MarkDirty()
}

func (e *Editor) clearTarget() {
	if e.hit == noTarget {
		return
	}
	e.hit = noTarget
	e.pulse.stop()
	e.MarkDirty()
}

// canRemove reports whether one point can go without the degree exceeding
// the remaining count minus one.
func (e *Editor) canRemove() bool {
	return len(e.points)-1 > e.degree
}

// removePoint deletes point i and clears the target.
func (e *Editor) removePoint(i int) {
	e.points = append(e.points[:i], e.points[i+1:]...)
	e.clearTarget()
	e.updateSplineRef(false)
}

// appendPoint adds p at the end and makes it the target.
func (e *Editor) appendPoint(p Vec2) {
	e.points = append(e.points, p)
	e.setTarget(len(e.points) - 1)
	e.updateSplineRef(false)
}

// nearest returns the index of the control point closest to p and its
// distance, or -1 when there are no points.
func (e *Editor) nearest(p Vec2) (int, float64) {
	best, bestDist := noTarget, 0.0
	for i, q := range e.points {
		d := p.Dist(q)
		if best == noTarget || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
