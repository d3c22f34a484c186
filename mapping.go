package spline

// Range returns the value-space range.
func (e *Editor) Range() ValueRange { return e.rng }

// yEdges returns the display rows that Min.Y and Max.Y map to. Value Y grows
// upward unless the config asks for YDown.
func (e *Editor) yEdges() (minY, maxY float64) {
	r := e.Bounds
	if e.cfg.YDown {
		return r.Y, r.Y + r.Height
	}
	return r.Y + r.Height, r.Y
}

// ToDisplay maps a value-space point into the editor's hit rectangle.
func (e *Editor) ToDisplay(p Vec2) Vec2 {
	r := e.Bounds
	minY, maxY := e.yEdges()
	return Vec2{
		X: lmap(p.X, e.rng.Min.X, e.rng.Max.X, r.X, r.X+r.Width),
		Y: lmap(p.Y, e.rng.Min.Y, e.rng.Max.Y, minY, maxY),
	}
}

// FromDisplay maps a pixel position back into value space, clamping to the
// hit rectangle (and therefore to the value range).
func (e *Editor) FromDisplay(px Vec2) Vec2 {
	r := e.Bounds
	minY, maxY := e.yEdges()
	n := Vec2{
		X: clamp01(lmap(px.X, r.X, r.X+r.Width, 0, 1)),
		Y: clamp01(lmap(px.Y, minY, maxY, 0, 1)),
	}
	return e.FromNormalized(n)
}

// ToNormalized maps a value-space point into [0,1]x[0,1] relative to the
// value range. A degenerate axis maps to 0.
func (e *Editor) ToNormalized(p Vec2) Vec2 {
	return toNormalized(p, e.rng)
}

// FromNormalized expands a normalized point into value space.
func (e *Editor) FromNormalized(n Vec2) Vec2 {
	return fromNormalized(n, e.rng)
}

func toNormalized(p Vec2, r ValueRange) Vec2 {
	return Vec2{
		X: lmap(p.X, r.Min.X, r.Max.X, 0, 1),
		Y: lmap(p.Y, r.Min.Y, r.Max.Y, 0, 1),
	}
}

func fromNormalized(n Vec2, r ValueRange) Vec2 {
	return Vec2{
		X: lerp(r.Min.X, r.Max.X, n.X),
		Y: lerp(r.Min.Y, r.Max.Y, n.Y),
	}
}

// SetMinAndMax changes the value range. With keepShape every control point
// is remapped from the old range into the new one, so the curve looks the
// same on screen, and OnChange fires. Otherwise point values are left as
// they are and only the mapping changes. A range that is degenerate on both
// axes is ignored.
func (e *Editor) SetMinAndMax(min, max Vec2, keepShape bool) {
	if min.X == max.X && min.Y == max.Y {
		return
	}
	old := e.rng
	e.rng = ValueRange{Min: min, Max: max}
	e.cfg.Min, e.cfg.Max = min, max
	if !keepShape {
		e.MarkDirty()
		return
	}
	for i, p := range e.points {
		e.points[i] = fromNormalized(toNormalized(p, old), e.rng)
	}
	e.updateSplineRef(true)
	e.changed()
}
