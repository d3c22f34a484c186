package spline

import "math"

// knotStep is the knot change per wheel notch.
const knotStep = 0.1

// notify fires OnChange when the config's Trigger includes phase.
func (e *Editor) notify(phase Trigger) {
	if e.cfg.Trigger&phase != 0 {
		e.changed()
	}
}

// PointerDown starts a drag: the editor enters StateDown and takes the first
// sample at the press position.
func (e *Editor) PointerDown(ctx PointerContext) {
	e.setState(StateDown)
	e.clearTarget()
	e.sample(ctx)
	e.notify(TriggerBegin)
}

// PointerDrag samples while the pointer is held. Ignored unless a press
// started inside the editor.
func (e *Editor) PointerDrag(ctx PointerContext) {
	if e.state != StateDown {
		return
	}
	e.sample(ctx)
	e.notify(TriggerChange)
}

// PointerUp ends the drag. Mouse pointers fall back to StateOver when still
// inside the hit region; touch pointers have no hover and always go idle.
func (e *Editor) PointerUp(ctx PointerContext) {
	pressed := e.state == StateDown
	e.clearTarget()
	if !ctx.IsTouch() && e.HitTest(ctx.GlobalX, ctx.GlobalY) {
		e.setState(StateOver)
	} else {
		e.setState(StateIdle)
	}
	if pressed {
		e.notify(TriggerEnd)
	}
}

// PointerWheel moves the knot of the targeted point by delta wheel notches
// while the pointer is held, clamped to [0, 1]. Values that would break the
// knot order are refused. Knot edits last until the spline is rebuilt.
func (e *Editor) PointerWheel(ctx PointerContext, delta float64) {
	if e.state != StateDown || e.hit == noTarget || delta == 0 {
		return
	}
	sp := e.ref.spline()
	v := clamp01(sp.Knot(e.hit) + delta*knotStep)
	if !sp.SetKnot(e.hit, v) {
		tracer().Debugf("spline %q: knot %d refused %.3f", e.Name, e.hit, v)
		return
	}
	e.MarkDirty()
	e.notify(TriggerChange)
}

// PointerMove tracks hover while no button is held.
func (e *Editor) PointerMove(ctx PointerContext) {
	if e.state == StateDown {
		return
	}
	if e.HitTest(ctx.GlobalX, ctx.GlobalY) {
		e.setState(StateOver)
	} else {
		e.setState(StateIdle)
	}
}

// isRemoveGesture reports whether the sample asks to delete the picked point:
// secondary button or Ctrl held.
func isRemoveGesture(ctx PointerContext) bool {
	return ctx.Button == MouseButtonRight || ctx.Modifiers.Has(ModCtrl)
}

// snap rounds each axis up to the next multiple of the sticky step.
func (e *Editor) snap(p Vec2) Vec2 {
	step := e.cfg.StickyStep
	return Vec2{
		X: math.Ceil(p.X/step) * step,
		Y: math.Ceil(p.Y/step) * step,
	}
}

// sample runs one step of the pick/add/remove/drag logic for a pointer
// position.
func (e *Editor) sample(ctx PointerContext) {
	pos := e.FromDisplay(Vec2{ctx.GlobalX, ctx.GlobalY})
	if e.cfg.Sticky || ctx.Modifiers.Has(ModShift) {
		pos = e.snap(pos)
	}

	if e.hit == noTarget {
		i, d := e.nearest(pos)
		if i != noTarget && d < e.cfg.HitThreshold*e.rng.Diagonal() {
			e.setTarget(i)
			if isRemoveGesture(ctx) {
				if !e.canRemove() {
					tracer().Debugf("spline %q: keep point %d, degree %d needs %d points",
						e.Name, i, e.degree, e.degree+1)
				} else {
					e.removePoint(i)
					return
				}
			}
		} else {
			e.appendPoint(pos)
		}
	}

	e.points[e.hit] = pos
	e.updateSplineRef(false)
}
