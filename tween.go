package spline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pulseDuration is how long the highlight marker takes to grow, in seconds.
const pulseDuration = 0.15

// markerPulse eases the highlight marker radius when a control point becomes
// the target. Advance it with update(dt) each frame; size holds the current
// radius.
type markerPulse struct {
	tween *gween.Tween
	size  float64
	done  bool
}

// start restarts the pulse from one radius to another.
func (p *markerPulse) start(from, to float64) {
	p.tween = gween.New(float32(from), float32(to), pulseDuration, ease.OutQuad)
	p.size = from
	p.done = false
}

// stop drops the running tween.
func (p *markerPulse) stop() {
	p.tween = nil
	p.done = true
}

// update advances the tween by dt seconds and reports whether the radius
// changed.
func (p *markerPulse) update(dt float64) bool {
	if p.tween == nil || p.done {
		return false
	}
	val, finished := p.tween.Update(float32(dt))
	p.size = float64(val)
	p.done = finished
	return true
}
