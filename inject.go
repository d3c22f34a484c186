package spline

// syntheticPointerEvent is a single injected mouse event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	mods    KeyModifiers
}

// InjectPress queues a left-button press at (x, y). Queued events are
// consumed one per frame in place of real mouse input.
func (h *Host) InjectPress(x, y float64) {
	h.InjectPointer(x, y, true, MouseButtonLeft, 0)
}

// InjectMove queues a move at (x, y) with the left button held. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.InjectPointer(x, y, true, MouseButtonLeft, 0)
}

// InjectRelease queues a release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.InjectPointer(x, y, false, MouseButtonLeft, 0)
}

// InjectPointer queues an arbitrary pointer sample, e.g. a right-button
// press or one with modifiers held.
func (h *Host) InjectPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: pressed, button: button, mods: mods,
	})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	h.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it through
// processPointer as pointer 0. The event's own modifiers are combined with
// the keyboard's. Returns true if an event was consumed.
func (h *Host) processInjectedInput(mods KeyModifiers) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.processPointer(0, evt.x, evt.y, evt.pressed, evt.button, mods|evt.mods)
	return true
}
