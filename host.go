package spline

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers       = 10 // pointer 0 = mouse, 1-9 = touch
	defaultCommandCap = 256
)

// pointerState is the per-pointer press/drag/release state.
type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
	target Widget      // widget that received the press
	hover  Widget      // last widget the pointer hovered
}

// Host runs widgets inside an Ebitengine game loop. It implements
// ebiten.Game: Update polls mouse, touch and modifier keys and drives each
// widget's pointer state machine; Draw collects render commands and submits
// them as batched triangles plus text.
type Host struct {
	ClearColor Color

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	widgets  []Widget
	commands []RenderCommand
	mesh     meshBuffer
	font     *TTFFont

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue     []syntheticPointerEvent
	runner          *Script
	screenshotQueue []string
}

// NewHost creates a host for the given widgets and runs their Setup.
func NewHost(widgets ...Widget) *Host {
	h := &Host{
		ClearColor:    Color{0.137, 0.118, 0.176, 1},
		ScreenshotDir: "screenshots",
		commands:      make([]RenderCommand, 0, defaultCommandCap),
	}
	for _, w := range widgets {
		h.Add(w)
	}
	return h
}

// Add appends a widget on top of the existing ones and runs its Setup.
func (h *Host) Add(w Widget) {
	w.Setup()
	h.widgets = append(h.widgets, w)
}

// SetFont sets the label font. Without one, labels are not drawn.
func (h *Host) SetFont(f *TTFFont) { h.font = f }

// Update processes input and advances widget animations.
func (h *Host) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if h.runner != nil {
		h.runner.step(h)
	}
	h.processInput()
	for _, w := range h.widgets {
		w.Update(dt)
	}
	return nil
}

// Draw renders every widget onto screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.ClearColor.A > 0 {
		screen.Fill(h.ClearColor.toRGBA())
	}
	h.commands = h.commands[:0]
	for _, w := range h.widgets {
		h.commands = w.Draw(h.commands)
		w.ClearRedraw()
	}
	h.submit(screen)
	h.flushScreenshots(screen)
}

// Layout uses the window size as the logical screen size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// submit draws the collected commands in order. Geometry accumulates into one
// triangle batch that is flushed before each text command.
func (h *Host) submit(target *ebiten.Image) {
	h.mesh.reset()
	for i := range h.commands {
		cmd := &h.commands[i]
		switch cmd.Type {
		case CommandNone:
		case CommandText:
			h.flushMesh(target)
			drawText(target, h.font, cmd)
		default:
			h.mesh.appendCommand(cmd)
		}
	}
	h.flushMesh(target)
}

// flushMesh submits accumulated triangles as a single DrawTriangles32 call.
func (h *Host) flushMesh(target *ebiten.Image) {
	if h.mesh.empty() {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	target.DrawTriangles32(h.mesh.verts, h.mesh.inds, ensureWhitePixel(), &triOp)
	h.mesh.reset()
}

// --- Input processing ---

// hitTest returns the topmost widget containing (x, y), or nil.
func (h *Host) hitTest(x, y float64) Widget {
	for i := len(h.widgets) - 1; i >= 0; i-- {
		if h.widgets[i].HitTest(x, y) {
			return h.widgets[i]
		}
	}
	return nil
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput handles injected, mouse and touch input for one frame.
// Injected events replace real mouse input for the frame they are consumed.
func (h *Host) processInput() {
	mods := readModifiers()
	if !h.processInjectedInput(mods) {
		h.processMousePointer(mods)
	}
	h.processTouchPointers(mods)
}

// processMousePointer handles mouse input (pointer 0).
func (h *Host) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	h.processPointer(0, float64(mx), float64(my), pressed, button, mods)
	if _, dy := ebiten.Wheel(); dy != 0 {
		h.processWheel(0, dy, mods)
	}
}

// processWheel routes wheel motion to the widget holding the pointer, or to
// the one under it.
func (h *Host) processWheel(pointerID int, delta float64, mods KeyModifiers) {
	ps := &h.pointers[pointerID]
	target := ps.target
	if target == nil {
		target = h.hitTest(ps.lastX, ps.lastY)
	}
	wh, ok := target.(WheelHandler)
	if !ok {
		return
	}
	wh.PointerWheel(PointerContext{
		GlobalX:   ps.lastX,
		GlobalY:   ps.lastY,
		Button:    ps.button,
		PointerID: pointerID,
		Modifiers: mods,
	}, delta)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	// Release touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/drag/release/hover state machine for one
// pointer. A press is routed to the widget under it, which then receives
// every drag sample and the release even outside its bounds.
func (h *Host) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &h.pointers[pointerID]
	moved := x != ps.lastX || y != ps.lastY
	ctx := PointerContext{GlobalX: x, GlobalY: y, Button: button, PointerID: pointerID, Modifiers: mods}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.target = h.hitTest(x, y)
		if ps.target != nil {
			ps.target.PointerDown(ctx)
		}
	case !pressed && ps.down:
		ctx.Button = ps.button
		if ps.target != nil {
			// Motion in the release frame still counts as a drag sample.
			if moved {
				ps.target.PointerDrag(ctx)
			}
			ps.target.PointerUp(ctx)
		}
		ps.down = false
		ps.target = nil
	case pressed && ps.down:
		if moved && ps.target != nil {
			ctx.Button = ps.button
			ps.target.PointerDrag(ctx)
		}
	default:
		if pointerID != 0 {
			break
		}
		hover := h.hitTest(x, y)
		if moved || hover != ps.hover {
			if ps.hover != nil && ps.hover != hover {
				ps.hover.PointerMove(ctx)
			}
			if hover != nil {
				hover.PointerMove(ctx)
			}
			ps.hover = hover
		}
	}

	ps.lastX = x
	ps.lastY = y
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a window and runs the host until the window closes.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(h)
}
