package spline

import polyclip "github.com/akavel/polyclip-go"

// PointerContext carries pointer event data delivered by a host. Positions
// are in the host's screen space, the same space as View.Bounds.
type PointerContext struct {
	GlobalX   float64
	GlobalY   float64
	Button    MouseButton
	PointerID int // 0 = mouse, 1-9 = touch
	Modifiers KeyModifiers
}

// IsTouch reports whether the event came from a touch pointer.
func (c PointerContext) IsTouch() bool { return c.PointerID > 0 }

// State is the visual interaction state of a view.
type State uint8

const (
	StateIdle State = iota // no pointer engagement
	StateOver              // pointer hovering inside the hit region
	StateDown              // pointer pressed, dragging
)

func (s State) String() string {
	switch s {
	case StateOver:
		return "over"
	case StateDown:
		return "down"
	default:
		return "idle"
	}
}

// HitShape is used for custom hit testing regions in global coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a polygonal hit area. The polygon closes implicitly.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	c := make(polyclip.Contour, len(p.Points))
	for i, q := range p.Points {
		c[i] = polyclip.Point{X: q.X, Y: q.Y}
	}
	return c.Contains(polyclip.Point{X: x, Y: y})
}

// Drawable is implemented by anything a host can render.
type Drawable interface {
	// Draw appends the view's render commands to dst.
	Draw(dst []RenderCommand) []RenderCommand
	NeedsRedraw() bool
	ClearRedraw()
}

// Hittable is implemented by anything a host can hit-test.
type Hittable interface {
	HitTest(x, y float64) bool
}

// PointerHandler receives the pointer state machine's transitions from a host.
type PointerHandler interface {
	PointerDown(PointerContext)
	PointerDrag(PointerContext)
	PointerUp(PointerContext)
	PointerMove(PointerContext)
}

// WheelHandler is implemented by widgets that consume wheel motion. Hosts
// route it to the widget holding the pointer, or the one under it.
type WheelHandler interface {
	PointerWheel(ctx PointerContext, delta float64)
}

// Widget is the full contract a host drives: lifecycle, hit testing, pointer
// input and drawing.
type Widget interface {
	Drawable
	Hittable
	PointerHandler
	Setup()
	Update(dt float64)
}

// Label is a text sub-view drawn above its owner's bounds.
type Label struct {
	Text     string
	FontSize float64
	Visible  bool
}

// View holds the state every widget shares: identity, placement, visual
// state, redraw flag and the optional label. Widgets embed it.
type View struct {
	Name         string
	Bounds       Rect
	Visible      bool
	Interactable bool

	// HitShape overrides Bounds for hit testing when set.
	HitShape HitShape

	state       State
	needsRedraw bool
	label       *Label // created on first Setup when labels are enabled
}

func newView(name string, bounds Rect) View {
	return View{
		Name:         name,
		Bounds:       bounds,
		Visible:      true,
		Interactable: true,
		needsRedraw:  true,
	}
}

// HitTest reports whether (x, y) falls inside the view's hit region.
func (v *View) HitTest(x, y float64) bool {
	if !v.Visible || !v.Interactable {
		return false
	}
	if v.HitShape != nil {
		return v.HitShape.Contains(x, y)
	}
	return v.Bounds.Contains(x, y)
}

// State returns the current interaction state.
func (v *View) State() State { return v.state }

func (v *View) setState(s State) {
	if v.state == s {
		return
	}
	v.state = s
	v.needsRedraw = true
}

// MarkDirty flags the view for redraw.
func (v *View) MarkDirty() { v.needsRedraw = true }

// NeedsRedraw reports whether the view changed since the last ClearRedraw.
func (v *View) NeedsRedraw() bool { return v.needsRedraw }

// ClearRedraw resets the redraw flag. Hosts call it after drawing.
func (v *View) ClearRedraw() { v.needsRedraw = false }

// Label returns the label sub-view, if one was created.
func (v *View) Label() (*Label, bool) {
	return v.label, v.label != nil
}

// setupLabel creates the label once. Later calls only refresh its text.
func (v *View) setupLabel(fontSize float64) {
	if v.label == nil {
		v.label = &Label{Visible: true}
	}
	v.label.Text = v.Name
	v.label.FontSize = fontSize
	v.needsRedraw = true
}
