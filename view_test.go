package spline

import "testing"

func TestViewHitTest(t *testing.T) {
	v := newView("v", Rect{0, 0, 10, 10})
	if !v.HitTest(5, 5) {
		t.Error("expected hit inside bounds")
	}
	if v.HitTest(11, 5) {
		t.Error("unexpected hit outside bounds")
	}

	v.HitShape = HitCircle{CenterX: 5, CenterY: 5, Radius: 2}
	if v.HitTest(1, 1) {
		t.Error("hit shape should override bounds")
	}
	if !v.HitTest(6, 6) {
		t.Error("expected hit inside circle")
	}

	v.Interactable = false
	if v.HitTest(5, 5) {
		t.Error("non-interactable view should not be hit")
	}
	v.Interactable = true
	v.Visible = false
	if v.HitTest(5, 5) {
		t.Error("invisible view should not be hit")
	}
}

func TestHitPolygon(t *testing.T) {
	tri := HitPolygon{Points: []Vec2{{0, 0}, {10, 0}, {0, 10}}}
	tests := []struct {
		x, y float64
		want bool
	}{
		{2, 2, true},
		{4, 3, true},
		{8, 8, false},
		{-1, 5, false},
		{5, 11, false},
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0.5, 0.5) {
		t.Error("degenerate polygon should not contain points")
	}
}

func TestViewStateMarksDirty(t *testing.T) {
	v := newView("v", Rect{})
	v.ClearRedraw()

	v.setState(StateIdle)
	if v.NeedsRedraw() {
		t.Error("same state should not mark dirty")
	}
	v.setState(StateOver)
	if !v.NeedsRedraw() {
		t.Error("state change should mark dirty")
	}
	if v.State().String() != "over" {
		t.Errorf("State() = %s, want over", v.State())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{StateIdle: "idle", StateOver: "over", StateDown: "down"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestPointerContextIsTouch(t *testing.T) {
	if (PointerContext{PointerID: 0}).IsTouch() {
		t.Error("pointer 0 is the mouse")
	}
	if !(PointerContext{PointerID: 3}).IsTouch() {
		t.Error("pointer 3 is a touch")
	}
}

var (
	_ Widget       = (*Editor)(nil)
	_ WheelHandler = (*Editor)(nil)
)
