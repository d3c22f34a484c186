package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHost returns a host with one 100x100 editor at the origin.
func newTestHost() (*Host, *Editor) {
	e := newTestEditor([]Vec2{{0.1, 0.1}, {0.9, 0.9}}, 1)
	return NewHost(e), e
}

func TestHostPressRoutesToEditor(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	assert.Equal(t, StateDown, e.State())
	assert.Equal(t, 3, e.NumPoints())
}

func TestHostPressOutsideIgnored(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(0, 150, 50, true, MouseButtonLeft, 0)
	h.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	h.processPointer(0, 50, 50, false, MouseButtonLeft, 0)

	assert.Equal(t, 2, e.NumPoints(), "a drag entering the editor must not edit it")
}

func TestHostDragLeavesBounds(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(0, 90, 10, true, MouseButtonLeft, 0)
	hit, ok := e.Target()
	require.True(t, ok)
	require.Equal(t, 1, hit)

	h.processPointer(0, 300, -40, true, MouseButtonLeft, 0)
	assertVecNear(t, Vec2{1, 1}, e.Points()[1])

	h.processPointer(0, 300, -40, false, MouseButtonLeft, 0)
	assert.Equal(t, StateIdle, e.State())
	_, ok = e.Target()
	assert.False(t, ok)
}

func TestHostReleaseKeepsPressButton(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(0, 50, 50, true, MouseButtonRight, 0)
	// Button state is not reported on release; the press button is used.
	h.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	assert.Equal(t, StateOver, e.State())
	assert.Equal(t, 3, e.NumPoints())
}

func TestHostRemoveWithModifier(t *testing.T) {
	e := newTestEditor([]Vec2{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.9}}, 1)
	h := NewHost(e)
	h.processPointer(0, 50, 50, true, MouseButtonLeft, ModCtrl)
	assert.Equal(t, 2, e.NumPoints())
}

func TestHostHover(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	assert.Equal(t, StateOver, e.State())

	h.processPointer(0, 150, 50, false, MouseButtonLeft, 0)
	assert.Equal(t, StateIdle, e.State())
}

func TestHostTouchHasNoHover(t *testing.T) {
	h, e := newTestHost()
	h.processPointer(1, 50, 50, false, MouseButtonLeft, 0)
	assert.Equal(t, StateIdle, e.State())

	h.processPointer(1, 50, 50, true, MouseButtonLeft, 0)
	h.processPointer(1, 50, 50, false, MouseButtonLeft, 0)
	assert.Equal(t, StateIdle, e.State())
}

func TestHostTopmostWins(t *testing.T) {
	bottom := newTestEditor(square, 3)
	top := newTestEditor(square, 3)
	h := NewHost(bottom, top)

	h.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	assert.Equal(t, 4, bottom.NumPoints())
	assert.Equal(t, 5, top.NumPoints())
}

func TestHostAddRunsSetup(t *testing.T) {
	e := NewEditor("curve", nil, DefaultConfig())
	h := NewHost()
	h.Add(e)
	_, ok := e.Label()
	assert.True(t, ok)
	assert.Equal(t, "screenshots", h.ScreenshotDir)
}

func TestInjectClick(t *testing.T) {
	h, e := newTestHost()
	h.InjectClick(50, 50)
	require.Len(t, h.injectQueue, 2)

	// Frame 1: press
	require.True(t, h.processInjectedInput(0))
	assert.Equal(t, StateDown, e.State())
	assert.Len(t, h.injectQueue, 1)

	// Frame 2: release
	require.True(t, h.processInjectedInput(0))
	assert.Equal(t, StateOver, e.State())
	assert.Equal(t, 3, e.NumPoints())

	assert.False(t, h.processInjectedInput(0))
}

func TestInjectDrag(t *testing.T) {
	h, e := newTestHost()
	h.InjectDrag(10, 90, 50, 50, 5)
	require.Len(t, h.injectQueue, 5)

	for h.processInjectedInput(0) {
	}
	assert.Equal(t, 2, e.NumPoints())
	assertVecNear(t, Vec2{0.5, 0.5}, e.Points()[0])
	assert.Equal(t, StateOver, e.State())
}

func TestInjectDragMinimumFrames(t *testing.T) {
	h, _ := newTestHost()
	h.InjectDrag(0, 0, 10, 10, 0)
	assert.Len(t, h.injectQueue, 2)
}

func TestInjectModifiersCombine(t *testing.T) {
	e := newTestEditor([]Vec2{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.9}}, 1)
	h := NewHost(e)
	h.InjectPress(50, 50)
	h.processInjectedInput(ModCtrl)
	assert.Equal(t, 2, e.NumPoints())
}

func TestHostWheelRoutesToPressTarget(t *testing.T) {
	h, e := newTestHost()
	before := e.Spline().Knot(1)
	h.processPointer(0, 90, 10, true, MouseButtonLeft, 0)
	hit, ok := e.Target()
	require.True(t, ok)
	require.Equal(t, 1, hit)

	h.processWheel(0, 1, 0)
	assert.InDelta(t, before+knotStep, e.Spline().Knot(1), eps)
}

func TestHostWheelOutsideWidgets(t *testing.T) {
	h, e := newTestHost()
	want := e.Spline().Knot(1)
	h.processPointer(0, 150, 150, false, MouseButtonLeft, 0)
	h.processWheel(0, 1, 0)
	assert.Equal(t, want, e.Spline().Knot(1))
}
