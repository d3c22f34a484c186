// Package spline provides an interactive B-spline editor widget.
//
// An [Editor] owns an ordered list of control points in value space and
// keeps a derived [Spline] in sync with them. Pointer input picks, adds,
// drags and removes control points; properties such as the degree, the loop
// flag and the knot vector kind can be changed from code. The editor does not
// draw by itself: [Editor.Draw] appends a flat list of [RenderCommand]s that a
// host turns into pixels.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an [Ebitengine]
// window and drives one or more editors:
//
//	ed := spline.NewEditor("curve", nil, spline.DefaultConfig())
//	ed.OnChange = func(s *spline.Spline) { fmt.Println(s.Points()) }
//	spline.Run(spline.NewHost(ed), spline.RunConfig{
//		Title: "Spline", Width: 640, Height: 480,
//	})
//
// For full control, embed a [Host] in your own [ebiten.Game], or implement a
// host of your own against the [Widget] interface. The term subpackage is
// such a host for terminals.
//
// # Gestures
//
// A press near an existing control point picks it and drags it until
// release. A press anywhere else appends a new point. With the secondary
// button or Ctrl held the picked point is removed instead, unless that would
// leave fewer than degree+1 points. With Shift held (or [Config.Sticky]
// set) samples snap to [Config.StickyStep]. Turning the wheel while a point
// is held moves its knot. [Config.Trigger] selects which of press, drag and
// release notify OnChange.
//
// # Value space
//
// Control points live in value space, bounded by [Config.Min] and
// [Config.Max]. [Editor.ToDisplay] and [Editor.FromDisplay] map between
// value space and the editor's hit rectangle; Min.Y maps to the bottom edge
// unless [Config.YDown] is set.
// [Editor.Save] and [Editor.Load] persist points normalized to the range, so
// a saved curve can be loaded into an editor with a different range.
//
// # Ownership
//
// By default the editor owns its spline and [Editor.Spline] returns copies.
// [Editor.SetSplineReference] hands it a spline the caller keeps; every
// change is then written into that spline in place.
//
// # Tracing
//
// Diagnostic output goes through the schuko tracer selected by the key
// "spline".
//
// [Ebitengine]: https://ebitengine.org
package spline
