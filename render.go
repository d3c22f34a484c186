package spline

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandNone        CommandType = iota // padding; hosts skip it
	CommandRect                           // filled rectangle
	CommandRectOutline                    // rectangle outline, Size is the stroke width
	CommandPolyline                       // open polyline through Points, Size is the stroke width
	CommandPoint                          // filled disc at Pos, Size is the radius
	CommandPoints                         // filled disc at every entry of Points, Size is the radius
	CommandText                           // Text drawn at Pos (top-left), Size is the font size
)

// Layer orders the editor's draw primitives. Commands are emitted in layer
// order, so hosts may draw them as they come.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerBackgroundOutline
	LayerBack
	LayerFill
	LayerFillHighlight
	LayerOutline
	LayerOutlineHighlight
	LayerLabel
)

// RenderCommand is a single draw instruction emitted by Draw.
type RenderCommand struct {
	Type  CommandType
	Layer Layer
	Color Color
	Rect  Rect
	Pos   Vec2

	// Points is a slice header into the emitting widget's buffers; it stays
	// valid until that widget's next Draw.
	Points []Vec2

	Size float64
	Text string
}

// CommandsPerDraw is the number of commands a single Draw emits. Output is
// padded with CommandNone so hosts can batch a constant count.
const CommandsPerDraw = 16

// padCommands pads dst with CommandNone entries until it holds n commands.
func padCommands(dst []RenderCommand, n int) []RenderCommand {
	for len(dst) < n {
		dst = append(dst, RenderCommand{Type: CommandNone})
	}
	return dst
}

// Style holds the editor's colors and sizes.
type Style struct {
	Background        Color
	BackgroundOutline Color
	Back              Color
	Fill              Color
	FillHighlight     Color
	Outline           Color
	OutlineHighlight  Color
	Label             Color

	LineWidth     float64
	OutlineWidth  float64
	MarkerSize    float64
	HighlightSize float64
	LabelGap      float64
}

// DefaultStyle returns the built-in palette.
func DefaultStyle() Style {
	return Style{
		Background:        Color{0, 0, 0, 0.4},
		BackgroundOutline: Color{0, 0, 0, 0.6},
		Back:              Color{1, 1, 1, 0.25},
		Fill:              Color{1, 1, 1, 0.8},
		FillHighlight:     Color{1, 1, 1, 1},
		Outline:           Color{1, 1, 1, 0.4},
		OutlineHighlight:  Color{1, 1, 1, 0.8},
		Label:             Color{1, 1, 1, 0.9},
		LineWidth:         2,
		OutlineWidth:      1,
		MarkerSize:        3,
		HighlightSize:     6,
		LabelGap:          4,
	}
}

// Draw appends the editor's render commands to dst in layer order:
// background, background outline, control polygon, curve and point markers,
// target highlight, outline, hover outline and label. The output is padded
// to exactly CommandsPerDraw entries.
func (e *Editor) Draw(dst []RenderCommand) []RenderCommand {
	if !e.Visible {
		return dst
	}
	start := len(dst)
	st := &e.Style
	r := e.Bounds

	dst = append(dst,
		RenderCommand{Type: CommandRect, Layer: LayerBackground, Color: st.Background, Rect: r},
		RenderCommand{Type: CommandRectOutline, Layer: LayerBackgroundOutline, Color: st.BackgroundOutline, Rect: r, Size: st.OutlineWidth},
	)

	// Control polygon, closed when looping.
	e.polyBuf = e.polyBuf[:0]
	for _, p := range e.points {
		e.polyBuf = append(e.polyBuf, e.ToDisplay(p))
	}
	markers := e.polyBuf
	if e.loop && len(e.polyBuf) > 0 {
		e.polyBuf = append(e.polyBuf, e.polyBuf[0])
		markers = e.polyBuf[:len(e.points)]
	}
	dst = append(dst, RenderCommand{Type: CommandPolyline, Layer: LayerBack, Color: st.Back, Points: e.polyBuf, Size: st.OutlineWidth})

	e.curveBuf = e.ref.spline().Sample(e.curveBuf[:0], e.cfg.Resolution)
	for i, p := range e.curveBuf {
		e.curveBuf[i] = e.ToDisplay(p)
	}
	dst = append(dst, RenderCommand{Type: CommandPolyline, Layer: LayerFill, Color: st.Fill, Points: e.curveBuf, Size: st.LineWidth})
	dst = append(dst, RenderCommand{Type: CommandPoints, Layer: LayerFill, Color: st.Fill, Points: markers, Size: st.MarkerSize})

	if i, ok := e.Target(); ok {
		size := e.pulse.size
		if e.pulse.tween == nil {
			size = st.HighlightSize
		}
		dst = append(dst, RenderCommand{Type: CommandPoint, Layer: LayerFillHighlight, Color: st.FillHighlight, Pos: markers[i], Size: size})
	} else {
		dst = append(dst, RenderCommand{Type: CommandPoint, Layer: LayerFillHighlight, Color: ColorTransparent})
	}

	highlight := ColorTransparent
	if e.state != StateIdle {
		highlight = st.OutlineHighlight
	}
	dst = append(dst,
		RenderCommand{Type: CommandRectOutline, Layer: LayerOutline, Color: st.Outline, Rect: r, Size: st.OutlineWidth},
		RenderCommand{Type: CommandRectOutline, Layer: LayerOutlineHighlight, Color: highlight, Rect: r, Size: st.OutlineWidth},
	)

	if lbl, ok := e.Label(); ok && lbl.Visible && e.cfg.Label {
		dst = append(dst, RenderCommand{
			Type:  CommandText,
			Layer: LayerLabel,
			Color: st.Label,
			Pos:   Vec2{r.X, r.Y - lbl.FontSize - st.LabelGap},
			Text:  lbl.Text,
			Size:  lbl.FontSize,
		})
	}

	return padCommands(dst, start+CommandsPerDraw)
}
