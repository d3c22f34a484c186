package spline

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// discSegments is the number of fan triangles used for point markers.
const discSegments = 12

// whitePixelImage is a lazily created 1x1 white image shared by all
// untextured meshes.
var whitePixelImage *ebiten.Image

// ensureWhitePixel returns the shared 1x1 white source image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// meshBuffer accumulates untextured triangles for one DrawTriangles32 call.
// Vertex colors are premultiplied.
type meshBuffer struct {
	verts []ebiten.Vertex
	inds  []uint32
}

func (b *meshBuffer) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

func (b *meshBuffer) empty() bool { return len(b.inds) == 0 }

func (b *meshBuffer) vertex(x, y float64, c Color) ebiten.Vertex {
	a := float32(c.A)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	}
}

// appendCommand converts one render command into triangles. Text, padding and
// fully transparent commands produce nothing.
func (b *meshBuffer) appendCommand(cmd *RenderCommand) {
	if cmd.Color.A <= 0 {
		return
	}
	switch cmd.Type {
	case CommandRect:
		b.appendRect(cmd.Rect, cmd.Color)
	case CommandRectOutline:
		b.appendRectOutline(cmd.Rect, cmd.Size, cmd.Color)
	case CommandPolyline:
		b.appendPolyline(cmd.Points, cmd.Size, cmd.Color)
	case CommandPoint:
		b.appendDisc(cmd.Pos, cmd.Size, cmd.Color)
	case CommandPoints:
		for _, p := range cmd.Points {
			b.appendDisc(p, cmd.Size, cmd.Color)
		}
	}
}

// appendRect appends a filled quad: 4 vertices, 6 indices.
func (b *meshBuffer) appendRect(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	base := uint32(len(b.verts))
	b.verts = append(b.verts,
		b.vertex(r.X, r.Y, c),
		b.vertex(r.X+r.Width, r.Y, c),
		b.vertex(r.X, r.Y+r.Height, c),
		b.vertex(r.X+r.Width, r.Y+r.Height, c),
	)
	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// appendRectOutline appends four edge quads of width w inside r.
func (b *meshBuffer) appendRectOutline(r Rect, w float64, c Color) {
	if w <= 0 {
		return
	}
	w = math.Min(w, math.Min(r.Width, r.Height)/2)
	b.appendRect(Rect{r.X, r.Y, r.Width, w}, c)
	b.appendRect(Rect{r.X, r.Y + r.Height - w, r.Width, w}, c)
	b.appendRect(Rect{r.X, r.Y + w, w, r.Height - 2*w}, c)
	b.appendRect(Rect{r.X + r.Width - w, r.Y + w, w, r.Height - 2*w}, c)
}

// appendPolyline appends a ribbon of the given width following points.
// For N points: 2N vertices, 6(N-1) indices. Inner joints use the averaged
// segment normal, extended to keep the width at the miter (max 2x).
func (b *meshBuffer) appendPolyline(points []Vec2, width float64, c Color) {
	n := len(points)
	if n < 2 || width <= 0 {
		return
	}
	halfW := width / 2
	base := uint32(len(b.verts))

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(points[0], points[1])
		case n - 1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := math.Min(1.0/dot, 2.0)
				nx *= scale
				ny *= scale
			}
		}
		p := points[i]
		b.verts = append(b.verts,
			b.vertex(p.X+nx*halfW, p.Y+ny*halfW, c),
			b.vertex(p.X-nx*halfW, p.Y-ny*halfW, c),
		)
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		v := base + uint32(i*2)
		b.inds = append(b.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}
}

// appendDisc appends a fan-triangulated disc: discSegments+1 vertices with
// the hub first, 3*discSegments indices.
func (b *meshBuffer) appendDisc(center Vec2, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	base := uint32(len(b.verts))
	b.verts = append(b.verts, b.vertex(center.X, center.Y, c))
	for i := 0; i < discSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / discSegments)
		p := center.Add(Vec2{cos, sin}.Scale(radius))
		b.verts = append(b.verts, b.vertex(p.X, p.Y, c))
	}
	for i := 0; i < discSegments; i++ {
		next := (i+1)%discSegments + 1
		b.inds = append(b.inds, base, base+uint32(i+1), base+uint32(next))
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
