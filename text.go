package spline

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType label rendering. Faces are
// created per size on demand and cached.
type TTFFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data.
func LoadTTFFont(ttfData []byte) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("spline: failed to parse TTF data: %w", err)
	}
	return &TTFFont{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultFont loads the Go Regular font.
func DefaultFont() (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF)
}

// Face returns the face for the given size.
func (f *TTFFont) Face(size float64) *text.GoTextFace {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// drawText renders a CommandText with its top-left corner at cmd.Pos.
func drawText(target *ebiten.Image, f *TTFFont, cmd *RenderCommand) {
	if f == nil || cmd.Text == "" || cmd.Color.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
	op.ColorScale.ScaleWithColor(cmd.Color.toRGBA())
	text.Draw(target, cmd.Text, f.Face(cmd.Size), op)
}
