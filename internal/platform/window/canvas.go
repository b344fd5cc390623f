// Package window runs a game in a desktop window with Ebitengine.
package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// canvas adapts an ebiten image to core.Canvas. One canvas is reused for
// every frame; Draw points it at the current screen.
type canvas struct {
	dst    *ebiten.Image
	w, h   float64
	images map[core.ImageID]*ebiten.Image
	font   *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newCanvas(w, h float64, images map[core.ImageID]*ebiten.Image) (*canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	return &canvas{
		w:      w,
		h:      h,
		images: images,
		font:   src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (c *canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *canvas) Clear() {
	c.dst.Clear()
}

func (c *canvas) Fill(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c *canvas) DrawImage(id core.ImageID, dst core.Rect) {
	img, ok := c.images[id]
	if !ok || dst.W <= 0 || dst.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	c.dst.DrawImage(img, op)
}

// FillRoundRect draws a cross of two rectangles with a circle in each corner.
func (c *canvas) FillRoundRect(r core.Rect, radius float64, col core.Color) {
	radius = core.ClampF(radius, 0, min(r.W, r.H)/2)
	clr := col.RGBA()
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(radius)

	vector.DrawFilledRect(c.dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(c.dst, x, y+rad, w, h-2*rad, clr, true)
	if rad == 0 {
		return
	}
	for _, p := range [][2]float32{
		{x + rad, y + rad},
		{x + w - rad, y + rad},
		{x + rad, y + h - rad},
		{x + w - rad, y + h - rad},
	} {
		vector.DrawFilledCircle(c.dst, p[0], p[1], rad, clr, true)
	}
}

// DrawText places the baseline of the line at y.
func (c *canvas) DrawText(x, y, size float64, col core.Color, s string) {
	face := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, s, face, op)
}

func (c *canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.font, Size: size}
	c.faces[size] = f
	return f
}
