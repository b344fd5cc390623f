package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Layer is one horizontally tiled background strip.
// Its x stays in (-canvasWidth, 0]: after scrolling a full canvas width it
// wraps back to 0, and the image is drawn twice so the seam never shows.
type Layer struct {
	Drawable
	Factor float64 // Fraction of the global speed this layer scrolls at
}

// NewLayer creates a layer spanning the full canvas width.
func NewLayer(lc config.LayerConfig, canvasW float64) Layer {
	return Layer{
		Drawable: Drawable{
			Image: core.ImageID(lc.Image),
			Box:   core.NewRect(0, lc.Y, canvasW, lc.Height),
		},
		Factor: lc.Factor,
	}
}

// Update scrolls the layer left by speed*Factor and wraps it.
func (l *Layer) Update(speed float64) {
	l.Box.X -= speed * l.Factor
	if l.Box.X <= -l.Box.W {
		l.Box.X = 0
	}
}

// Draw renders the live copy and the copy one canvas width to its right.
func (l Layer) Draw(dst core.Canvas) {
	dst.DrawImage(l.Image, l.Box)
	dst.DrawImage(l.Image, l.Box.Translate(l.Box.W, 0))
}

// Background is the ordered stack of parallax layers, back to front.
type Background []Layer

// NewBackground builds the layers from configuration.
func NewBackground(layers []config.LayerConfig, canvasW float64) Background {
	bg := make(Background, 0, len(layers))
	for _, lc := range layers {
		bg = append(bg, NewLayer(lc, canvasW))
	}
	return bg
}

// Update scrolls every layer.
func (b Background) Update(speed float64) {
	for i := range b {
		b[i].Update(speed)
	}
}

// Draw renders the layers back to front.
func (b Background) Draw(dst core.Canvas) {
	for _, l := range b {
		l.Draw(dst)
	}
}
