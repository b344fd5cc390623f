package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// Drawable is the shape shared by everything the runner draws:
// an image handle and the box it occupies on the canvas.
type Drawable struct {
	Image core.ImageID
	Box   core.Rect
}

// Draw renders the image into its box.
func (d Drawable) Draw(dst core.Canvas) {
	dst.DrawImage(d.Image, d.Box)
}
