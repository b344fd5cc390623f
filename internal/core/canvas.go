package core

import "math"

// ImageID is an opaque handle to an image resource. Loading and caching the
// pixels behind it is the platform's job; games only refer to images by id.
type ImageID string

// Canvas is the 2D drawing surface games render into.
// Coordinates are canvas units with the origin at the top-left corner.
type Canvas interface {
	// Size returns the drawing surface dimensions in canvas units.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// Fill paints the whole surface with a flat color.
	Fill(c Color)

	// DrawImage draws the image stretched into dst. Unknown or unloaded
	// images are skipped.
	DrawImage(id ImageID, dst Rect)

	// FillRoundRect paints a filled rectangle with rounded corners.
	FillRoundRect(r Rect, radius float64, c Color)

	// DrawText draws a single line with its left baseline at (x, y).
	DrawText(x, y, size float64, c Color, text string)
}

// Pattern describes how an image looks on a character grid.
// u and v are image-local coordinates in [0, 1). It returns false for
// transparent positions.
type Pattern func(u, v float64) (Cell, bool)

// ScreenCanvas rasterises Canvas calls into a Screen, scaling canvas units
// to character cells.
type ScreenCanvas struct {
	screen   *Screen
	w, h     float64
	patterns map[ImageID]Pattern
}

// NewScreenCanvas creates a canvas of w×h units backed by the given screen.
func NewScreenCanvas(s *Screen, w, h float64, patterns map[ImageID]Pattern) *ScreenCanvas {
	return &ScreenCanvas{
		screen:   s,
		w:        w,
		h:        h,
		patterns: patterns,
	}
}

// Screen returns the backing character buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the logical canvas size.
func (c *ScreenCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear blanks the screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// Fill paints every cell with a colored space.
func (c *ScreenCanvas) Fill(col Color) {
	c.screen.Fill(Cell{Rune: ' ', Color: col})
}

// DrawImage samples the image pattern at the center of every cell inside dst.
func (c *ScreenCanvas) DrawImage(id ImageID, dst Rect) {
	pattern, ok := c.patterns[id]
	if !ok || dst.W <= 0 || dst.H <= 0 {
		return
	}

	x0, x1 := cellSpan(dst.X, dst.Right(), c.scaleX())
	y0, y1 := cellSpan(dst.Y, dst.Bottom(), c.scaleY())
	x0, x1 = Max(x0, 0), Min(x1, c.screen.Width())
	y0, y1 = Max(y0, 0), Min(y1, c.screen.Height())

	for cy := y0; cy < y1; cy++ {
		v := ((float64(cy)+0.5)/c.scaleY() - dst.Y) / dst.H
		for cx := x0; cx < x1; cx++ {
			u := ((float64(cx)+0.5)/c.scaleX() - dst.X) / dst.W
			if cell, visible := pattern(u, v); visible {
				c.screen.SetCell(cx, cy, cell)
			}
		}
	}
}

// FillRoundRect draws the rectangle as a boxed panel of colored spaces.
func (c *ScreenCanvas) FillRoundRect(r Rect, _ float64, col Color) {
	x0, x1 := cellSpan(r.X, r.Right(), c.scaleX())
	y0, y1 := cellSpan(r.Y, r.Bottom(), c.scaleY())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	c.screen.DrawRect(x0, y0, x1-x0, y1-y0, Cell{Rune: ' ', Color: col})
	c.screen.DrawBox(x0, y0, x1-x0, y1-y0, col)
}

// DrawText places the text on the row that holds the middle of the glyphs.
// Characters are not scaled.
func (c *ScreenCanvas) DrawText(x, y, size float64, col Color, text string) {
	row := int(math.Floor((y - size/2) * c.scaleY()))
	column := int(math.Floor(x * c.scaleX()))
	c.screen.DrawText(column, row, text, col)
}

func (c *ScreenCanvas) scaleX() float64 {
	if c.w <= 0 {
		return 1
	}
	return float64(c.screen.Width()) / c.w
}

func (c *ScreenCanvas) scaleY() float64 {
	if c.h <= 0 {
		return 1
	}
	return float64(c.screen.Height()) / c.h
}

// cellSpan returns the half-open range of cells whose centers lie in [a, b).
func cellSpan(a, b, scale float64) (int, int) {
	first := int(math.Ceil(a*scale - 0.5))
	last := int(math.Ceil(b*scale - 0.5))
	return first, last
}
