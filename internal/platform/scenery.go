package platform

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Sprite bitmaps. '#' is solid, anything else is transparent.
var (
	dinoBitmap = []string{
		"......####",
		"......#.##",
		"......####",
		"#....###..",
		"##..######",
		"#########.",
		".######...",
		"..##.##...",
	}
	cactusBitmap = []string{
		"..##..",
		"#.##..",
		"#.##.#",
		"####.#",
		"..####",
		"..##..",
	}
)

// bitmapPattern samples a bitmap stretched over the whole image.
func bitmapPattern(rows []string, cell core.Cell) core.Pattern {
	h := len(rows)
	w := len(rows[0])
	return func(u, v float64) (core.Cell, bool) {
		x := core.Clamp(int(u*float64(w)), 0, w-1)
		y := core.Clamp(int(v*float64(h)), 0, h-1)
		if rows[y][x] != '#' {
			return core.Cell{}, false
		}
		return cell, true
	}
}

// frac returns the fractional part of a non-negative value.
func frac(x float64) float64 {
	return x - math.Floor(x)
}

// Background layers are periodic in u so the two copies of a scrolling
// layer join without a seam.

func mountainsPattern(u, v float64) (core.Cell, bool) {
	peak := 1 - math.Abs(frac(u*3)*2-1)
	top := 1 - 0.9*peak
	switch {
	case v < top:
		return core.Cell{}, false
	case v < top+0.08 && peak > 0.7:
		return core.Cell{Rune: '▲', Color: core.ColorStone}, true
	default:
		return core.Cell{Rune: ' ', Color: core.ColorStone}, true
	}
}

func hillsPattern(u, v float64) (core.Cell, bool) {
	top := 0.6 - 0.5*math.Sin(math.Pi*frac(u*5))
	if v < top {
		return core.Cell{}, false
	}
	return core.Cell{Rune: ' ', Color: core.ColorForest}, true
}

func bushesPattern(u, v float64) (core.Cell, bool) {
	top := 0.75 - 0.35*math.Abs(math.Sin(2*math.Pi*u*8))
	if v < top {
		return core.Cell{}, false
	}
	return core.Cell{Rune: '░', Color: core.ColorGreen}, true
}

func groundPattern(u, v float64) (core.Cell, bool) {
	if v < 0.2 {
		return core.Cell{Rune: '▀', Color: core.ColorGreen}, true
	}
	if frac(u*40+v*3) < 0.15 {
		return core.Cell{Rune: '.', Color: core.ColorBrown}, true
	}
	return core.Cell{Rune: ' ', Color: core.ColorBrown}, true
}

// Patterns returns the glyph patterns for every image named in cfg.
// The last layer is drawn as ground and the rest get scenery by depth,
// so renamed images still render.
func Patterns(cfg config.RunnerConfig) map[core.ImageID]core.Pattern {
	patterns := map[core.ImageID]core.Pattern{
		core.ImageID(cfg.Player.Image):   bitmapPattern(dinoBitmap, core.Cell{Rune: '█', Color: core.ColorOrange}),
		core.ImageID(cfg.Obstacle.Image): bitmapPattern(cactusBitmap, core.Cell{Rune: '█', Color: core.ColorRed}),
	}

	scenery := []core.Pattern{mountainsPattern, hillsPattern, bushesPattern}
	n := len(cfg.Layers)
	for i, layer := range cfg.Layers {
		id := core.ImageID(layer.Image)
		if _, taken := patterns[id]; taken {
			continue
		}
		if i == n-1 {
			patterns[id] = groundPattern
			continue
		}
		// Nearest scenery goes to the layer just behind the ground
		depth := n - 2 - i
		patterns[id] = scenery[len(scenery)-1-core.Min(depth, len(scenery)-1)]
	}
	return patterns
}

// Rasterize samples p at the center of every pixel of a w×h image.
// Transparent positions stay transparent. colorOf maps palette entries to
// pixel colors and may be nil to use core.Color.RGBA.
func Rasterize(p core.Pattern, w, h int, colorOf func(core.Color) color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, core.Max(w, 1), core.Max(h, 1)))
	if colorOf == nil {
		colorOf = func(c core.Color) color.Color { return c.RGBA() }
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		v := (float64(y) + 0.5) / float64(b.Dy())
		for x := b.Min.X; x < b.Max.X; x++ {
			u := (float64(x) + 0.5) / float64(b.Dx())
			if cell, ok := p(u, v); ok {
				img.Set(x, y, colorOf(cell.Color))
			}
		}
	}
	return img
}
