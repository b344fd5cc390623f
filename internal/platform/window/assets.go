package window

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform"
)

// placeholderColors gives generated images a softer palette than the flat
// canvas colors.
var placeholderColors = map[core.Color]color.RGBA{
	core.ColorStone:  colornames.Slategray,
	core.ColorForest: colornames.Seagreen,
	core.ColorGreen:  colornames.Olivedrab,
	core.ColorBrown:  colornames.Saddlebrown,
	core.ColorOrange: colornames.Darkorange,
	core.ColorRed:    colornames.Crimson,
}

func placeholderColor(c core.Color) color.Color {
	if v, ok := placeholderColors[c]; ok {
		return v
	}
	return c.RGBA()
}

// assets loads and caches the images a config refers to.
type assets struct {
	dir    string
	width  int // Canvas width layers are stretched to
	logger *log.Logger
	images map[core.ImageID]*ebiten.Image
}

func newAssets(dir string, width int, logger *log.Logger) *assets {
	return &assets{
		dir:    dir,
		width:  width,
		logger: logger,
		images: make(map[core.ImageID]*ebiten.Image),
	}
}

// load makes sure every image named in cfg is available. Images already
// loaded are kept so a running session can finish with its old ones.
func (a *assets) load(cfg config.RunnerConfig) {
	sizes := imageSizes(cfg, a.width)
	patterns := platform.Patterns(cfg)

	for id, size := range sizes {
		if _, ok := a.images[id]; ok {
			continue
		}
		if img := a.fromFile(id); img != nil {
			a.images[id] = img
			continue
		}
		a.images[id] = ebiten.NewImageFromImage(platform.Rasterize(patterns[id], size[0], size[1], placeholderColor))
	}
}

// fromFile loads <dir>/<id>.png. A missing file is not an error.
func (a *assets) fromFile(id core.ImageID) *ebiten.Image {
	if a.dir == "" {
		return nil
	}
	path := filepath.Join(a.dir, string(id)+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("image load failed, using placeholder", "path", path, "err", err)
		}
		return nil
	}
	a.logger.Debug("image loaded", "id", id, "path", path)
	return img
}

// imageSizes returns the pixel size each image is drawn at on a canvas
// canvasW units wide.
func imageSizes(cfg config.RunnerConfig, canvasW int) map[core.ImageID][2]int {
	sizes := map[core.ImageID][2]int{
		core.ImageID(cfg.Player.Image):   {int(cfg.Player.Size), int(cfg.Player.Size)},
		core.ImageID(cfg.Obstacle.Image): {int(cfg.Obstacle.Size), int(cfg.Obstacle.Size)},
	}
	for _, l := range cfg.Layers {
		id := core.ImageID(l.Image)
		if _, ok := sizes[id]; !ok {
			sizes[id] = [2]int{canvasW, int(l.Height)}
		}
	}
	return sizes
}

// assetsDirExists reports whether dir names an existing directory.
func assetsDirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
