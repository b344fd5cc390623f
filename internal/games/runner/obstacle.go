package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Obstacle is the single ground obstacle. It is never destroyed: once it has
// scrolled fully off the left edge it is moved back to a random spot right
// of the canvas.
type Obstacle struct {
	Drawable

	rng        *rand.Rand
	canvasW    float64
	spawnRange float64
}

// NewObstacle creates an obstacle at a random spawn position.
func NewObstacle(cfg config.RunnerConfig, canvasW, canvasH float64, rng *rand.Rand) *Obstacle {
	size := cfg.Obstacle.Size
	o := &Obstacle{
		Drawable: Drawable{
			Image: core.ImageID(cfg.Obstacle.Image),
			Box:   core.NewRect(0, canvasH-size-cfg.Obstacle.GroundMargin, size, size),
		},
		rng:        rng,
		canvasW:    canvasW,
		spawnRange: cfg.Obstacle.SpawnRange,
	}
	o.Respawn()
	return o
}

// SpawnBounds returns the inclusive range Respawn picks x from.
func (o *Obstacle) SpawnBounds() (float64, float64) {
	lo := o.canvasW + o.Box.W
	return lo, lo + o.spawnRange
}

// Advance scrolls the obstacle left and recycles it once fully off-screen.
func (o *Obstacle) Advance(speed float64) {
	o.Box.X -= speed
	if o.Box.X < -o.Box.W {
		o.Respawn()
	}
}

// Respawn moves the obstacle to a whole-unit x picked uniformly from
// SpawnBounds. y never changes.
func (o *Obstacle) Respawn() {
	lo, _ := o.SpawnBounds()
	o.Box.X = math.Round(o.rng.Float64()*o.spawnRange) + lo
}
