package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// JumpPhase is the vertical state of the player.
type JumpPhase int

const (
	Grounded JumpPhase = iota
	Ascending
	Descending
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Player is the runner. It only moves vertically.
//
// The jump arc is triangular: it rises by JumpSpeed each frame until it
// passes the apex (groundY - JumpHeight), then falls by Gravity each frame
// until it reaches groundY. y is clamped to [apex, groundY] so the arc always
// ends exactly on the ground.
type Player struct {
	Drawable
	Phase JumpPhase

	spawnX    float64
	groundY   float64
	inset     float64
	jumpSpeed float64
	gravity   float64
	apex      float64
}

// NewPlayer creates a grounded player at its spawn position.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		Drawable: Drawable{
			Image: core.ImageID(cfg.Player.Image),
			Box:   core.NewRect(cfg.Player.X, cfg.Player.GroundY, cfg.Player.Size, cfg.Player.Size),
		},
		spawnX:    cfg.Player.X,
		groundY:   cfg.Player.GroundY,
		inset:     cfg.Player.HitboxInset,
		jumpSpeed: cfg.Physics.JumpSpeed,
		gravity:   cfg.Physics.Gravity,
		apex:      cfg.Player.GroundY - cfg.Physics.JumpHeight,
	}
	return p
}

// Airborne reports whether a jump is in progress.
func (p *Player) Airborne() bool {
	return p.Phase != Grounded
}

// StartJump arms a jump. Pressing jump while airborne does nothing.
func (p *Player) StartJump() {
	if p.Phase == Grounded {
		p.Phase = Ascending
	}
}

// Advance moves the player one frame along the jump arc.
func (p *Player) Advance() {
	switch p.Phase {
	case Ascending:
		y := p.Box.Y - p.jumpSpeed
		if y < p.apex {
			p.Phase = Descending
		}
		p.Box.Y = core.ClampF(y, p.apex, p.groundY)
	case Descending:
		y := p.Box.Y + p.gravity
		if y >= p.groundY {
			p.Phase = Grounded
		}
		p.Box.Y = core.ClampF(y, p.apex, p.groundY)
	}
}

// Hitbox returns the player box narrowed by the hitbox inset.
func (p *Player) Hitbox() core.Rect {
	return p.Box.Inset(p.inset)
}

// CollidesWith reports whether the inset hitbox overlaps the obstacle
// horizontally while the player's feet are below the obstacle's top.
// There is no upper bound: obstacles are assumed to stand on the ground.
func (p *Player) CollidesWith(o *Obstacle) bool {
	hb := p.Hitbox()
	return hb.X < o.Box.Right() && hb.Right() > o.Box.X && p.Box.Bottom() > o.Box.Y
}

// Reset returns the player to the spawn position on the ground.
func (p *Player) Reset() {
	p.Box.X = p.spawnX
	p.Box.Y = p.groundY
	p.Phase = Grounded
}
