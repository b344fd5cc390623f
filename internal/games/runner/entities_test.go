package runner

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestLayerStaysWithinOneCanvasWidth(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	bg := NewBackground(cfg.Layers, 500)

	for frame := 0; frame < 2000; frame++ {
		bg.Update(cfg.Physics.GameSpeed)
		for i, l := range bg {
			if l.Box.X <= -500 || l.Box.X > 500 {
				t.Fatalf("frame %d: layer %d x = %v, outside (-500, 500]", frame, i, l.Box.X)
			}
		}
	}
}

func TestLayerWrapsAtFullWidth(t *testing.T) {
	l := NewLayer(config.LayerConfig{Image: "ground", Y: 252, Height: 48, Factor: 1}, 500)

	for i := 0; i < 99; i++ {
		l.Update(5)
	}
	if l.Box.X != -495 {
		t.Fatalf("x after 99 frames = %v, expected -495", l.Box.X)
	}

	// Reaching exactly -width wraps back to 0
	l.Update(5)
	if l.Box.X != 0 {
		t.Errorf("x after wrap = %v, expected 0", l.Box.X)
	}
}

func TestLayerScrollsByFactor(t *testing.T) {
	far := NewLayer(config.LayerConfig{Image: "layer3", Y: 30, Height: 120, Factor: 0.2}, 500)
	far.Update(5)
	if far.Box.X != -1 {
		t.Errorf("far layer x = %v, expected -1", far.Box.X)
	}
}

func TestLayerDrawsTwoCopies(t *testing.T) {
	l := NewLayer(config.LayerConfig{Image: "layer1", Y: 180, Height: 100, Factor: 0.8}, 500)
	l.Box.X = -120

	rec := &recorder{}
	l.Draw(rec)

	images := rec.images()
	if len(images) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(images))
	}
	if images[0].rect.X != -120 || images[1].rect.X != 380 {
		t.Errorf("copies drawn at %v and %v, expected -120 and 380", images[0].rect.X, images[1].rect.X)
	}
}

func TestJumpArcIsClosed(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)
	groundY := cfg.Player.GroundY
	apex := groundY - cfg.Physics.JumpHeight

	p.StartJump()
	if p.Phase != Ascending {
		t.Fatalf("phase after StartJump = %v, expected ascending", p.Phase)
	}

	frames := 0
	minY := groundY
	for p.Airborne() {
		p.Advance()
		frames++
		if p.Box.Y < apex || p.Box.Y > groundY {
			t.Fatalf("frame %d: y = %v outside [%v, %v]", frames, p.Box.Y, apex, groundY)
		}
		minY = math.Min(minY, p.Box.Y)
		if frames > 1000 {
			t.Fatal("jump never landed")
		}
	}

	if p.Box.Y != groundY {
		t.Errorf("landed at y = %v, expected %v", p.Box.Y, groundY)
	}
	if minY != apex {
		t.Errorf("highest point = %v, expected apex %v", minY, apex)
	}
	// 16 frames up at 8 per frame, 24 frames down at 5 per frame
	if frames != 40 {
		t.Errorf("jump took %d frames, expected 40", frames)
	}
}

func TestPlayerLandsOnTouchingGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)
	p.Phase = Descending
	p.Box.Y = cfg.Player.GroundY - cfg.Physics.Gravity

	p.Advance()
	if p.Phase != Grounded || p.Box.Y != cfg.Player.GroundY {
		t.Errorf("after touching ground: phase = %v, y = %v", p.Phase, p.Box.Y)
	}
}

func TestJumpPressedMidAirIsIgnored(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.StartJump()
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	y := p.Box.Y

	p.StartJump()
	if p.Phase != Ascending || p.Box.Y != y {
		t.Fatalf("re-arming while ascending changed state: %v y=%v", p.Phase, p.Box.Y)
	}

	for p.Phase == Ascending {
		p.Advance()
	}
	p.StartJump()
	if p.Phase != Descending {
		t.Errorf("re-arming while descending restarted the arc: %v", p.Phase)
	}
}

func TestPlayerCollidesWith(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name      string
		playerY   float64
		obstacleX float64
		want      bool
	}{
		// Player span [40, 100] after the 20 unit inset; obstacle [60, 100]
		{"overlap on the ground", 190, 60, true},
		{"obstacle touches inset right edge", 190, 100, false},
		{"obstacle touches inset left edge", 190, 0, false},
		{"obstacle inside the forgiving margin", 190, 105, false},
		{"just inside the left margin", 190, 1, true},
		{"feet above the obstacle", 150, 60, false},
		{"feet one unit into the obstacle", 156, 60, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.Box.Y = tc.playerY
			o := NewObstacle(cfg, 500, 300, rng)
			o.Box.X = tc.obstacleX

			if got := p.CollidesWith(o); got != tc.want {
				t.Errorf("CollidesWith() = %v, expected %v (player %+v, obstacle %+v)", got, tc.want, p.Box, o.Box)
			}
		})
	}
}

func TestPlayerResetIsIdempotent(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)
	p.StartJump()
	for i := 0; i < 10; i++ {
		p.Advance()
	}

	p.Reset()
	first := p.Box
	p.Reset()

	if p.Box != first {
		t.Errorf("second Reset moved the player: %+v vs %+v", p.Box, first)
	}
	if p.Box.X != cfg.Player.X || p.Box.Y != cfg.Player.GroundY || p.Phase != Grounded {
		t.Errorf("Reset() = %+v %v, expected spawn on the ground", p.Box, p.Phase)
	}
}

func TestObstacleSpawnsRightOfCanvas(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	o := NewObstacle(cfg, 500, 300, rand.New(rand.NewSource(7)))

	if o.Box.Y != 255 {
		t.Errorf("obstacle y = %v, expected 255", o.Box.Y)
	}
	lo, hi := o.SpawnBounds()
	if lo != 540 || hi != 1040 {
		t.Errorf("SpawnBounds() = [%v, %v], expected [540, 1040]", lo, hi)
	}

	for i := 0; i < 500; i++ {
		o.Respawn()
		if o.Box.X < lo || o.Box.X > hi {
			t.Fatalf("respawn %d: x = %v outside [%v, %v]", i, o.Box.X, lo, hi)
		}
		if o.Box.X != math.Trunc(o.Box.X) {
			t.Fatalf("respawn %d: x = %v is not a whole unit", i, o.Box.X)
		}
		if o.Box.Y != 255 {
			t.Fatalf("respawn changed y to %v", o.Box.Y)
		}
	}
}

func TestObstacleRecyclesOnTheSameUpdate(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	o := NewObstacle(cfg, 500, 300, rand.New(rand.NewSource(3)))

	o.Box.X = -38
	o.Advance(5) // -43 < -40
	if o.Box.X < 540 {
		t.Errorf("obstacle not recycled, x = %v", o.Box.X)
	}

	o.Box.X = -35
	o.Advance(5) // exactly -40 stays
	if o.Box.X != -40 {
		t.Errorf("x = %v, expected -40 (not yet fully off-screen)", o.Box.X)
	}
}

func TestScoreTicker(t *testing.T) {
	tk := NewScoreTicker(100 * time.Millisecond)

	for i := 0; i < 4; i++ {
		if n := tk.Advance(20 * time.Millisecond); n != 0 {
			t.Fatalf("tick after %d frames", i+1)
		}
	}
	if n := tk.Advance(20 * time.Millisecond); n != 1 {
		t.Errorf("5th 20ms frame fired %d ticks, expected 1", n)
	}

	if n := tk.Advance(250 * time.Millisecond); n != 2 {
		t.Errorf("250ms fired %d ticks, expected 2", n)
	}
	if n := tk.Advance(50 * time.Millisecond); n != 1 {
		t.Errorf("leftover 50ms should complete a tick, got %d", n)
	}
	if n := tk.Advance(0); n != 0 {
		t.Errorf("zero duration fired %d ticks", n)
	}

	fallback := NewScoreTicker(0)
	if n := fallback.Advance(99 * time.Millisecond); n != 0 {
		t.Errorf("fallback ticker fired %d ticks before 100ms", n)
	}
	if n := fallback.Advance(time.Millisecond); n != 1 {
		t.Error("non-positive interval should fall back to 100ms")
	}
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

type op struct {
	kind  string
	id    core.ImageID
	rect  core.Rect
	color core.Color
	text  string
}

func (r *recorder) Size() (float64, float64) { return 500, 300 }
func (r *recorder) Clear()                    { r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recorder) Fill(c core.Color)         { r.ops = append(r.ops, op{kind: "fill", color: c}) }

func (r *recorder) DrawImage(id core.ImageID, dst core.Rect) {
	r.ops = append(r.ops, op{kind: "image", id: id, rect: dst})
}

func (r *recorder) FillRoundRect(rect core.Rect, _ float64, c core.Color) {
	r.ops = append(r.ops, op{kind: "panel", rect: rect, color: c})
}

func (r *recorder) DrawText(x, y, _ float64, c core.Color, text string) {
	r.ops = append(r.ops, op{kind: "text", rect: core.NewRect(x, y, 0, 0), color: c, text: text})
}

func (r *recorder) images() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == "image" {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func (r *recorder) drew(id core.ImageID) bool {
	for _, o := range r.images() {
		if o.id == id {
			return true
		}
	}
	return false
}
