// Package ring implements Ring Rush, a reflex/timing game: a needle sweeps
// around a ring and the player must commit while it overlaps a randomly
// placed target wedge. A hit scores, relocates the target and speeds the
// needle up; a miss ends the round.
package ring

import (
	"math"
	"math/rand"

	"ringrush/internal/config"
	"ringrush/internal/core"
	"ringrush/internal/geom"
	"ringrush/internal/physics"
	"ringrush/internal/registry"
)

// Phase is the round's lifecycle state. The transition to PhaseGameOver is
// terminal: there is no in-process restart path, by design.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// Game implements the Ring Rush game.
type Game struct {
	cfg     config.RingConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	// Collision backend and the sensor pair it watches.
	world        *physics.World
	needleSensor *physics.Sensor
	targetSensor *physics.Sensor
	overlap      *overlapTracker

	// Local-space collision outlines, also used by the rasterizer.
	needleMesh geom.Mesh
	targetMesh geom.Mesh

	needleAngle float64 // radians, wraps implicitly via trig
	needleSpeed float64 // radians/second, signed
	targetAngle float64

	score int
	phase Phase
}

// Package-level configuration set by the CLI before game creation
// (same pattern the platform uses for every game).
var configPath string

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("ring", func() registry.Game {
		return New()
	})
}

// New creates a new Ring Rush game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "ring"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ring Rush"
}

// Reset initializes the game: loads configuration, builds the needle and
// target wedge geometry, and registers both as sensor shapes with a fresh
// collision world. Degenerate geometry (bad config) is a fatal startup
// error.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadRing(configPath)
	if err != nil {
		return err
	}
	return g.resetWith(runtime, cfg)
}

// resetWith is Reset with an explicit config, used directly by tests.
func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.RingConfig) error {
	needleMesh, err := geom.AnnularWedge(
		cfg.Needle.InnerRadius, cfg.Needle.OuterRadius,
		cfg.Needle.HalfAngle(), cfg.Needle.Resolution,
	)
	if err != nil {
		return err
	}
	targetMesh, err := geom.AnnularWedge(
		cfg.Target.InnerRadius, cfg.Target.OuterRadius,
		cfg.Target.HalfAngle(), cfg.Target.Resolution,
	)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.phase = PhasePlaying

	g.needleMesh = needleMesh
	g.targetMesh = targetMesh

	// Both wedges start at orientation zero, so the needle begins inside
	// the target and the first commit is a guaranteed hit.
	g.needleAngle = 0
	g.needleSpeed = cfg.Speed.Initial
	g.targetAngle = 0

	g.world = physics.NewWorld()
	g.needleSensor = g.world.AddSensor(needleMesh)
	g.targetSensor = g.world.AddSensor(targetMesh)
	g.overlap = newOverlapTracker(g.needleSensor.ID(), g.targetSensor.ID())
	g.world.OnContact(g.overlap.Handle)

	return nil
}

// Step advances the game by one tick. Fixed per-tick ordering: collision
// event processing, then input, then the rotation update - so a commit
// always sees the overlap state computed earlier in the same tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseGameOver {
		// Terminal: commits no longer have any effect.
		return core.StepResult{State: g.State()}
	}

	g.world.Step()

	if in.Has(core.ActionCommit) {
		g.commit()
	}

	if g.phase == PhasePlaying {
		dt := 1.0 / float64(g.runtime.TickRate)
		g.needleAngle -= g.needleSpeed * dt
		g.needleSensor.SetAngle(g.needleAngle)
	}

	return core.StepResult{State: g.State()}
}

// commit applies the single player action: reverse the needle, then score
// or end the round depending on the stored overlap state.
func (g *Game) commit() {
	g.needleSpeed = -g.needleSpeed

	if !g.overlap.Overlapping() {
		g.phase = PhaseGameOver
		return
	}

	g.score++
	g.relocateTarget()
	g.raiseSpeed()
}

// relocateTarget moves the target zone to a uniformly random orientation.
func (g *Game) relocateTarget() {
	g.targetAngle = g.rng.Float64() * 2 * math.Pi
	g.targetSensor.SetAngle(g.targetAngle)
}

// raiseSpeed increases the needle's angular speed magnitude by the
// configured increment, up to the cap. The sign is preserved.
func (g *Game) raiseSpeed() {
	mag := math.Abs(g.needleSpeed)
	mag = core.ClampF(mag+g.cfg.Speed.Increment, 0, g.cfg.Speed.Max)
	g.needleSpeed = math.Copysign(mag, g.needleSpeed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
	}
}
