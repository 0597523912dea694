package ring

// Snapshot contains the complete observable state of a round.
// Angles and speed are scaled by 1000 to integers for stable comparison.
type Snapshot struct {
	Tick        uint64
	Score       int
	NeedleAngle int // radians * 1000
	NeedleSpeed int // radians/sec * 1000
	TargetAngle int // radians * 1000
	Overlapping bool
	GameOver    bool
}

// Snapshot returns the current state for deterministic testing.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		NeedleAngle: int(g.needleAngle * 1000),
		NeedleSpeed: int(g.needleSpeed * 1000),
		TargetAngle: int(g.targetAngle * 1000),
		Overlapping: g.overlap.Overlapping(),
		GameOver:    g.phase == PhaseGameOver,
	}
}
