package ring

import (
	"fmt"

	"ringrush/internal/core"
	"ringrush/internal/geom"
)

// Visual characters for rendering.
const (
	NeedleChar = '█'
	TargetChar = '▒'
	RingChar   = '·'
)

const hudHeight = 2

// Render rasterizes the ring band, target zone and needle into the screen
// buffer. Every cell below the HUD is sampled back into world space; cells
// inside the needle or target meshes use the mesh data itself, the
// background ring band is a plain radius check (it is visual-only and has
// no collision outline).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	w, h := dst.Width(), dst.Height()
	if w < 24 || h < hudHeight+10 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Fit the largest radius into the playfield. Terminal cells are about
	// twice as tall as they are wide, so the x scale is doubled to keep
	// the ring round.
	maxR := g.cfg.Needle.OuterRadius
	cx := w / 2
	cy := hudHeight + (h-hudHeight)/2
	scaleY := (float64(h-hudHeight)/2 - 1) / maxR
	scaleX := 2 * scaleY

	needle := g.needleMesh.Rotated(g.needleAngle)
	target := g.targetMesh.Rotated(g.targetAngle)

	for y := hudHeight; y < h; y++ {
		for x := 0; x < w; x++ {
			p := geom.Vec2{
				X: float64(x-cx) / scaleX,
				Y: float64(cy-y) / scaleY,
			}
			switch {
			case needle.Contains(p):
				dst.SetCell(x, y, NeedleChar, core.ColorBrightGreen)
			case target.Contains(p):
				dst.SetCell(x, y, TargetChar, core.ColorBrightRed)
			case g.inRingBand(p):
				dst.SetCell(x, y, RingChar, core.ColorGray)
			}
		}
	}

	if g.phase == PhaseGameOver {
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// inRingBand reports whether p lies in the visual ring band.
func (g *Game) inRingBand(p geom.Vec2) bool {
	r := p.Len()
	return r >= g.cfg.Ring.InnerRadius && r <= g.cfg.Ring.OuterRadius
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Ring Rush | Score: %d", g.score)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
