package neondash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// Visual elements
const (
	GroundChar     = '═'
	GroundDashChar = '╵'
	GridVChar      = '┊'
	GridHChar      = '┄'
	GridCrossChar  = '┼'
	HorizonChar    = '─'
	SpikeTipChar   = '▲'
	SpikeBodyChar  = '▓'
	BlockChar      = '█'
	PlayerFlat     = '■'
	PlayerTilted   = '◆'
	ParticleHot    = '*'
	ParticleWarm   = '+'
	ParticleCold   = '·'
)

// Title is shown on the menu overlay.
const Title = "N E O N   D A S H"

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, vp config.Viewport) viewport {
	return viewport{
		sx: float64(dst.Width()) / vp.Width,
		sy: float64(dst.Height()) / vp.Height,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// rect returns the cells covered by a world box, at least one cell wide and tall.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Draw paints a snapshot into dst. It reads nothing but its arguments.
func Draw(dst *core.Screen, snap Snapshot, cfg config.NeonConfig) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}
	v := newViewport(dst, cfg.Viewport)
	groundRow := core.Clamp(int(math.Ceil(cfg.Viewport.GroundY()*v.sy)), 0, v.h-1)

	drawGrid(dst, v, snap.BackgroundOffset, cfg.Scroll.GridSize, groundRow)
	drawGround(dst, v, snap.GroundOffset, cfg.Scroll.GroundDash, groundRow)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	if snap.State != StateGameOver {
		drawPlayer(dst, v, snap.Player)
	}
	for _, p := range snap.Particles {
		drawParticle(dst, v, p)
	}

	drawHUD(dst, snap)

	switch snap.State {
	case StateMenu:
		drawCenteredMessage(dst, Title, "Space to start  |  M mute  |  Q quit")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "P resume  |  R restart")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %06d  |  R to try again", snap.Score))
	}
}

// drawGrid renders the retro background grid above the ground.
func drawGrid(dst *core.Screen, v viewport, offset, size float64, groundRow int) {
	step := size * v.sx
	if step < 1 {
		return
	}
	hstep := size * v.sy
	for y := 0; y < groundRow; y++ {
		onLine := hstep >= 1 && math.Mod(float64(y), hstep) < 1
		if onLine {
			dst.DrawHLine(0, y, v.w, GridHChar, core.ColorGrid)
		}
		for x := core.Wrap(offset, size) * v.sx; int(x) < v.w; x += step {
			r := GridVChar
			if onLine {
				r = GridCrossChar
			}
			dst.SetColored(int(x), y, r, core.ColorGrid)
		}
	}
	if horizon := v.h / 2; horizon < groundRow {
		dst.DrawHLine(0, horizon, v.w, HorizonChar, core.ColorMagenta)
	}
}

// drawGround renders the ground line and the scrolling dashes below it.
func drawGround(dst *core.Screen, v viewport, offset, dash float64, groundRow int) {
	dst.DrawHLine(0, groundRow, v.w, GroundChar, core.ColorCyan)
	step := dash * v.sx
	if step < 1 {
		return
	}
	for x := core.Wrap(offset, dash) * v.sx; int(x) < v.w; x += step {
		dst.SetColored(int(x), groundRow+1, GroundDashChar, core.ColorGray)
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	r := v.rect(o.Box())
	if o.Kind == KindBlock {
		dst.DrawRect(r, BlockChar, core.ColorMagenta)
		return
	}
	dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), SpikeBodyChar, core.ColorRed)
	dst.DrawHLine(r.X, r.Y, r.W, SpikeTipChar, core.ColorRed)
}

func drawPlayer(dst *core.Screen, v viewport, p Player) {
	dst.DrawRect(v.rect(p.Box()), playerGlyph(p.Rotation), core.ColorCyan)
}

// playerGlyph picks a flat square near multiples of a right angle and a
// diamond in between.
func playerGlyph(rotation float64) rune {
	a := core.Wrap(rotation, rightAngle)
	if a < rightAngle/4 || a > rightAngle*3/4 {
		return PlayerFlat
	}
	return PlayerTilted
}

func drawParticle(dst *core.Screen, v viewport, p Particle) {
	r := ParticleCold
	switch {
	case p.Life > 0.66:
		r = ParticleHot
	case p.Life > 0.33:
		r = ParticleWarm
	}
	dst.SetColored(v.col(p.X), v.row(p.Y), r, p.Color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" SCORE %06d ", snap.Score), core.ColorCyan)

	sound, color := " ♪ ON ", core.ColorGreen
	if snap.Muted {
		sound, color = " ♪ OFF ", core.ColorGray
	}
	dst.DrawText(dst.Width()-len([]rune(sound))-2, 0, sound, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorMagenta)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorCyan)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}
