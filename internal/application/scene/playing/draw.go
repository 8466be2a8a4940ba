package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/girders/internal/application/state"
	"github.com/younwookim/girders/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGirder     = color.RGBA{200, 60, 90, 255}
	colorRivet      = color.RGBA{250, 200, 120, 255}
	colorLadder     = color.RGBA{90, 200, 220, 255}
	colorFloor      = color.RGBA{80, 80, 100, 255}
	colorAntagonist = color.RGBA{150, 90, 40, 255}
	colorBarrel     = color.RGBA{180, 110, 50, 255}
	colorBarrelBand = color.RGBA{90, 50, 20, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorClimbing   = color.RGBA{100, 160, 220, 255}
	colorHitFlash   = color.RGBA{120, 0, 0, 90}

	colorDebugAABB     = color.RGBA{255, 255, 0, 160}
	colorDebugEndpoint = color.RGBA{255, 80, 80, 255}
	colorDebugGuide    = color.RGBA{120, 255, 120, 140}
	colorDebugFallback = color.RGBA{255, 0, 255, 200}
	colorDebugHover    = color.RGBA{0, 220, 255, 255}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	p.drawFloor(screen)
	p.drawPlatforms(screen)
	p.drawLadders(screen)
	p.drawAntagonist(screen)
	p.drawBarrels(screen)
	p.drawPlayer(screen)

	if p.debug {
		p.drawDebug(screen)
	}

	if p.hitFlash > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorHitFlash)
	}

	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawFloor(screen *ebiten.Image) {
	field := p.session.Level.Field
	if !field.HasFloor() {
		return
	}
	vector.DrawFilledRect(screen, 0, float32(field.FloorY), float32(field.Width),
		float32(field.Height-field.FloorY), colorFloor, false)
}

// drawPlatforms draws each girder as a thick line under its surface with
// rivets along it
func (p *Playing) drawPlatforms(screen *ebiten.Image) {
	for _, pl := range p.session.Level.Platforms {
		half := pl.Thickness / 2
		start, end := pl.Start(), pl.End()
		vector.StrokeLine(screen,
			float32(start.X), float32(start.Y+half),
			float32(end.X), float32(end.Y+half),
			float32(pl.Thickness), colorGirder, true)

		for x := pl.X + entity.PlatformRivetSpacing/2; x < pl.EndX(); x += entity.PlatformRivetSpacing {
			y := pl.SurfaceYAt(x) + half
			vector.DrawFilledCircle(screen, float32(x), float32(y), 1.5, colorRivet, true)
		}
	}
}

func (p *Playing) drawLadders(screen *ebiten.Image) {
	for _, l := range p.session.Level.Ladders {
		left, right := float32(l.X), float32(l.X+l.Width)
		top, bottom := float32(l.Y), float32(l.Bottom())
		vector.StrokeLine(screen, left, top, left, bottom, 2, colorLadder, false)
		vector.StrokeLine(screen, right, top, right, bottom, 2, colorLadder, false)
		for _, y := range l.Rungs() {
			vector.StrokeLine(screen, left, float32(y), right, float32(y), 1, colorLadder, false)
		}
	}
}

func (p *Playing) drawAntagonist(screen *ebiten.Image) {
	a := p.session.Level.Antagonist
	b := a.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorAntagonist, false)

	// Arms alternate up and down with the idle animation
	armY := b.Y + b.H/3
	if a.AnimationFrame() == 1 {
		armY = b.Y + 4
	}
	vector.StrokeLine(screen, float32(b.X), float32(b.Y+b.H/2), float32(b.X-8), float32(armY), 4, colorAntagonist, false)
	vector.StrokeLine(screen, float32(b.Right()), float32(b.Y+b.H/2), float32(b.Right()+8), float32(armY), 4, colorAntagonist, false)
}

// drawBarrels draws each barrel as a disc with a spoke showing its rotation
func (p *Playing) drawBarrels(screen *ebiten.Image) {
	for _, b := range p.session.Level.Barrels {
		if !b.Active {
			continue
		}
		r := b.Width / 2
		cx, cy := b.CenterX(), b.Y+b.Height/2
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), colorBarrel, true)

		dx, dy := math.Cos(b.Rotation)*r, math.Sin(b.Rotation)*r
		vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 2, colorBarrelBand, true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.session.Player
	c := colorPlayer
	if pl.IsClimbing() {
		c = colorClimbing
	}
	ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.Width, pl.Height, c)

	// Eye on the facing side
	eyeX := pl.X + pl.Width*0.25
	if pl.FacingRight {
		eyeX = pl.X + pl.Width*0.75
	}
	vector.DrawFilledCircle(screen, float32(eyeX), float32(pl.Y+pl.Height*0.3), 2, color.White, false)
}

// drawDebug draws bounding boxes, platform endpoints and numbers, and guides
// from each platform's far end to the next platform's near end
func (p *Playing) drawDebug(screen *ebiten.Image) {
	level := p.session.Level

	for i, pl := range level.Platforms {
		b := pl.Bounds()
		c := colorDebugAABB
		if level.Placements[i].Fallback {
			c = colorDebugFallback
		}
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
		if i == p.hover {
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorDebugHover, false)
		}

		start, end := pl.Start(), pl.End()
		vector.DrawFilledCircle(screen, float32(start.X), float32(start.Y), 3, colorDebugEndpoint, false)
		vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), 3, colorDebugEndpoint, false)

		label := fmt.Sprintf("%d", i)
		if level.Placements[i].Attempts > 1 {
			label = fmt.Sprintf("%d (x%d)", i, level.Placements[i].Attempts)
		}
		mid := pl.X + pl.Width/2
		ebitenutil.DebugPrintAt(screen, label, int(mid), int(pl.SurfaceYAt(mid))-18)

		if i+1 < len(level.Platforms) {
			next := level.Platforms[i+1]
			vector.StrokeLine(screen, float32(end.X), float32(end.Y),
				float32(next.Start().X), float32(next.Start().Y), 1, colorDebugGuide, false)
		}
	}

	for _, b := range level.Barrels {
		r := b.Bounds()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colorDebugAABB, false)
	}

	pr := p.session.Player.Bounds()
	vector.StrokeRect(screen, float32(pr.X), float32(pr.Y), float32(pr.W), float32(pr.H), 1, colorDebugAABB, false)

	info := fmt.Sprintf("state: %s  vy: %.2f  supported: %t\nthrow in: %.0fms",
		p.session.Player.State, p.session.Player.VY, p.session.Player.Supported,
		level.Antagonist.Interval-level.Antagonist.Timer)
	if p.hover >= 0 {
		pl := level.Platforms[p.hover]
		info += fmt.Sprintf("\ngirder %d: x=%.0f y=%.0f..%.0f w=%.0f angle=%.1fdeg",
			p.hover, pl.X, pl.LeftY, pl.RightY, pl.Width, pl.Angle*180/math.Pi)
	}
	ebitenutil.DebugPrintAt(screen, info, 10, p.screenH-56)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := fmt.Sprintf("Deaths: %d  Barrels: %d  Thrown: %d",
		p.session.Player.Deaths, len(p.session.Level.Barrels), p.session.Spawns)
	if p.recorder != nil {
		hud += "  REC"
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, 4)

	controls := "Arrows/WASD: Move/Climb | Space: Jump | Tab: Debug | R: Restart | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, 20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
