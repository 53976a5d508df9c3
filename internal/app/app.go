//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lunar-lander/internal/render"
	"lunar-lander/internal/sims/lander"
	"lunar-lander/internal/ui"
)

const panelWidth = 220

// Game adapts a lander world to the ebiten.Game interface.
type Game struct {
	world   *lander.World
	painter *render.TerrainPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	dt       float64
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world, stepping it by 1/tps
// seconds per update.
func New(w *lander.World, scale, tps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = 60
	}
	size := w.Size()
	return &Game{
		world:   w,
		painter: render.NewTerrainPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(w, panelWidth),
		overlay: ui.NewOverlay(w, scale),
		scale:   scale,
		dt:      1 / float64(tps),
		seed:    seed,
	}
}

// Reset starts a new session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// A failed restart leaves the error on the world for the HUD.
		_ = g.world.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.world.SetThrottle(ebiten.IsKeyPressed(ebiten.KeyUp))
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.world.RotateLeft()
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.world.RotateRight()
	}

	g.hud.Update()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.world.Step(g.dt)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the terrain, the craft and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.world.Size()
	g.painter.Blit(screen, g.world.Terrain(), g.scale)
	crashed := g.world.Dead() && !g.world.Outcome().Success()
	render.DrawCraft(screen, g.world.Pose(), size.H, g.scale, g.world.Throttle() && g.world.Engine().HasFuel(), crashed)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + panelWidth, s.H * g.scale
}
