package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bugsim/internal/sim"
)

// view_ebiten.go renders the engine's two §6 renderer modes: "bug map"
// (ethnicity-colored trails over pos[0..POSHISTORY)) and "environment map"
// (food as green channel, bug as red/blue). It only reads World.Food,
// cell.Bug, bug.Eth and bug.Pos[*], per the spec's renderer contract.

const pixelScale = 4 // pixels per cell

var colBg = color.RGBA{10, 10, 16, 255}

type viewMode int

const (
	modeBugMap viewMode = iota
	modeEnvMap
)

// game implements the ebiten.Game interface over a live *sim.Engine.
type game struct {
	engine *sim.Engine
	mode   viewMode
	frame  int
}

// Update advances the simulation one tick every other frame (so the window
// stays responsive at 60Hz while the sim runs at a watchable pace) and
// toggles render mode on spacebar.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.mode == modeBugMap {
			g.mode = modeEnvMap
		} else {
			g.mode = modeBugMap
		}
	}

	if g.frame%2 == 0 {
		g.engine.Tick()
	}
	g.frame++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)
	snap := g.engine.Snapshot()

	switch g.mode {
	case modeEnvMap:
		g.drawEnvMap(screen, snap)
	default:
		g.drawBugMap(screen, snap)
	}
}

// drawEnvMap colors each cell by food (green channel) and marks occupied
// cells with a red/blue tint from the occupant's ethnicity.
func (g *game) drawEnvMap(screen *ebiten.Image, snap sim.View) {
	wx, wy := snap.World.Geo.Width, snap.World.Geo.Height
	for y := 0; y < wy; y++ {
		for x := 0; x < wx; x++ {
			cell := snap.World.Grid[y][x]
			green := uint8(clampByte(cell.Food * 255 / 1_024_000))
			var red, blue uint8
			if cell.Bug != nil {
				red = uint8(clampByte(cell.Bug.Brain.Eth.R * 255 / 256))
				blue = uint8(clampByte(cell.Bug.Brain.Eth.B * 255 / 256))
			}
			fillCell(screen, x, y, color.RGBA{red, green, blue, 255})
		}
	}
}

// drawBugMap draws each living bug's ethnicity-colored trail across its
// position ring, most recent position brightest.
func (g *game) drawBugMap(screen *ebiten.Image, snap sim.View) {
	for _, b := range snap.Bugs {
		base := b.Brain.Eth
		for i, h := range b.Pos {
			fade := uint8(255 - i*255/len(b.Pos))
			c := color.RGBA{
				uint8(clampByte(base.R * int(fade) / 256)),
				uint8(clampByte(base.G * int(fade) / 256)),
				uint8(clampByte(base.B * int(fade) / 256)),
				255,
			}
			fillCell(screen, h.Pos.X, h.Pos.Y, c)
		}
	}
}

func fillCell(screen *ebiten.Image, x, y int, c color.Color) {
	px := x * pixelScale
	if y%2 != 0 {
		px += pixelScale / 2
	}
	py := y * pixelScale
	for dy := 0; dy < pixelScale; dy++ {
		for dx := 0; dx < pixelScale; dx++ {
			screen.Set(px+dx, py+dy, c)
		}
	}
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func (g *game) Layout(outW, outH int) (int, int) {
	wx, wy := g.engine.World.Geo.Width, g.engine.World.Geo.Height
	return wx * pixelScale, wy * pixelScale
}

// runGUI starts the ebiten window over engine, advancing it one tick at a
// time as the game loop runs.
func runGUI(engine *sim.Engine) error {
	g := &game{engine: engine}
	ebiten.SetWindowSize(engine.World.Geo.Width*pixelScale, engine.World.Geo.Height*pixelScale)
	ebiten.SetWindowTitle(fmt.Sprintf("bugsim | %dx%d | space toggles bug/env map",
		engine.World.Geo.Width, engine.World.Geo.Height))
	return ebiten.RunGame(g)
}
