package sim

import (
	"math"

	"bugsim/internal/hexgrid"
)

// rot scales food by single-step distance to the nearest bug when growth is
// suppressed; index 0 (the occupied cell itself) is the only index reached
// by the engine's single-step nearest (§9 open question: multi-step
// dilation is not implemented).
var rot = [4]int{988, 973, 1012, 1023}

var sixDirs = [6]int{hexgrid.E, hexgrid.SE, hexgrid.SW, hexgrid.W, hexgrid.NW, hexgrid.NE}

func wrapIdx(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// growFood runs the §4.10 per-tick pass: a single-step "nearest bug" scan,
// then row-major growth/decay/spread. Spread mutates cells in place during
// the same pass, so a cell's growth sees prior cells' already-updated food
// and later cells see this cell's; row-major iteration is mandatory for
// determinism.
func (e *Engine) growFood() {
	wx, wy := e.Params.WX, e.Params.WY
	grid := e.World.Grid

	for y := 0; y < wy; y++ {
		for x := 0; x < wx; x++ {
			if grid[y][x].Bug != nil {
				grid[y][x].Nearest = 0
			} else {
				grid[y][x].Nearest = -1
			}
		}
	}

	var totalFood, totalBug, geneCount int

	for y := 0; y < wy; y++ {
		for x := 0; x < wx; x++ {
			c := &grid[y][x]

			sax := wrapIdx(x+e.Today*wx/e.Params.Season, wx)
			fgf := 0.1 + e.FoodHump*math.Sin(math.Pi*float64(sax)/float64(wx))*
				(0.51 - 0.5*math.Cos(6*math.Pi*float64(y)/float64(wy)))
			g := int(math.Round(float64(e.Params.FoodGrow-1024)*fgf)) + 1024

			if c.Nearest == -1 || c.Nearest > e.Leak {
				c.Food = c.Food * g / 1024
			} else {
				idx := c.Nearest
				if idx > 3 {
					idx = 3
				}
				c.Food = c.Food * rot[idx] / 1024
			}

			if c.Food > e.Params.FoodCap {
				c.Food -= (c.Food - e.Params.FoodCap) * e.Params.FoodDecay / 1024
			}
			if hardCap := e.Params.FoodCap * e.Params.FoodHardCapMul; c.Food > hardCap {
				c.Food = hardCap
			}
			if c.Food < 0 {
				c.Food = 0
			}

			for _, dir := range sixDirs {
				np := e.World.Geo.Step(hexgrid.Pos{X: x, Y: y}, dir)
				nc := e.World.cell(np)
				shadowed := !(nc.Nearest == -1 || nc.Nearest > e.Leak)
				if !shadowed && nc.Food < c.Food/16 {
					t := c.Food * e.Params.FoodSpread / 1024
					c.Food -= t
					nc.Food += t
				}
			}

			totalFood += c.Food
			if c.Bug != nil {
				totalBug++
				geneCount += c.Bug.Brain.NGenes
			}
		}
	}

	e.tickTotalFood = totalFood
	e.tickTotalBug = totalBug
	e.tickGeneCount = geneCount
}
