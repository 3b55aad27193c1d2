package sim

import (
	"bugsim/internal/genome"
	"bugsim/internal/hexgrid"
)

// neighborLevel assigns each of the 12 sensed cells a family-match
// granularity (§4.5): self, 1-ahead, {2-ahead, the two 1-flanks}, and
// everything else.
var neighborLevel = [NSenseCells]genome.FamilyLevel{
	genome.LevelSelf, // 0 self
	genome.Level1,    // 1 1-ahead
	genome.Level2,    // 2 2-ahead
	genome.Level2,    // 3 1-left
	genome.Level2,    // 4 1-right
	genome.Level3,    // 5 3-ahead
	genome.Level3,    // 6 2-left-forward
	genome.Level3,    // 7 2-right-forward
	genome.Level3,    // 8 left-forward diagonal
	genome.Level3,    // 9 right-forward diagonal
	genome.Level3,    // 10 double-left flank
	genome.Level3,    // 11 double-right flank
}

// neighborCells computes the 12 sensed positions relative to facing f,
// per §4.4: self, forward steps, 1-flanks, forward-diagonals, and the
// double flanks (f±2 twice).
func neighborCells(geo hexgrid.Grid, p hexgrid.Pos, f int) [NSenseCells]hexgrid.Pos {
	step := func(from hexgrid.Pos, dir int) hexgrid.Pos { return geo.Step(from, f+dir) }

	ahead1 := step(p, 0)
	ahead2 := step(ahead1, 0)
	ahead3 := step(ahead2, 0)
	left1 := step(p, -1)
	right1 := step(p, 1)
	left2fwd := step(step(p, -1), -1)
	right2fwd := step(step(p, 1), 1)
	leftDiag := step(step(p, -1), 0)
	rightDiag := step(step(p, 1), 0)
	leftFlank := step(step(p, -2), -2)
	rightFlank := step(step(p, 2), 2)

	return [NSenseCells]hexgrid.Pos{
		p, ahead1, ahead2, left1, right1, ahead3,
		left2fwd, right2fwd, leftDiag, rightDiag, leftFlank, rightFlank,
	}
}

func clampWeight(w int) int {
	if w <= 0 {
		return 1
	}
	return w
}

// buildSenses fills the 60-entry sense vector for b, per §4.4.
func (e *Engine) buildSenses(b *Bug) [genome.NSENSES]int {
	var s [genome.NSENSES]int
	self := clampWeight(b.Weight())
	cells := neighborCells(e.World.Geo, b.Position(), b.Face())

	for i, p := range cells {
		c := e.World.cell(p)
		base := i * 4
		s[base+0] = c.Food * 1024 / self

		if c.Bug != nil && c.Bug != b {
			other := c.Bug
			s[base+1] = clampWeight(other.Weight()) * 1024 / self
			s[base+2] = hexgrid.Normalize(other.Face()-b.Face()) * 1024
			s[base+3] = genome.FamilyMatch(b.Brain, other.Brain, neighborLevel[i])
		} else if c.Bug == b {
			// self cell: "other" senses are about oneself, matched as level 0
			s[base+1] = 1024
			s[base+2] = 0
			s[base+3] = 1024
		}
	}

	const actBase = NSenseCells * 4
	for act := 0; act < NACT; act++ {
		found := false
		for j := 0; j < PosHistory; j++ {
			if b.Pos[j].Act == act {
				s[actBase+act] = j * 1024 / PosHistory
				found = true
				break
			}
		}
		if !found {
			s[actBase+act] = 1024
		}
	}

	final := actBase + NACT
	s[final+0] = (self/b.Brain.Divide-e.Params.DivideCost)*1024/e.Params.Diethin
	s[final+1] = self * 1024 / e.Params.Diethin
	s[final+2] = e.Today - b.Birthday

	return s
}
