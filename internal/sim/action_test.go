package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bugsim/internal/config"
	"bugsim/internal/hexgrid"
)

// At weight=1024 with an empty cell, Eat still charges the full requested
// amount as a penalty even though intake is zero.
func TestDoEatOvereatingPenaltyOnEmptyCell(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 5, 5
	p.EatLimit = 205
	p.Eat = 48

	e := newBareEngine(p, 3)
	brain := constBrain([7]int{0, 0, 0, 0, 0, 0, 0}, 3)
	pos := hexgrid.Pos{X: 2, Y: 2}
	uid := e.nextUID()
	bug := newTestBug(uid, pos, hexgrid.E, 1024, brain)
	e.placeBug(bug)
	e.World.cell(pos).Food = 0

	e.doEat(bug)

	requested := 1024 * p.EatLimit / 1024
	require.Equal(t, 1024-requested-p.Eat, bug.Weight())
	require.Equal(t, 0, e.World.cell(pos).Food)
}

// A divide whose computed child mass falls below DIETHIN still applies the
// parent's new (possibly lethal) weight; it just produces no offspring.
func TestDoDivideBelowDiethinProducesNoOffspring(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 5, 5
	p.Diethin = 100
	p.DivideCost = 50

	e := newBareEngine(p, 4)
	brain := constBrain([7]int{0, 0, 0, 0, 0, 0, 1000}, 7)
	uid := e.nextUID()
	bug := newTestBug(uid, hexgrid.Pos{X: 2, Y: 2}, hexgrid.E, 700, brain)
	e.placeBug(bug)

	e.doDivide(bug)

	wantChildMass := 700/7 - 50
	require.Less(t, wantChildMass, p.Diethin)
	require.Equal(t, wantChildMass, bug.Weight())
	require.Equal(t, 1, e.Population)
}

// Two adjacent bugs, each always choosing Move toward the other, resolve
// exactly one combat in a single tick: the second bug is never separately
// dispatched into a fresh fight once its opponent already killed or was
// killed.
func TestAdjacentAlwaysMoveBugsProduceExactlyOneCombat(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 6, 6
	p.Diethin = 1000

	e := newBareEngine(p, 5)
	e.Safety = false

	brain := constBrain([7]int{0, 0, 0, 0, 1000, 0, 0}, 3)

	posA := hexgrid.Pos{X: 2, Y: 2}
	posB := e.World.Geo.Step(posA, hexgrid.E)

	uidA := e.nextUID()
	bugA := newTestBug(uidA, posA, hexgrid.E, 50000, brain)
	e.placeBug(bugA)

	uidB := e.nextUID()
	bugB := newTestBug(uidB, posB, hexgrid.W, 50000, brain)
	e.placeBug(bugB)

	e.Tick()

	require.Equal(t, 1, e.LatestStat().Collisions)
	require.Equal(t, 1, e.Population)
}
