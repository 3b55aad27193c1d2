package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bugsim/internal/config"
	"bugsim/internal/hexgrid"
)

// A lone, sleep-dominant bug loses only SLEEP per tick and must survive a
// long run without starving or dividing.
func TestLoneBugSurvivesWithoutStarving(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 20, 20

	e := newBareEngine(p, 1)
	brain := constBrain([7]int{512, 0, 0, 0, 0, 0, 0}, 3)
	uid := e.nextUID()
	e.placeBug(newTestBug(uid, hexgrid.Pos{X: 10, Y: 10}, hexgrid.E, p.Diethin*256, brain))

	for i := 0; i < 2000; i++ {
		e.Tick()
	}

	require.Equal(t, 1, e.Population)
	bugs := e.BugList()
	require.Len(t, bugs, 1)
	require.Greater(t, bugs[0].Weight(), 0)
}

// A bug whose weight drops to exactly DIETHIN after paying a cost dies on
// the very next cost that would take it below that floor.
func TestStarvationBoundary(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 10, 10
	p.Diethin = 100
	p.Sleep = 1

	e := newBareEngine(p, 2)
	brain := constBrain([7]int{512, 0, 0, 0, 0, 0, 0}, 3)
	uid := e.nextUID()
	e.placeBug(newTestBug(uid, hexgrid.Pos{X: 5, Y: 5}, hexgrid.E, p.Diethin, brain))

	e.dispatch(e.head)

	require.Equal(t, 0, e.Population)
}

// Identical seed, params, and construction sequence must produce
// byte-identical state after the same number of ticks, including through
// births (which consume RNG draws for crossover, expression, and mutation).
func TestDeterminismAcrossIdenticalRuns(t *testing.T) {
	build := func() *Engine {
		p := config.DefaultParams()
		p.WX, p.WY = 11, 11
		p.Diethin = 1000
		p.DivideCost = 100

		e := newBareEngine(p, 42)
		brain := constBrain([7]int{0, 0, 0, 0, 0, 0, 10000}, 3)
		uid := e.nextUID()
		e.placeBug(newTestBug(uid, hexgrid.Pos{X: 5, Y: 5}, hexgrid.E, 50000, brain))
		return e
	}

	e1, e2 := build(), build()
	for i := 0; i < 15; i++ {
		e1.Tick()
		e2.Tick()
	}

	require.Equal(t, e1.Today, e2.Today)
	require.Equal(t, e1.Population, e2.Population)
	require.Equal(t, e1.History, e2.History)

	b1, b2 := e1.BugList(), e2.BugList()
	require.Len(t, b2, len(b1))
	for i := range b1 {
		require.Equal(t, b1[i].UID, b2[i].UID)
		require.Equal(t, b1[i].Weight(), b2[i].Weight())
		require.Equal(t, b1[i].Position(), b2[i].Position())
		require.Equal(t, b1[i].Face(), b2[i].Face())
		require.Equal(t, b1[i].Brain.NGenes, b2[i].Brain.NGenes)
	}
}
