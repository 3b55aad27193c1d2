package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bugsim/internal/config"
)

// Starting from the real genesis seed at seed 42, the population must grow
// past its single founder at some point within a long run: the seed brain's
// divide decision is driven by the childmass-feasibility sense, which starts
// far above the sleep score for a freshly seeded, full-weight bug one.
func TestGenesisPopulationGrowsWithinTwentyThousandTicks(t *testing.T) {
	p := config.DefaultParams()
	p.WX, p.WY = 48, 48

	e := New(p, 42)

	sawGrowth := false
	for i := 0; i < 20000; i++ {
		e.Tick()
		if e.Population >= 2 {
			sawGrowth = true
			break
		}
	}

	require.True(t, sawGrowth, "population never exceeded 1 bug")
}
