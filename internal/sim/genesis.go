package sim

import (
	"bugsim/internal/genome"
	"bugsim/internal/hexgrid"
)

// seedGenesis places "bug one" at world center facing east, per §6: weight
// DIETHIN×256, the engine-provided seed brain, and a mutated copy of it as
// the initial matebrain.
func (e *Engine) seedGenesis() {
	center := hexgrid.Pos{X: e.Params.WX / 2, Y: e.Params.WY / 2}
	uid := e.nextUID()
	brain := genome.Genesis(e.Params.EthnicDur, uid)
	weight := e.Params.Diethin * 256

	b := &Bug{
		UID:      uid,
		Birthday: 0,
		Brain:    brain,
	}
	for i := range b.Pos {
		b.Pos[i] = HistEntry{Pos: center, Face: hexgrid.E, Act: ActSleep, Weight: weight}
	}

	b.MateBrain = genome.CloneBrain(brain)
	genome.Mutate(b.MateBrain, e.RNG, brain.Eth)

	e.placeBug(b)
}
