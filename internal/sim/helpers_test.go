package sim

import (
	"bugsim/internal/config"
	"bugsim/internal/genome"
	"bugsim/internal/hexgrid"
	"bugsim/internal/rng"
)

// newBareEngine builds an Engine the way New does, but skips seedGenesis so
// tests can populate the world with hand-built bugs.
func newBareEngine(p config.Params, seed int64) *Engine {
	return &Engine{
		Params:    p,
		World:     newWorld(p.WX, p.WY, p.FoodStart),
		RNG:       rng.New(seed),
		ForceMate: p.InitForceMate,
		FoodHump:  p.InitFoodHump,
		CostMate:  p.InitCostMate,
		Leak:      p.InitLeak,
		Safety:    p.InitSafety,
		TargetPop: p.TargetPop,
	}
}

// constBrain builds a brain whose seven decisions (Sleep..Divide) score
// exactly the given constants regardless of senses, via chromosome A (with
// Expression set to pick A on every bit). Useful for pinning a bug's
// behavior in a test without fighting the sense-driven genesis brain.
func constBrain(scores [7]int, divide int) *genome.Brain {
	b := &genome.Brain{Divide: divide, Expression: 0xFF}
	for i, v := range scores {
		b.Act[i] = genome.ActSlot{
			A: genome.NewChromosome(&genome.Gene{Tp: genome.Const, C1: v}),
			B: genome.NewChromosome(&genome.Gene{Tp: genome.Const, C1: 0}),
		}
	}
	b.Act[genome.NDEC-1] = genome.ActSlot{
		A: genome.NewChromosome(&genome.Gene{Tp: genome.Const, C1: 0}),
		B: genome.NewChromosome(&genome.Gene{Tp: genome.Const, C1: 0}),
	}
	b.RecomputeNGenes()
	return b
}

func newTestBug(uid int64, pos hexgrid.Pos, face, weight int, brain *genome.Brain) *Bug {
	b := &Bug{UID: uid, Brain: brain, MateBrain: genome.CloneBrain(brain)}
	for i := range b.Pos {
		b.Pos[i] = HistEntry{Pos: pos, Face: face, Act: ActSleep, Weight: weight}
	}
	return b
}

// decision indices into constBrain's scores array, matching genome's
// decision slot ordering (Sleep, Eat, TurnCW, TurnCCW, Move, Mate, Divide).
const (
	decSleep = iota
	decEat
	decTurnCW
	decTurnCCW
	decMove
	decMate
	decDivide
)
