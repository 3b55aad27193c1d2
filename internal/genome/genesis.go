package genome

// decision slot indices, mirrored from the sim package's action constants
// so genome has no import cycle back onto it.
const (
	decSleep = iota
	decEat
	decTurnCW
	decTurnCCW
	decMove
	decMate
	decDivide
	decMateResponse
)

func constChromosome(c1 int) *Chromosome {
	return NewChromosome(&Gene{Tp: Const, C1: c1})
}

func senseChromosome(si, c1, c2 int) *Chromosome {
	return NewChromosome(&Gene{Tp: Sense, Si: si, C1: c1, C2: c2})
}

// Genesis builds the seed brain for "bug one": spec.md §6 states the
// reference's exact literal chromosome values are not reproduced in the
// spec, leaving an engine-provided constant table. This table is a
// concrete, internally consistent stand-in satisfying the stated shape:
// seven decisions with both chromosomes populated, divide=3, a red-leaning
// ethnicity. Bug one prefers to eat when self-cell food is plentiful (sense
// index 0, the self-cell food-vs-weight ratio), divides once its mass makes
// a viable brood (sense index 57, the childmass-feasibility ratio), and
// otherwise sleeps.
func Genesis(ethnicDur int, uid int64) *Brain {
	b := &Brain{
		Generation: 0,
		Divide:     3,
		Expression: 0x7F,
		Eth:        Ethnicity{R: ethnicDur, G: 0, B: 0, UID: uid},
	}

	const childMassSense = 57 // final+0: (self/divide - divideCost) * 1024 / diethin

	b.Act[decSleep] = ActSlot{A: constChromosome(512), B: constChromosome(400)}
	b.Act[decEat] = ActSlot{A: senseChromosome(0, 1024, 0), B: constChromosome(0)}
	b.Act[decTurnCW] = ActSlot{A: constChromosome(0), B: constChromosome(0)}
	b.Act[decTurnCCW] = ActSlot{A: constChromosome(0), B: constChromosome(0)}
	b.Act[decMove] = ActSlot{A: senseChromosome(0, -256, 64), B: constChromosome(0)}
	b.Act[decMate] = ActSlot{A: constChromosome(0), B: constChromosome(0)}
	b.Act[decDivide] = ActSlot{A: senseChromosome(childMassSense, 7, 0), B: constChromosome(0)}
	b.Act[decMateResponse] = ActSlot{A: constChromosome(1024), B: constChromosome(1024)}

	b.RecomputeNGenes()
	return b
}
