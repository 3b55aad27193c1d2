// Package sim implements the deterministic simulation core: the hex-grid
// world, food dynamics, per-bug sensing and action execution, the bug-list
// lifecycle, and the dynamic-challenge scheduler. Engine is the single
// value type that owns all mutable state (§9's "no hidden singletons").
package sim

// Structural sizes fixed by the data model (§3), not runtime-tunable:
// POSHISTORY/NACT size the Bug.Pos ring, LHIST sizes the stats history
// ring, NSENSECELLS is the neighborhood the sense pass probes.
const (
	PosHistory  = 32
	NACT        = 9
	LHist       = 1024
	NSenseCells = 12
)

// Action/log codes stored in a Bug's Pos ring. 0..6 double as genome
// decision indices (the brain picks one of these via Decide); 7 and 8 are
// logging-only outcomes the executor stamps after the fact.
const (
	ActSleep = iota
	ActEat
	ActTurnCW
	ActTurnCCW
	ActMove
	ActMate
	ActDivide
	ActMated
	ActDefend
)

// Facing deltas used by divide to place the divide-1 children (§4.7).
var divideFaceDelta = [6]int{3, -2, 2, -1, 1, 0}
