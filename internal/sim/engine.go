package sim

import (
	"bugsim/internal/config"
	"bugsim/internal/genome"
	"bugsim/internal/rng"
)

// Diagnostics receives the self-repair events §7 classifies as
// "invariant-violation / self-repair" — currently just an out-of-range
// gene sense index. A nil Diagnostics is valid; repairs still happen, they
// just go unreported.
type Diagnostics interface {
	SenseIndexRepaired(geneSi, repaired int)
}

// Engine owns every piece of mutable simulation state: the world grid, the
// bug list, today's tick count, the uid counter, and the dynamic-challenge
// scheduler scalars. There are no package-level globals; every operation
// is a method on *Engine (§9).
type Engine struct {
	Params config.Params
	World  *World

	head, tail *Bug // bug list, append-on-birth order
	cursor     *Bug // scheduler's cached "next to visit", rewritable by killBug

	Population int
	Today      int
	uidCounter int64

	RNG *rng.Source

	// dynamic-challenge scalars (§6)
	AgeDiv    int
	ForceMate uint8
	FoodHump  float64
	CostMate  int
	Leak      int
	Safety    bool
	TargetPop int

	// one-shot schedule stage flags (§6 "stage 1/2/3")
	stage1Done     bool
	stage2Done     bool
	stage3Done     bool
	stage3CoolUntil int

	History    [LHist]Stats
	Diagnostics Diagnostics

	// per-tick accumulators, reset at the start of moveBugs and read by
	// recordHistory once the tick's work is done.
	tickMovement    int
	tickCollisions  int
	tickStarvations int
	tickBirths      int

	// set by growFood, read by recordHistory
	tickTotalFood int
	tickTotalBug  int
	tickGeneCount int
}

// New constructs an Engine with an empty world and seeds "bug one" at
// world center, per §6 genesis.
func New(p config.Params, seed int64) *Engine {
	e := &Engine{
		Params:    p,
		World:     newWorld(p.WX, p.WY, p.FoodStart),
		RNG:       rng.New(seed),
		AgeDiv:    0,
		ForceMate: p.InitForceMate,
		FoodHump:  p.InitFoodHump,
		CostMate:  p.InitCostMate,
		Leak:      p.InitLeak,
		Safety:    p.InitSafety,
		TargetPop: p.TargetPop,
	}
	e.seedGenesis()
	return e
}

func (e *Engine) nextUID() int64 {
	e.uidCounter++
	return e.uidCounter
}

func (e *Engine) evalContext() *genome.EvalContext {
	return &genome.EvalContext{
		RNG: e.RNG,
		OnRepair: func(old, repaired int) {
			if e.Diagnostics != nil {
				e.Diagnostics.SenseIndexRepaired(old, repaired)
			}
		},
	}
}

// Tick advances the simulation by one step: increments Today, applies the
// dynamic-challenge schedule, walks and dispatches every living bug, runs
// food dynamics, and records a history sample (§4.11).
func (e *Engine) Tick() {
	e.Today++
	e.applySchedule()
	e.moveBugs()
	e.growFood()
	e.recordHistory()
}

// BugList returns the living bugs in head-to-tail (birth) order. The slice
// is a fresh snapshot; mutating it does not affect the engine.
func (e *Engine) BugList() []*Bug {
	out := make([]*Bug, 0, e.Population)
	for b := e.head; b != nil; b = b.next {
		out = append(out, b)
	}
	return out
}
