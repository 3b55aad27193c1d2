package sim

import (
	"bugsim/internal/genome"
	"bugsim/internal/hexgrid"
)

// forcemate bit assignments, per the §6 dynamic-challenge table.
const (
	fmAgeGate           = 0x10
	fmAgeGatePenaltyDiv = 0x40
	fmAgeGatePenaltyCst = 0x20
	fmMateGate          = 0x01
	fmMateGatePenaltyDiv = 0x08
	fmMateGatePenaltyCst = 0x04
	fmMarkSelfClone     = 0x02
)

// dispatch runs one bug's per-tick turn: shift its history ring, sense,
// decide, stamp the chosen act, execute it, then check for starvation.
func (e *Engine) dispatch(b *Bug) {
	b.shiftHistory()
	senses := e.buildSenses(b)
	act := b.Brain.Decide(senses, e.evalContext())
	b.Pos[0].Act = act

	switch act {
	case ActSleep:
		e.doSleep(b)
	case ActEat:
		e.doEat(b)
	case ActTurnCW:
		e.doTurn(b, 1)
	case ActTurnCCW:
		e.doTurn(b, -1)
	case ActMove:
		e.doMove(b)
	case ActMate:
		e.doMate(b)
	case ActDivide:
		e.doDivide(b)
	}

	if !b.dead && b.Weight() < e.Params.Diethin {
		e.killBug(b)
		e.tickStarvations++
	}
}

func (e *Engine) doSleep(b *Bug) {
	b.SetWeight(b.Weight() - e.Params.Sleep)
}

// doEat applies intake, charges an overeating penalty for any amount
// requested beyond what the cell holds, and pays EAT.
func (e *Engine) doEat(b *Bug) {
	cell := e.World.cell(b.Position())
	requested := b.Weight() * e.Params.EatLimit / 1024
	intake := requested
	if intake > cell.Food {
		intake = cell.Food
	}
	overeat := requested - intake
	b.SetWeight(b.Weight() + intake - overeat)
	cell.Food -= intake
	b.SetWeight(b.Weight() - e.Params.Eat)
}

func (e *Engine) doTurn(b *Bug, dir int) {
	b.Pos[0].Face = turnFace(b.Face(), dir)
	b.SetWeight(b.Weight() - e.Params.Turn)
}

// doMove pays MOVE, then either steps into an empty cell, backs off from an
// occupied cell under the safety flag, or resolves combat.
func (e *Engine) doMove(b *Bug) {
	target := e.World.Geo.Step(b.Position(), b.Face())

	w := b.Weight() - e.Params.Move
	if w < 0 {
		w = 0
	}
	b.Pos[0].Weight = w
	e.tickMovement++

	cell := e.World.cell(target)
	defender := cell.Bug
	if defender == nil {
		origin := b.Position()
		b.Pos[0].Pos = target
		e.World.vacate(origin)
		e.World.occupy(target, b)
		b.Moves++
		return
	}
	if e.Safety {
		return
	}
	e.resolveCombat(b, defender, target)
}

// resolveCombat implements the §4.7 mass/angle table: the defender's mass
// is scaled by relative facing and the defender's combat experience, then
// compared against a random draw bounded by mass-plus-attacker-weight.
func (e *Engine) resolveCombat(attacker, defender *Bug, target hexgrid.Pos) {
	rf := hexgrid.Normalize(defender.Face() - attacker.Face())
	m := defender.Weight()
	switch rf {
	case 0:
		m = m * (defender.Defends/2 + 1) / 128
	case 1, -1:
		m = m * (defender.Defends/4 + 1) / 1024
	case 2, -2:
		m = m*(defender.Defends/8+1)/8192 - attacker.Kills
	case 3:
		m = m/65536 - attacker.Kills*attacker.Kills
	}
	if m < 0 {
		m = 0
	}

	e.tickCollisions++
	r := e.RNG.Bounded(m + attacker.Weight()/1024)
	if r > m {
		attacker.Kills++
		e.killBug(defender)
		origin := attacker.Position()
		attacker.Pos[0].Pos = target
		e.World.vacate(origin)
		e.World.occupy(target, attacker)
		attacker.Moves++
		attacker.SetWeight(attacker.Weight() - e.Params.Fight)
		return
	}

	defender.Defends++
	e.killBug(attacker)
	defender.shiftHistory()
	defender.Pos[0].Act = ActDefend
}

// doMate evaluates the partner's RESPONSEMATE chromosomes against its own
// senses; on a positive response, matebrains are swapped without producing
// offspring.
func (e *Engine) doMate(b *Bug) {
	target := e.World.Geo.Step(b.Position(), b.Face())
	partner := e.World.cell(target).Bug

	if partner == nil {
		b.MateFails++
	} else {
		partnerSenses := e.buildSenses(partner)
		response := partner.Brain.MateResponse(partnerSenses, e.evalContext())
		if response > 0 {
			bOldMate := b.MateBrain.Eth.UID
			partnerOldMate := partner.MateBrain.Eth.UID

			b.MateBrain = genome.CloneBrain(partner.Brain)
			partner.MateBrain = genome.CloneBrain(b.Brain)

			if bOldMate != partner.Brain.Eth.UID {
				b.MateSuccess++
			} else {
				b.MateRepeat++
			}
			if partnerOldMate != b.Brain.Eth.UID {
				partner.MateSuccess++
			} else {
				partner.MateRepeat++
			}

			partner.shiftHistory()
			partner.Pos[0].Act = ActMated
			b.Pos[0].Act = ActMated
		} else {
			b.MateFails++
		}
	}

	b.SetWeight(b.Weight() - e.CostMate)
}

// abortDivide applies the gate's penalty bits, floors weight up to DIETHIN,
// and pays SLEEP. A bug floored to DIETHIN ends below it after SLEEP, so
// dispatch's starvation check then removes it.
func (e *Engine) abortDivide(b *Bug, penaltyDivide, penaltyCost uint8) {
	if e.ForceMate&penaltyDivide != 0 {
		b.Pos[0].Weight = b.Weight() / b.Brain.Divide
	}
	if e.ForceMate&penaltyCost != 0 {
		b.Pos[0].Weight = b.Weight() - e.Params.DivideCost
	}
	if b.Weight() < e.Params.Diethin {
		b.Pos[0].Weight = e.Params.Diethin
	}
	b.SetWeight(b.Weight() - e.Params.Sleep)
}

// doDivide runs the age and mate-required gates, then — if neither aborts —
// thins the parent and attempts to place divide-1 children around it.
func (e *Engine) doDivide(b *Bug) {
	if e.ForceMate&fmAgeGate != 0 && e.Today-b.Birthday < e.AgeDiv {
		e.abortDivide(b, fmAgeGatePenaltyDiv, fmAgeGatePenaltyCst)
		return
	}
	if e.ForceMate&fmMateGate != 0 && b.Brain.Eth.UID == b.MateBrain.Eth.UID {
		e.abortDivide(b, fmMateGatePenaltyDiv, fmMateGatePenaltyCst)
		return
	}

	childMass := b.Weight()/b.Brain.Divide - e.Params.DivideCost
	b.Pos[0].Weight = childMass
	if childMass < e.Params.Diethin {
		return
	}

	for k := 1; k < b.Brain.Divide; k++ {
		dir := hexgrid.Normalize(b.Face() + divideFaceDelta[k-1])
		pos := e.World.Geo.Step(b.Position(), dir)
		if e.World.cell(pos).Bug != nil {
			continue
		}
		e.birthChild(b, pos, dir, childMass)
	}

	if e.ForceMate&fmMarkSelfClone != 0 {
		b.MateBrain.Eth.UID = b.Brain.Eth.UID
	}
}

// birthChild constructs a new bug at pos facing dir, crossing over parent's
// and its matebrain's chromosomes per decision, assimilating ethnicity by
// latitude, and applying the divide/mate mutation draws (§4.7, §4.8, §4.9).
func (e *Engine) birthChild(parent *Bug, pos hexgrid.Pos, dir int, childMass int) {
	uid := e.nextUID()

	gen := parent.Brain.Generation
	if parent.MateBrain.Generation > gen {
		gen = parent.MateBrain.Generation
	}
	gen++

	eth := genome.Assimilate(parent.Brain.Eth, parent.MateBrain.Eth, pos.Y, e.Params.WY, e.Params.EthnicDur, uid)

	var family [genome.FAMHIST]genome.Ethnicity
	family[0] = parent.Brain.Eth
	family[1] = parent.MateBrain.Eth
	for idx := 2; idx < genome.FAMHIST; idx++ {
		k := idx / 2
		if idx%2 == 0 {
			family[idx] = parent.Brain.Family[k-1]
		} else {
			family[idx] = parent.MateBrain.Family[k-1]
		}
	}

	child := &genome.Brain{
		Family:     family,
		Eth:        eth,
		Generation: gen,
	}
	for i := 0; i < genome.NDEC; i++ {
		var aSrc, bSrc *genome.Chromosome
		var eaSrc, ebSrc genome.Ethnicity
		if e.RNG.Bounded(2) == 0 {
			aSrc, eaSrc = parent.Brain.Act[i].A, parent.Brain.Act[i].EA
		} else {
			aSrc, eaSrc = parent.Brain.Act[i].B, parent.Brain.Act[i].EB
		}
		if e.RNG.Bounded(2) == 0 {
			bSrc, ebSrc = parent.MateBrain.Act[i].A, parent.MateBrain.Act[i].EA
		} else {
			bSrc, ebSrc = parent.MateBrain.Act[i].B, parent.MateBrain.Act[i].EB
		}
		child.Act[i] = genome.ActSlot{
			A:  genome.CloneChromosome(aSrc),
			B:  genome.CloneChromosome(bSrc),
			EA: eaSrc,
			EB: ebSrc,
		}
	}
	child.RecomputeNGenes()

	if e.RNG.Bounded(2) == 0 {
		child.Divide = parent.Brain.Divide
	} else {
		child.Divide = parent.MateBrain.Divide
	}
	child.Expression = uint8(e.RNG.Bounded(256))

	childMate := genome.CloneBrain(child)

	mutateMate := e.RNG.Bounded(4) == 0
	mutateSelf := e.RNG.Bounded(8) == 0
	if mutateMate {
		genome.Mutate(childMate, e.RNG, child.Eth)
	}
	if mutateSelf {
		genome.Mutate(child, e.RNG, child.Eth)
	}

	newBug := &Bug{
		UID:       uid,
		Birthday:  e.Today,
		Brain:     child,
		MateBrain: childMate,
	}
	for i := range newBug.Pos {
		newBug.Pos[i] = HistEntry{Pos: pos, Face: dir, Act: ActSleep, Weight: childMass}
	}

	e.placeBug(newBug)
	e.tickBirths++
	parent.Offspring++
}
