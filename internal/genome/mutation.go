package genome

// Randomizer is the subset of rng.Source that mutation needs. Satisfied by
// *rng.Source; kept as an interface here so genome has no import on the
// concrete generator package.
type Randomizer interface {
	Bounded(limit int) int
}

// Mutate runs the §4.8 top-level mutation loop against b: draw r =
// 1+rand(16383), perform one mutation and double r, repeating while r <
// 16384 (a geometric ~50/25/12.5%... chance of 1/2/3/... mutations). eth is
// stamped onto whichever chromosome's ea/eb the mutation touches.
func Mutate(b *Brain, rnd Randomizer, eth Ethnicity) {
	r := 1 + rnd.Bounded(16383)
	for r < 16384 {
		mutateOnce(b, rnd, eth)
		r *= 2
	}
}

func mutateOnce(b *Brain, rnd Randomizer, eth Ethnicity) {
	n := rnd.Bounded(NDEC + 1)
	if n == NDEC {
		delta := rnd.Bounded(3) - 1
		b.Divide = bounceClamp(b.Divide+delta, 2, 7)
		return
	}

	slot := &b.Act[n]
	var chrom *Chromosome
	if rnd.Bounded(2) == 0 {
		chrom = slot.A
		slot.EA = eth
	} else {
		chrom = slot.B
		slot.EB = eth
	}

	g := chrom.geneAt(rnd.Bounded(chrom.Len))

	switch {
	case rnd.Bounded(2) == 0:
		tweak(g, rnd)
	case rnd.Bounded(4) < 3:
		addGene(chrom, g, rnd)
		b.NGenes++
	default:
		b.NGenes -= pruneGene(chrom, g, rnd)
	}
}

// tweak perturbs g in place: draw rt = 1+rand(255), apply one uniformly
// chosen edit, double rt, repeat while rt < 256.
func tweak(g *Gene, rnd Randomizer) {
	rt := 1 + rnd.Bounded(255)
	for rt < 256 {
		switch rnd.Bounded(4) {
		case 0:
			g.Tp = Kind((int(g.Tp)-1+1+rnd.Bounded(4))%5 + 1)
		case 1:
			delta := rnd.Bounded(NSENSES+6) - 3
			if delta == 0 {
				delta = 6
			}
			g.Si = mod(g.Si+delta, NSENSES)
		case 2:
			g.C1 = g.C1*(1024+rnd.Bounded(256)-128)/1024 + rnd.Bounded(128) - 64
		case 3:
			g.C2 = g.C2*(1024+rnd.Bounded(256)-128)/1024 + rnd.Bounded(128) - 64
		}
		rt *= 2
	}
}

// addGene random-walks from g through Prod/Sum, flipping a coin at each
// node, until it finds a nil child slot, plants a copy of g there, appends
// it to the chain, and with 50% odds tweaks the new node.
func addGene(chrom *Chromosome, g *Gene, rnd Randomizer) {
	cur := g
	for {
		var child **Gene
		if rnd.Bounded(2) == 0 {
			child = &cur.Prod
		} else {
			child = &cur.Sum
		}
		if *child == nil {
			n := &Gene{Tp: g.Tp, Si: g.Si, C1: g.C1, C2: g.C2}
			*child = n
			chrom.appendChain(n)
			if rnd.Bounded(2) == 0 {
				tweak(n, rnd)
			}
			return
		}
		cur = *child
	}
}

// pruneGene removes one of g's child subtrees (chosen at random if both
// exist; a no-op if neither does) and returns the number of chain nodes
// removed. g itself, and hence the chain root, is never removed.
func pruneGene(chrom *Chromosome, g *Gene, rnd Randomizer) int {
	var child *Gene
	switch {
	case g.Prod != nil && g.Sum != nil:
		if rnd.Bounded(2) == 0 {
			child, g.Prod = g.Prod, nil
		} else {
			child, g.Sum = g.Sum, nil
		}
	case g.Prod != nil:
		child, g.Prod = g.Prod, nil
	case g.Sum != nil:
		child, g.Sum = g.Sum, nil
	default:
		return 0
	}
	return chrom.disposeBranch(child)
}

// bounceClamp reflects v back into [lo,hi] instead of saturating, matching
// the divide-count "bounce rules" of §4.8.
func bounceClamp(v, lo, hi int) int {
	for v < lo || v > hi {
		if v < lo {
			v = lo + (lo - v)
		}
		if v > hi {
			v = hi - (v - hi)
		}
	}
	return v
}
