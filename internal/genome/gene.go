package genome

// Kind selects a Gene's evaluation rule.
type Kind int

const (
	Const   Kind = 1
	Sense   Kind = 2
	Limit   Kind = 3
	Compare Kind = 4
	Match   Kind = 5
)

// Gene is one node of a decision's expression tree. It is simultaneously a
// member of its Chromosome's doubly-linked enumeration chain (Prev/Next)
// and, via Prod/Sum, a node of the tree that Evaluate walks.
type Gene struct {
	Tp     Kind
	Si     int
	C1, C2 int

	Prod, Sum  *Gene
	Prev, Next *Gene
}

// Chromosome is one expression tree plus the flat chain of every node
// reachable from it, used for uniform-random gene selection and mutation.
// Head is both the chain's first element and the tree root; disposeBranch
// must never remove it.
type Chromosome struct {
	Head *Gene
	Len  int
}

// NewChromosome starts a chromosome whose only node is root.
func NewChromosome(root *Gene) *Chromosome {
	root.Prev, root.Next = nil, nil
	return &Chromosome{Head: root, Len: 1}
}

// appendChain adds g to the tail of the chain and bumps Len. g is assumed
// to not already be linked.
func (c *Chromosome) appendChain(g *Gene) {
	g.Prev, g.Next = nil, nil
	if c.Head == nil {
		c.Head = g
		c.Len = 1
		return
	}
	tail := c.Head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = g
	g.Prev = tail
	c.Len++
}

// geneAt walks the chain to the i-th node (0-indexed).
func (c *Chromosome) geneAt(i int) *Gene {
	g := c.Head
	for ; i > 0 && g != nil; i-- {
		g = g.Next
	}
	return g
}

// unlink removes g from the chain without touching its Prod/Sum children.
func (c *Chromosome) unlink(g *Gene) {
	if g.Prev != nil {
		g.Prev.Next = g.Next
	}
	if g.Next != nil {
		g.Next.Prev = g.Prev
	}
	if g == c.Head {
		c.Head = g.Next
	}
	g.Prev, g.Next = nil, nil
	c.Len--
}

// disposeBranch removes child and every node reachable from it (via
// Prod/Sum) from the chain, returning the count removed. It never removes
// c.Head itself — callers pass a child pointer (g.Prod or g.Sum), never the
// root.
func (c *Chromosome) disposeBranch(child *Gene) int {
	if child == nil {
		return 0
	}
	removed := c.disposeBranch(child.Prod)
	removed += c.disposeBranch(child.Sum)
	c.unlink(child)
	return removed + 1
}

// clone deep-copies the chromosome, preserving chain order and tree shape.
func (c *Chromosome) clone() *Chromosome {
	if c == nil || c.Head == nil {
		return &Chromosome{}
	}
	old2new := make(map[*Gene]*Gene, c.Len)
	out := &Chromosome{Len: c.Len}
	var tail *Gene
	for g := c.Head; g != nil; g = g.Next {
		n := &Gene{Tp: g.Tp, Si: g.Si, C1: g.C1, C2: g.C2}
		old2new[g] = n
		if out.Head == nil {
			out.Head = n
		} else {
			tail.Next = n
			n.Prev = tail
		}
		tail = n
	}
	for g := c.Head; g != nil; g = g.Next {
		n := old2new[g]
		if g.Prod != nil {
			n.Prod = old2new[g.Prod]
		}
		if g.Sum != nil {
			n.Sum = old2new[g.Sum]
		}
	}
	return out
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// limitFn implements the §4.3 Limit piecewise ramp. c1==c2 is the
// reference's dead-code branch collapsed to its one observable value, 512.
func limitFn(x, c1, c2 int) int {
	switch {
	case c1 == c2:
		return 512
	case c1 < c2:
		switch {
		case x <= c1:
			return 0
		case x >= c2:
			return 1024
		default:
			return (x - c1) * 1024 / (c2 - c1)
		}
	default: // c1 > c2: mirror ramp
		switch {
		case x <= c2:
			return 1024
		case x >= c1:
			return 0
		default:
			return (c1 - x) * 1024 / (c1 - c2)
		}
	}
}

// EvalContext supplies the RNG used to repair an out-of-range sense index
// and an optional hook to report the repair on a diagnostic channel.
type EvalContext struct {
	RNG      interface{ Bounded(int) int }
	OnRepair func(old, repaired int)
}

func (ctx *EvalContext) repair(si int) int {
	if si >= 0 && si < NSENSES {
		return si
	}
	repaired := 0
	if ctx != nil && ctx.RNG != nil {
		repaired = ctx.RNG.Bounded(NSENSES)
	}
	if ctx != nil && ctx.OnRepair != nil {
		ctx.OnRepair(si, repaired)
	}
	return repaired
}

// Evaluate computes g's value against senses, depth-first, applying the
// optional Prod (multiply/1024) and Sum (add) modifiers.
func Evaluate(g *Gene, senses [NSENSES]int, ctx *EvalContext) int {
	if g == nil {
		return 0
	}
	si := ctx.repair(g.Si)

	var v int
	switch g.Tp {
	case Const:
		v = g.C1
	case Sense:
		v = senses[si]*g.C1/1024 + g.C2
	case Limit:
		v = limitFn(senses[si], g.C1, g.C2)
	case Compare, Match:
		// Compare (tp=4) has no terminator in the reference and falls
		// through into the Match (tp=5) case; both observably compute the
		// Match formula. See spec's open question on this.
		other := mod(g.C2, NSENSES)
		diff := senses[si] - senses[other]
		v = 1024 - absInt(diff*g.C1)/1024
		if v < 0 {
			v = 0
		}
	default:
		v = 0
	}

	if g.Prod != nil {
		v = v * Evaluate(g.Prod, senses, ctx) / 1024
	}
	if g.Sum != nil {
		v += Evaluate(g.Sum, senses, ctx)
	}
	return v
}
