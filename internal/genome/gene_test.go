package genome

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func senseVec(vals ...int) [NSENSES]int {
	var s [NSENSES]int
	copy(s[:], vals)
	return s
}

func TestEvaluateConst(t *testing.T) {
	g := &Gene{Tp: Const, C1: 42}
	require.Equal(t, 42, Evaluate(g, senseVec(), nil))
}

func TestEvaluateSense(t *testing.T) {
	g := &Gene{Tp: Sense, Si: 2, C1: 2048, C2: 5}
	senses := senseVec(0, 0, 100)
	require.Equal(t, 100*2048/1024+5, Evaluate(g, senses, nil))
}

func TestLimitFnMirrorsWhenC1GreaterC2(t *testing.T) {
	require.Equal(t, 0, limitFn(100, 100, 0))
	require.Equal(t, 1024, limitFn(-10, 100, 0))
	require.Equal(t, 512, limitFn(50, 100, 0))
}

func TestLimitFnEqualBoundsReturns512(t *testing.T) {
	require.Equal(t, 512, limitFn(5, 10, 10))
}

func TestCompareFallsThroughToMatch(t *testing.T) {
	// Compare (tp=4) must reproduce the Match (tp=5) formula exactly.
	senses := senseVec(300, 100)
	compare := &Gene{Tp: Compare, Si: 0, C1: 2, C2: 1}
	match := &Gene{Tp: Match, Si: 0, C1: 2, C2: 1}
	require.Equal(t, Evaluate(match, senses, nil), Evaluate(compare, senses, nil))
}

func TestEvaluateProdAndSum(t *testing.T) {
	root := &Gene{Tp: Const, C1: 1024}
	root.Prod = &Gene{Tp: Const, C1: 512}
	root.Sum = &Gene{Tp: Const, C1: 10}
	// 1024 * (512/1024) + 10 = 512 + 10
	require.Equal(t, 522, Evaluate(root, senseVec(), nil))
}

func TestEvaluateRepairsOutOfRangeSi(t *testing.T) {
	g := &Gene{Tp: Sense, Si: NSENSES + 5, C1: 1024}
	var reported []int
	ctx := &EvalContext{
		RNG:      constRNG{v: 3},
		OnRepair: func(old, repaired int) { reported = append(reported, old, repaired) },
	}
	senses := senseVec()
	senses[3] = 77
	require.Equal(t, 77, Evaluate(g, senses, ctx))
	require.Equal(t, []int{NSENSES + 5, 3}, reported)
}

type constRNG struct{ v int }

func (c constRNG) Bounded(int) int { return c.v }

func TestDisposeBranchNeverRemovesRoot(t *testing.T) {
	root := &Gene{Tp: Const, C1: 1}
	chrom := NewChromosome(root)
	child := &Gene{Tp: Const, C1: 2}
	root.Prod = child
	chrom.appendChain(child)
	grandchild := &Gene{Tp: Const, C1: 3}
	child.Sum = grandchild
	chrom.appendChain(grandchild)

	removed := chrom.disposeBranch(root.Prod)
	require.Equal(t, 2, removed)
	require.Equal(t, 1, chrom.Len)
	require.Equal(t, root, chrom.Head)
	require.Nil(t, root.Next)
}

func TestCloneBrainRoundTrip(t *testing.T) {
	b := Genesis(120, 1)
	clone1 := CloneBrain(b)
	clone2 := CloneBrain(clone1)
	require.Equal(t, clone1.NGenes, clone2.NGenes)
	for i := range b.Act {
		require.Equal(t, chainValues(clone1.Act[i].A), chainValues(clone2.Act[i].A))
		require.Equal(t, chainValues(clone1.Act[i].B), chainValues(clone2.Act[i].B))
	}
}

func chainValues(c *Chromosome) []Gene {
	var out []Gene
	for g := c.Head; g != nil; g = g.Next {
		out = append(out, Gene{Tp: g.Tp, Si: g.Si, C1: g.C1, C2: g.C2})
	}
	return out
}

func TestMutationBudgetStopsAtFirstBoundaryDraw(t *testing.T) {
	// The first draw (1) is the budget: r starts at 1+1=2 and doubles
	// through 2,4,...,8192, one mutation pass each, and the loop stops once
	// r reaches 16384. Once the script runs out every draw returns limit-1,
	// so each pass takes the divide branch.
	rnd := &scriptedRNG{vals: []int{1, 16383}}
	b := Genesis(120, 1)
	before := b.NGenes
	Mutate(b, rnd, Ethnicity{R: 1, UID: 2})
	// The budget draw plus at least one mutation-body draw were consumed.
	require.GreaterOrEqual(t, rnd.calls, 2)
	_ = before
}

type scriptedRNG struct {
	vals  []int
	pos   int
	calls int
}

func (s *scriptedRNG) Bounded(limit int) int {
	s.calls++
	if s.pos >= len(s.vals) {
		return limit - 1
	}
	v := s.vals[s.pos]
	s.pos++
	if v >= limit {
		v = limit - 1
	}
	return v
}

func TestFamilyMatchSelfLevelAlways1024(t *testing.T) {
	b1, b2 := Genesis(120, 1), Genesis(120, 2)
	require.Equal(t, 1024, FamilyMatch(b1, b2, LevelSelf))
}

func TestFamilyMatchBothParentsShortCircuits(t *testing.T) {
	b1, b2 := Genesis(120, 1), Genesis(120, 2)
	b1.Family[0] = Ethnicity{UID: 10}
	b1.Family[1] = Ethnicity{UID: 11}
	b2.Family[0] = Ethnicity{UID: 11}
	b2.Family[1] = Ethnicity{UID: 10}
	require.Equal(t, 1024, FamilyMatch(b1, b2, Level1))
}
