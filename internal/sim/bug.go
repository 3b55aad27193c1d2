package sim

import (
	"bugsim/internal/genome"
	"bugsim/internal/hexgrid"
)

// HistEntry is one slot of a Bug's position ring: where it was, which way
// it faced, what it did, and what it weighed at that tick.
type HistEntry struct {
	Pos    hexgrid.Pos
	Face   int
	Act    int
	Weight int
}

// Bug is a single agent. It is owned by the Engine's bug list; a World
// cell holds only a non-owning pointer to it.
type Bug struct {
	UID      int64
	Birthday int

	Kills, Defends, Moves                int
	MateSuccess, MateFails, MateRepeat   int
	Offspring                            int

	Pos [PosHistory]HistEntry // Pos[0] is current

	Brain     *genome.Brain
	MateBrain *genome.Brain

	// bug-list intrusive links (append-on-birth, splice-on-death)
	prev, next *Bug

	// dead is set by killBug. A bug already dead when it would otherwise be
	// a combat/mate partner is never revisited within the same dispatch.
	dead bool
}

// Weight is the bug's current mass, i.e. Pos[0].Weight.
func (b *Bug) Weight() int { return b.Pos[0].Weight }

// SetWeight clamps to a minimum of 1 (§3: "weight ≥ 1 while alive") and
// writes Pos[0].Weight.
func (b *Bug) SetWeight(w int) {
	if w < 1 {
		w = 1
	}
	b.Pos[0].Weight = w
}

// Position is the bug's current cell.
func (b *Bug) Position() hexgrid.Pos { return b.Pos[0].Pos }

// Face is the bug's current facing.
func (b *Bug) Face() int { return b.Pos[0].Face }

// shiftHistory pushes Pos[0..PosHistory-2] into Pos[1..PosHistory-1],
// making room for a new Pos[0] (§4.7: "shifts B.pos[1..] from
// B.pos[0..POSHISTORY-1]").
func (b *Bug) shiftHistory() {
	for i := PosHistory - 1; i > 0; i-- {
		b.Pos[i] = b.Pos[i-1]
	}
}

// turnFace advances face by one step in dir (+1 for CW, -1 for CCW) through
// the canonical six-value cycle 0,1,2,3,-2,-1,0,...
func turnFace(face, dir int) int {
	return hexgrid.Normalize(face + dir)
}
