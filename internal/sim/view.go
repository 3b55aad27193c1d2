package sim

// View bundles everything an external collaborator (event recorder,
// renderer, stats view) reads, per §6's external-interfaces contract.
// History is copied by value and Bugs is a fresh slice, but the slice holds
// the engine's live *Bug values and World is the engine's own grid, so a
// View does not stay fixed as the engine keeps ticking.
type View struct {
	World   *World
	Bugs    []*Bug
	History [LHist]Stats
	Today   int
}

// Snapshot returns a View of the engine's current state. The World pointer
// is still shared (copying the whole grid every call would be wasteful for
// a per-tick renderer); collaborators must treat it as read-only.
func (e *Engine) Snapshot() View {
	return View{
		World:   e.World,
		Bugs:    e.BugList(),
		History: e.History,
		Today:   e.Today,
	}
}

// Stat returns the history entry recorded for tick, or the zero Stats if
// tick predates the ring's current window.
func (e *Engine) Stat(tick int) Stats {
	if tick <= e.Today-LHist {
		return Stats{}
	}
	return e.History[((tick%LHist)+LHist)%LHist]
}

// LatestStat is a convenience for Stat(Today).
func (e *Engine) LatestStat() Stats {
	return e.Stat(e.Today)
}
