package telemetry

import "go.uber.org/zap"

// RepairLog implements sim.Diagnostics: it logs the first out-of-range gene
// sense index repair at Warn, per §7's "invariant-violation / self-repair"
// classification, then downgrades to silent counting — a long run under
// heavy mutation would otherwise drown the log in repeats of the same
// condition.
type RepairLog struct {
	log   *zap.Logger
	count int64
}

// NewRepairLog returns a RepairLog writing through log. Pass zap.NewNop()
// if logging is unwanted but the running count is still useful.
func NewRepairLog(log *zap.Logger) *RepairLog {
	return &RepairLog{log: log}
}

// SenseIndexRepaired satisfies sim.Diagnostics.
func (r *RepairLog) SenseIndexRepaired(geneSi, repaired int) {
	r.count++
	if r.count == 1 {
		r.log.Warn("gene sense index out of range, repaired",
			zap.Int("si", geneSi),
			zap.Int("repaired", repaired),
		)
	}
}

// Count returns the total number of repairs observed so far.
func (r *RepairLog) Count() int64 {
	return r.count
}
