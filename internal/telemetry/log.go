// Package telemetry wires the simulation core's ambient observability: a
// zap logger, a rate-limited diagnostic collector satisfying sim.Diagnostics,
// and a Prometheus adapter over sim.Stats.
package telemetry

import "go.uber.org/zap"

// NewLogger builds a zap logger. debug selects the development encoder
// (console, caller info, debug level); otherwise a production JSON encoder
// at info level is used.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
