package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bugsim/internal/sim"
)

// Metrics adapts a tick's sim.Stats onto a private Prometheus registry, so a
// collaborator can serve it over promhttp without colliding with the
// default global registerer.
type Metrics struct {
	registry *prometheus.Registry

	population  prometheus.Gauge
	avgWeight   prometheus.Gauge
	avgFood     prometheus.Gauge
	avgGenes    prometheus.Gauge
	births      prometheus.Counter
	starvations prometheus.Counter
	collisions  prometheus.Counter
	movement    prometheus.Counter

	ageDiv    prometheus.Gauge
	forceMate prometheus.Gauge
	foodHump  prometheus.Gauge
	costMate  prometheus.Gauge
	leak      prometheus.Gauge
	safety    prometheus.Gauge
	targetPop prometheus.Gauge
}

// NewMetrics registers the bugsim gauge/counter set on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		population: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_population", Help: "Current living bug count.",
		}),
		avgWeight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_avg_weight", Help: "Population average weight.",
		}),
		avgFood: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_avg_food", Help: "Average food per world cell.",
		}),
		avgGenes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_avg_genes", Help: "Population average gene count.",
		}),
		births: factory.NewCounter(prometheus.CounterOpts{
			Name: "bugsim_births_total", Help: "Cumulative births.",
		}),
		starvations: factory.NewCounter(prometheus.CounterOpts{
			Name: "bugsim_starvations_total", Help: "Cumulative starvation deaths.",
		}),
		collisions: factory.NewCounter(prometheus.CounterOpts{
			Name: "bugsim_collisions_total", Help: "Cumulative move-into-occupied-cell combats.",
		}),
		movement: factory.NewCounter(prometheus.CounterOpts{
			Name: "bugsim_movement_total", Help: "Cumulative Move actions, including blocked moves and combats.",
		}),
		ageDiv: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_agediv", Help: "Scheduler's current minimum divide age.",
		}),
		forceMate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_forcemate", Help: "Scheduler's current forcemate bitmap.",
		}),
		foodHump: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_foodhump", Help: "Scheduler's current food-growth amplitude.",
		}),
		costMate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_costmate", Help: "Scheduler's current mate cost.",
		}),
		leak: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_leak", Help: "Scheduler's current food-leak radius.",
		}),
		safety: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_safety", Help: "Scheduler's current safety flag (1=on).",
		}),
		targetPop: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bugsim_target_pop", Help: "Scheduler's target population.",
		}),
	}
}

// Registry returns the private registry for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one tick's Stats. Counters are monotonic per-tick deltas
// already (Stats carries this-tick counts, not running totals), so each
// call adds rather than sets.
func (m *Metrics) Observe(s sim.Stats) {
	m.population.Set(float64(s.NBugs))
	m.avgWeight.Set(float64(s.AvgWeight) / 1024)
	m.avgFood.Set(float64(s.AvgFood) / 1024)
	m.avgGenes.Set(float64(s.AvgGenes) / 1024)
	m.births.Add(float64(s.Births))
	m.starvations.Add(float64(s.Starvations))
	m.collisions.Add(float64(s.Collisions))
	m.movement.Add(float64(s.Movement))

	m.ageDiv.Set(float64(s.AgeDiv))
	m.forceMate.Set(float64(s.ForceMate))
	m.foodHump.Set(s.FoodHump)
	m.costMate.Set(float64(s.CostMate))
	m.leak.Set(float64(s.Leak))
	if s.Safety {
		m.safety.Set(1)
	} else {
		m.safety.Set(0)
	}
	m.targetPop.Set(float64(s.TargetPop))
}
