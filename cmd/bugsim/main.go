// Package main is the entry point for the bugsim artificial-life
// simulation.
//
// It parses CLI flags, loads parameters, constructs the simulation core,
// and drives either a headless tick loop or the ebiten GUI viewer. None of
// this lives in the core: the core exposes only Tick() and a read-only
// view.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bugsim/internal/config"
	"bugsim/internal/sim"
	"bugsim/internal/telemetry"
)

func main() {
	wx := flag.Int("wx", 0, "grid width (0 = use config/default)")
	wy := flag.Int("wy", 0, "grid height (0 = use config/default)")
	ticks := flag.Int("ticks", 20000, "number of ticks to run")
	seed := flag.Int64("seed", 54321, "RNG seed")
	configPath := flag.String("config", "", "optional YAML parameter file")
	gui := flag.Bool("gui", false, "show the ebiten viewer")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	statsEvery := flag.Int("statsEvery", 1000, "print a stats line every N ticks (0 = never)")
	quiet := flag.Bool("quiet", false, "suppress console prints")
	debugLog := flag.Bool("debug", false, "verbose development logging")

	flag.Parse()

	log, err := telemetry.NewLogger(*debugLog)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	params, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", zap.Error(errors.Wrap(err, "config.Load")))
	}
	if *wx > 0 {
		params.WX = *wx
	}
	if *wy > 0 {
		params.WY = *wy
	}

	engine := sim.New(params, *seed)
	engine.Diagnostics = telemetry.NewRepairLog(log)

	var metrics *telemetry.Metrics
	if *metricsAddr != "" {
		metrics = telemetry.NewMetrics()
		go serveMetrics(*metricsAddr, metrics, log)
	}

	log.Info("engine constructed",
		zap.Int("wx", params.WX), zap.Int("wy", params.WY),
		zap.Int64("seed", *seed), zap.Int("ticks", *ticks),
	)

	if *gui {
		if err := runGUI(engine); err != nil {
			log.Fatal("gui", zap.Error(err))
		}
		return
	}

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		engine.Tick()
		if metrics != nil {
			metrics.Observe(engine.LatestStat())
		}
		if !*quiet && *statsEvery > 0 && i%*statsEvery == 0 {
			st := engine.LatestStat()
			fmt.Printf("tick=%07d bugs=%5d avgweight=%6.1f avgfood=%6.1f births=%4d starvations=%4d\n",
				engine.Today, st.NBugs, float64(st.AvgWeight)/1024, float64(st.AvgFood)/1024,
				st.Births, st.Starvations)
		}
	}
	elapsed := time.Since(start)

	if !*quiet {
		fmt.Printf("done: ticks=%d elapsed=%v final_population=%d\n", *ticks, elapsed, engine.Population)
	}
}

func serveMetrics(addr string, m *telemetry.Metrics, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	log.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server stopped", zap.Error(err))
	}
}
