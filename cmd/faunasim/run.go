package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/fauna/internal/api"
	"github.com/talgya/fauna/internal/catalog"
	"github.com/talgya/fauna/internal/config"
	"github.com/talgya/fauna/internal/engine"
	"github.com/talgya/fauna/internal/entropy"
	"github.com/talgya/fauna/internal/habitat"
	"github.com/talgya/fauna/internal/report"
)

var (
	flagMonths  uint64
	flagSpecies string
	flagHTTP    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation()
	},
}

func init() {
	runCmd.Flags().Uint64Var(&flagMonths, "months", 0, "Override months to simulate (0 = from config)")
	runCmd.Flags().StringVar(&flagSpecies, "species", "", "Load species parameters from the catalog instead of config")
	runCmd.Flags().IntVar(&flagHTTP, "http", 0, "Serve the observation API on this port (0 = from config)")
}

func runSimulation() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Run.Seed = flagSeed
	}
	if flagMonths != 0 {
		cfg.Run.Months = flagMonths
	}
	if flagHTTP != 0 {
		cfg.Run.HTTPPort = flagHTTP
	}

	setupLogging(cfg.Run.LogLevel)

	sp := &cfg.Species
	if flagSpecies != "" {
		db, err := catalog.Open(flagDBPath)
		if err != nil {
			return err
		}
		sp, err = db.Get(flagSpecies)
		db.Close()
		if err != nil {
			return err
		}
	}
	if err := sp.Validate(); err != nil {
		return err
	}

	src := entropy.New(cfg.Run.Seed)
	slog.Info("run parameters",
		"species", sp.Name,
		"seed", src.Seed(),
		"months", cfg.Run.Months,
		"initial_population", cfg.Population.Initial,
	)

	env := habitat.NewEnvironment(cfg.Habitat.FoodPerTick, cfg.Habitat.WaterPerTick, cfg.Habitat.Climate.Baseline)
	clim := habitat.NewClimate(habitat.ClimateParams{
		Baseline:          cfg.Habitat.Climate.Baseline,
		SeasonalAmplitude: cfg.Habitat.Climate.SeasonalAmplitude,
		NoiseAmplitude:    cfg.Habitat.Climate.NoiseAmplitude,
		NoiseFrequency:    cfg.Habitat.Climate.NoiseFrequency,
	}, src.Seed()+1)

	sim := engine.NewSimulation(engine.Params{
		Species:           sp,
		Env:               env,
		Climate:           clim,
		InitialPopulation: cfg.Population.Initial,
		MaxStartAgeYears:  cfg.Population.MaxStartAgeYears,
		Source:            src,
	})

	eng := engine.NewEngine()
	eng.Interval = time.Duration(cfg.Run.IntervalMS) * time.Millisecond
	eng.MaxTicks = cfg.Run.Months
	eng.OnMonth = func(tick uint64) {
		sim.TickMonth(tick)
		if sim.Extinct() {
			slog.Warn("population extinct", "tick", tick, "sim_time", engine.SimTime(tick))
			eng.Stop()
		}
	}
	eng.OnYear = func(tick uint64) {
		stats := sim.Stats()
		slog.Info("year complete",
			"sim_time", engine.SimTime(tick),
			"alive", stats.Population,
			"pregnant", stats.Pregnant,
			"births", stats.Births,
			"deaths", stats.Deaths,
			"temperature", fmt.Sprintf("%.1f", env.Temperature()),
		)
	}

	if cfg.Run.HTTPPort > 0 {
		apiServer := &api.Server{Sim: sim, Port: cfg.Run.HTTPPort}
		apiServer.Start()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping", "signal", sig)
		eng.Stop()
	}()

	eng.Run()

	sum := report.Build(sim, src.Seed(), eng.Tick)
	sum.Write(os.Stdout)
	return nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
