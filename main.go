package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"voxport/app"
	"voxport/config"
	"voxport/hal"
	"voxport/internal/buildinfo"
)

func main() {
	var (
		backend  string
		cfgPath  string
		shapeDir string
		model    string
		logPath  string
		hz       int
		ticks    uint64
		seed     int64
		mute     bool
		version  bool
	)
	flag.StringVar(&backend, "backend", "window", "Host surface: window, terminal or headless.")
	flag.StringVar(&cfgPath, "config", "", "YAML config file (defaults when empty).")
	flag.StringVar(&shapeDir, "shapes", "", "Directory of extra shape files.")
	flag.StringVar(&model, "model", "", "Initial model name.")
	flag.StringVar(&logPath, "log", "", "Log file for the terminal backend.")
	flag.IntVar(&hz, "hz", 0, "Frame rate (0 = config tps).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks (0 = run forever).")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = config seed or clock).")
	flag.BoolVar(&mute, "mute", false, "Disable sound cues.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if shapeDir != "" {
		cfg.Scene.ShapesDir = shapeDir
	}
	if hz > 0 {
		cfg.Display.TPS = hz
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	hcfg := hal.Config{
		Width:   cfg.Display.Width,
		Height:  cfg.Display.Height,
		Scale:   cfg.Display.Scale,
		Hz:      cfg.Display.TPS,
		Ticks:   ticks,
		Mute:    mute,
		LogPath: logPath,
	}
	newApp := app.Factory(app.Options{Config: cfg, Model: model, Seed: seed})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch backend {
	case "window":
		err = hal.RunWindow(newApp, hcfg)
	case "terminal":
		err = hal.RunTerminal(ctx, newApp, hcfg)
	case "headless":
		err = hal.RunHeadless(ctx, newApp, hcfg)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown backend %q\n", backend)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
