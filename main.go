package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"grapher/app"
	"grapher/graph"
	"grapher/hal"
	"grapher/internal/buildinfo"
	"grapher/internal/config"
	"grapher/line"
)

const usage = `usage: grapher [flags] positive width,height title [{name,equation,color}...]
       grapher [flags] -config file.toml [{name,equation,color}...]

example: grapher true 800,600 Sales_Report {Revenue,2x+3,blue} {Cost,x+10,red}

flags:
`

func main() {
	var (
		headless   hal.HeadlessConfig
		configPath string
	)
	flag.StringVar(&configPath, "config", "", "Read settings and lines from a TOML file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 1, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath, flag.Args())
	} else {
		cfg, err = config.FromArgs(flag.Args())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error {
		h.Logger().WriteLineString("grapher " + buildinfo.String())
		cfg.Echo(h.Logger())
		lines := line.ParseAll(cfg.Specs, h.Logger(), h.ErrLogger())
		return app.New(h, app.Config{Graph: graph.Config{
			Positive: cfg.Positive,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Lines:    lines,
		}})
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg.HAL(), newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.HAL(), newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
