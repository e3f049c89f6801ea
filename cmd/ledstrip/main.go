package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"ledstrip/api"
	"ledstrip/controller"
	"ledstrip/ui"
)

const usage = `Usage: %s [flags] <serial-port> <mode>

Control an RGB LED strip. serial-port is the device path the strip's
controller is connected to, e.g. "/dev/ttyACM0", or "auto" to use the
first USB serial port found.

Modes:
  manual   apply R,G,B lines from stdin (ENABLE_UI=true opens sliders)
  rainbow  show a repeating rainbow sequence
  sysload  change the color based on system load
  serve    expose the strip over HTTP

Flags:
`

func main() {
	var (
		configPath     string
		addr           string
		noLoadColor    string
		fullLoadColor  string
		metricsInput   string
		updateInterval time.Duration
	)
	flag.StringVar(&configPath, "config", "", "path to a yaml config file")
	flag.StringVar(&addr, "addr", ":8080", "listen address for serve mode")
	flag.StringVar(&noLoadColor, "no-load-color", "", `sysload color when idle, as "R,G,B"`)
	flag.StringVar(&fullLoadColor, "full-load-color", "", `sysload color under full load, as "R,G,B"`)
	flag.StringVar(&metricsInput, "metrics", "", "sysload metrics to monitor, e.g. \"cpu,disk,memory\"")
	flag.DurationVar(&updateInterval, "update-interval", 0, "time between sysload checks")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := controller.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = controller.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}
	}
	cfg.SerialPort = flag.Arg(0)
	if noLoadColor != "" {
		cfg.NoLoadColor = noLoadColor
	}
	if fullLoadColor != "" {
		cfg.FullLoadColor = fullLoadColor
	}
	if metricsInput != "" {
		cfg.Metrics = controller.ParseMetrics(metricsInput)
	}
	if updateInterval > 0 {
		cfg.UpdateInterval = updateInterval
	}

	c, err := controller.New(cfg)
	if err != nil {
		log.Fatalf("error connecting to strip: %v", err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mode := flag.Arg(1)
	switch mode {
	case "manual":
		if os.Getenv("ENABLE_UI") == "true" {
			err = runUI(ctx, c)
		} else {
			err = c.Manual(ctx, os.Stdin)
		}
	case "rainbow":
		err = c.Rainbow(ctx, 30*time.Second, controller.DefaultStepTime)
	case "sysload":
		sysloadCfg, cfgErr := cfg.SysloadConfig()
		if cfgErr != nil {
			log.Fatalf("invalid sysload settings: %v", cfgErr)
		}
		err = c.Sysload(ctx, sysloadCfg)
	case "serve":
		err = api.New(c).SetAddress(addr).WithContext(ctx).Serve()
	default:
		log.Fatalf("unknown mode %q", mode)
	}

	if err != nil && ctx.Err() == nil {
		log.Fatalf("%s: %v", mode, err)
	}
}

// runUI feeds the slider window's command lines into manual mode. The
// UI has to own the main goroutine.
func runUI(ctx context.Context, c *controller.Controller) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r, w := io.Pipe()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Manual(ctx, r)
	}()

	ui.NewStripUI().Run(ctx, w)
	w.Close()
	cancel()
	return <-errCh
}
