package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"ledstrip"
)

// Metric names one system load source.
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricDisk   Metric = "disk"
	MetricMemory Metric = "memory"
)

// AllMetrics is the default metric selection.
var AllMetrics = []Metric{MetricCPU, MetricDisk, MetricMemory}

// ParseMetrics reads a comma-separated metric list; empty input selects
// all metrics.
func ParseMetrics(s string) []Metric {
	if s == "" {
		return AllMetrics
	}
	var metrics []Metric
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			metrics = append(metrics, Metric(part))
		}
	}
	return metrics
}

// SysloadConfig controls the load-to-color mapping.
type SysloadConfig struct {
	NoLoad         ledstrip.Color
	FullLoad       ledstrip.Color
	Metrics        []Metric
	UpdateInterval time.Duration
}

// Sysload recolors the strip based on the busiest metric, fading from
// the no-load color at 0% usage to the full-load color at 100%. It runs
// until the context is cancelled.
func (c *Controller) Sysload(ctx context.Context, cfg SysloadConfig) error {
	funcs, err := metricFuncs(cfg.Metrics)
	if err != nil {
		return err
	}

	for {
		var maxUsage float64
		for _, f := range funcs {
			usage, err := f()
			if err != nil {
				log.Printf("could not read metric: %v", err)
				continue
			}
			if usage > maxUsage {
				maxUsage = usage
			}
		}
		log.Printf("max load: %3.0f%%", maxUsage)

		target := Gradient(cfg.NoLoad, cfg.FullLoad, maxUsage/100)
		if err := c.FadeRGB(ctx, target, cfg.UpdateInterval, DefaultStepTime); err != nil {
			return err
		}
	}
}

func metricFuncs(metrics []Metric) ([]func() (float64, error), error) {
	var funcs []func() (float64, error)
	for _, m := range metrics {
		switch m {
		case MetricCPU:
			funcs = append(funcs, cpuPercent)
		case MetricDisk:
			funcs = append(funcs, diskPercent)
		case MetricMemory:
			funcs = append(funcs, memoryPercent)
		default:
			return nil, fmt.Errorf("unknown metric %q", m)
		}
	}
	if len(funcs) == 0 {
		return nil, errors.New("no valid metrics given")
	}
	return funcs, nil
}

func cpuPercent() (float64, error) {
	usages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(usages) == 0 {
		return 0, errors.New("no cpu usage reported")
	}
	return usages[0], nil
}

// diskPercent reports the fullest mounted filesystem.
func diskPercent() (float64, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return 0, err
	}
	var maxUsage float64
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		if usage.UsedPercent > maxUsage {
			maxUsage = usage.UsedPercent
		}
	}
	return maxUsage, nil
}

func memoryPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

// Gradient interpolates linearly between two colors; frac is clamped to
// [0, 1].
func Gradient(from, to ledstrip.Color, frac float64) ledstrip.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return ledstrip.Color{
		R: lerp(from.R, to.R, frac),
		G: lerp(from.G, to.G, frac),
		B: lerp(from.B, to.B, frac),
	}
}

func lerp(a, b uint8, frac float64) uint8 {
	return ledstrip.Clamp(int(math.Round(float64(a) + (float64(b)-float64(a))*frac)))
}
