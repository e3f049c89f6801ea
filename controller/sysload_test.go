package controller

import (
	"testing"

	"ledstrip"
)

func TestGradient(t *testing.T) {
	noLoad := ledstrip.Color{B: 255}
	fullLoad := ledstrip.Color{R: 255}

	tests := []struct {
		name     string
		frac     float64
		expected ledstrip.Color
	}{
		{"NoLoad", 0, noLoad},
		{"FullLoad", 1, fullLoad},
		{"Half", 0.5, ledstrip.Color{R: 128, B: 128}},
		{"ClampLow", -0.3, noLoad},
		{"ClampHigh", 1.7, fullLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gradient(noLoad, fullLoad, tt.frac); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseMetrics(t *testing.T) {
	if got := ParseMetrics(""); len(got) != len(AllMetrics) {
		t.Errorf("expected empty input to select all metrics, got %v", got)
	}

	got := ParseMetrics("cpu, memory")
	if len(got) != 2 || got[0] != MetricCPU || got[1] != MetricMemory {
		t.Errorf("expected [cpu memory], got %v", got)
	}
}

func TestMetricFuncs(t *testing.T) {
	funcs, err := metricFuncs(AllMetrics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(funcs) != 3 {
		t.Errorf("expected 3 metric funcs, got %d", len(funcs))
	}

	if _, err := metricFuncs([]Metric{"bogus"}); err == nil {
		t.Error("expected error for unknown metric")
	}
	if _, err := metricFuncs(nil); err == nil {
		t.Error("expected error for empty metric selection")
	}
}
