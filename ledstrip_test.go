package ledstrip

import "testing"

func TestColorCommand(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"Simple", Color{R: 128, G: 255, B: 0}, "128,255,0."},
		{"Black", Color{}, "0,0,0."},
		{"White", Color{R: 255, G: 255, B: 255}, "255,255,255."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.color.Command()); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if got := tt.color.String(); got != tt.expected[:len(tt.expected)-1] {
				t.Errorf("expected %q, got %q", tt.expected[:len(tt.expected)-1], got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in       int
		expected uint8
	}{
		{-5, 0},
		{0, 0},
		{255, 255},
		{300, 255},
		{128, 128},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.expected {
			t.Errorf("Clamp(%d): expected %d, got %d", tt.in, tt.expected, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("10,20,30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (Color{R: 10, G: 20, B: 30}) {
		t.Errorf("unexpected color: %v", c)
	}

	c, err = ParseColor("-1,999,128")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (Color{R: 0, G: 255, B: 128}) {
		t.Errorf("expected out-of-range values clamped, got %v", c)
	}

	for _, bad := range []string{"", "blue", "1,2"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
