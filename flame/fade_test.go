package flame

import (
	"math"
	"testing"
)

func TestFadeInAmount(t *testing.T) {
	tests := []struct {
		elapsed, window float64
		want            float32
	}{
		{0, 1000, 1},
		{500, 1000, 0.75},
		{1000, 1000, 0},
		{5000, 1000, 0},
		{-10, 1000, 1},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := FadeInAmount(tt.elapsed, tt.window); got != tt.want {
			t.Errorf("FadeInAmount(%v, %v) = %v, want %v", tt.elapsed, tt.window, got, tt.want)
		}
	}
}

func TestFadeOutAmount(t *testing.T) {
	if got := FadeOutAmount(0, 1000, 0.9); got != 0 {
		t.Errorf("zero delta faded by %v", got)
	}
	if got := FadeOutAmount(1000, 1000, 0.9); math.Abs(float64(got)-0.9) > 1e-6 {
		t.Errorf("one window faded by %v, want 0.9", got)
	}
	if got := FadeOutAmount(16, 1000, 0); got != 0 {
		t.Errorf("zero percent faded by %v", got)
	}
	if got := FadeOutAmount(16, 1000, 1); got != 1 {
		t.Errorf("full percent faded by %v", got)
	}
}

func TestFadeOutFrameRateIndependent(t *testing.T) {
	// What survives two 8ms frames must match one 16ms frame.
	for _, percent := range []float64{0.1, 0.5, 0.9, 0.999} {
		a8 := float64(FadeOutAmount(8, 1000, percent))
		a16 := float64(FadeOutAmount(16, 1000, percent))

		twoFrames := (1 - a8) * (1 - a8)
		oneFrame := 1 - a16
		if math.Abs(twoFrames-oneFrame) > 1e-6 {
			t.Errorf("percent %v: two frames keep %v, one frame keeps %v", percent, twoFrames, oneFrame)
		}
	}
}
