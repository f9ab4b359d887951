package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotName(t *testing.T) {
	got := snapshotName(time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC))
	if want := "glflame-20240309-140507.png"; got != want {
		t.Errorf("snapshotName() = %q, want %q", got, want)
	}
}

func TestNewSourcesRepeatable(t *testing.T) {
	draw := func() []int {
		var out []int
		for _, src := range newSources(42, 3) {
			for i := 0; i < 8; i++ {
				out = append(out, src.IntN(6))
			}
		}
		return out
	}

	first, second := draw(), draw()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different draws (-first +second):\n%s", diff)
	}
}

func TestNewSourcesWorkers(t *testing.T) {
	if got := len(newSources(1, 5)); got != 5 {
		t.Errorf("len(newSources(1, 5)) = %v, want 5", got)
	}
	if got := len(newSources(1, 0)); got < 1 {
		t.Errorf("len(newSources(1, 0)) = %v, want at least 1", got)
	}
}
