package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 100 {
		t.Fatalf("first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("zero duration changed gen/sec to %v", s.GenerationsPerSecond)
	}
	if s.Runtime() < 0 {
		t.Fatal("negative runtime")
	}
}

func TestStatsAverageAfterExtinctFirstSample(t *testing.T) {
	s := NewStats()

	s.Update(0, 0, 0)
	s.Update(1, 100, 0)
	if math.Abs(s.AveragePopulation-10) > 1e-9 {
		t.Fatalf("average = %v, want 10 (the empty first sample must still count)", s.AveragePopulation)
	}
}
