package utils

import "time"

// populationSmoothing is the weight of the newest sample in AveragePopulation.
const populationSmoothing = 0.1

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to produce.
// The population average is an exponential moving average seeded with the first sample,
// so an early extinct generation does not restart it.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
	}
	s.samples++
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
