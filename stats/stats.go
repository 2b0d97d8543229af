// Package stats collects claim latency quantiles off the hot path.
package stats

import (
	"time"

	"github.com/bmizerany/perks/quantile"
)

type Stats struct {
	stream  *quantile.Stream
	samples chan float64
	done    chan struct{}
}

func New() *Stats {
	samples := make(chan float64, 64)
	stream := quantile.NewTargeted(0.5, 0.95, 0.99)
	done := make(chan struct{})

	go func() {
		for s := range samples {
			stream.Insert(s)
		}
		done <- struct{}{}
	}()

	return &Stats{
		samples: samples,
		stream:  stream,
		done:    done,
	}
}

// Observe records one sample. It must not be called after Close.
func (s *Stats) Observe(d time.Duration) {
	s.samples <- float64(d.Nanoseconds())
}

// Query is only meaningful after Close.
func (s *Stats) Query(quantile float64) time.Duration {
	if s.stream.Count() == 0 {
		return 0
	}
	return time.Duration(s.stream.Query(quantile))
}

// Count is only meaningful after Close.
func (s *Stats) Count() int {
	return s.stream.Count()
}

// Close stops accepting samples and waits for the pending ones to land.
func (s *Stats) Close() {
	close(s.samples)
	<-s.done
}
