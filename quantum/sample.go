package quantum

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Histogram counts measured basis indices over many independent shots.
type Histogram struct {
	NumQubits int
	Shots     int
	Counts    []int // indexed by basis index
}

// Label returns the basis-state label of index.
func (h *Histogram) Label(index int) string {
	results, err := ResultsFromIndex(index, h.NumQubits)
	if err != nil {
		return "|?>"
	}
	return BasisLabel(results)
}

// Frequency returns the observed fraction of shots that produced index.
func (h *Histogram) Frequency(index int) float64 {
	if h.Shots == 0 || index < 0 || index >= len(h.Counts) {
		return 0
	}
	return float64(h.Counts[index]) / float64(h.Shots)
}

// SampleConfig controls a batch of shots.
type SampleConfig struct {
	Shots   int
	Seed    uint64
	Workers int // defaults to GOMAXPROCS
}

// Sample runs c Shots times. Shot i allocates its own register and draws
// from NewSource(Seed+i), so a batch is reproducible regardless of worker
// count.
func (s *Simulator) Sample(ctx context.Context, c *Circuit, cfg SampleConfig) (*Histogram, error) {
	if cfg.Shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", cfg.Shots)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]int, cfg.Shots)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for shot := range cfg.Shots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results, err := s.Run(c, NewSource(cfg.Seed+uint64(shot)))
			if err != nil {
				return fmt.Errorf("shot %d: %w", shot, err)
			}
			outcomes[shot] = BasisIndex(results)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h := &Histogram{NumQubits: c.NumQubits, Shots: cfg.Shots, Counts: make([]int, 1<<c.NumQubits)}
	for _, idx := range outcomes {
		h.Counts[idx]++
	}
	s.logger.Info().Int("qubits", c.NumQubits).Int("shots", cfg.Shots).Int("workers", workers).Msg("sampling complete")
	return h, nil
}

// SampleQFT samples the n-qubit QFT circuit.
func (s *Simulator) SampleQFT(ctx context.Context, n int, cfg SampleConfig) (*Histogram, error) {
	c, err := QFT(n, WithReversal(s.reverse))
	if err != nil {
		return nil, err
	}
	return s.Sample(ctx, c, cfg)
}
