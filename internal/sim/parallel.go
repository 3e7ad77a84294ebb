package sim

import (
	"context"
	"sync"
)

// Ensemble runs one scenario for several coil turn counts in parallel.
type Ensemble struct {
	runner *Runner
	turns  []int
}

func NewEnsemble(r *Runner, turns []int) *Ensemble {
	return &Ensemble{runner: r, turns: turns}
}

func (e *Ensemble) Run(ctx context.Context, sc Scenario) ([]*Trace, error) {
	results := make([]*Trace, len(e.turns))
	errs := make([]error, len(e.turns))

	var wg sync.WaitGroup
	for i, n := range e.turns {
		wg.Add(1)
		go func(idx, turns int) {
			defer wg.Done()

			scCopy := sc
			scCopy.Turns = turns
			results[idx], errs[idx] = e.runner.Run(ctx, scCopy)
		}(i, n)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
