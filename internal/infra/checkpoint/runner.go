// Package checkpoint memoizes named step results per run, so that a
// redelivered trigger resumes a run without recomputing the phases that
// already finished. State is in-process; a process restart replays the run
// from the first step, which the engine's idempotent effects tolerate.
package checkpoint

import (
	"context"
	"sync"
)

type Store struct {
	mu   sync.Mutex
	runs map[string]map[string]any
}

func NewStore() *Store {
	return &Store{runs: make(map[string]map[string]any)}
}

func (s *Store) get(runID, step string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps, ok := s.runs[runID]
	if !ok {
		return nil, false
	}
	v, ok := steps[step]
	return v, ok
}

func (s *Store) put(runID, step string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runs[runID] == nil {
		s.runs[runID] = make(map[string]any)
	}
	s.runs[runID][step] = v
}

// Drop forgets a run's checkpoints once it has fully succeeded.
func (s *Store) Drop(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
}

// Runner executes named steps for one run. Only successful results are
// cached; a failed step runs again on the next attempt.
type Runner struct {
	store *Store
	runID string
}

func NewRunner(store *Store, runID string) *Runner {
	return &Runner{store: store, runID: runID}
}

func (r *Runner) Run(ctx context.Context, name string, fn func(context.Context) (any, error)) (any, error) {
	if v, ok := r.store.get(r.runID, name); ok {
		return v, nil
	}

	v, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	r.store.put(r.runID, name, v)
	return v, nil
}
