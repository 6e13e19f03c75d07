package testutil

import (
	"context"
	"sync"
)

// Call is one script a RecordingRunner was asked to run.
type Call struct {
	Dir    string
	Script string
}

// RecordingRunner records scripts instead of executing them.
//
// Scripts listed in Fail return the mapped error after being recorded.
type RecordingRunner struct {
	Fail map[string]error

	mu    sync.Mutex
	calls []Call
}

// Run records the call. Implements composer.Runner.
func (r *RecordingRunner) Run(_ context.Context, dir, script string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Dir: dir, Script: script})
	return r.Fail[script]
}

// Calls returns the recorded calls in order.
func (r *RecordingRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Scripts returns the recorded scripts in order.
func (r *RecordingRunner) Scripts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Script
	}
	return out
}
