package trace

import "fmt"

// Recorder accumulates the steps and log lines of one algorithm run.
// A Recorder is owned by a single run and is not safe for concurrent use.
type Recorder struct {
	algorithm string
	logs      []string
	steps     []Step
}

// NewRecorder returns an empty Recorder for the named algorithm.
func NewRecorder(algorithm string) *Recorder {
	return &Recorder{algorithm: algorithm, logs: []string{}, steps: []Step{}}
}

// Step appends a step; snap is deep-copied.
func (r *Recorder) Step(msg string, snap Snapshot) {
	r.steps = append(r.steps, Step{Message: msg, Snapshot: snap.Clone()})
}

// Log appends one log line.
func (r *Recorder) Log(msg string) {
	r.logs = append(r.logs, msg)
}

// Logf appends a formatted log line.
func (r *Recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

// Narrate records msg both as a log line and as a step.
func (r *Recorder) Narrate(msg string, snap Snapshot) {
	r.Log(msg)
	r.Step(msg, snap)
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Result wraps what has been recorded so far into a Result. The algorithm
// fills its named outputs on the returned value.
func (r *Recorder) Result() *Result {
	return &Result{Algorithm: r.algorithm, Logs: r.logs, Steps: r.steps}
}
