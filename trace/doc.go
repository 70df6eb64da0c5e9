// Package trace records the replayable narration of an algorithm run.
//
// What
//
//   - Snapshot: closed record of the optional state fields a step may carry
//     (current node or edge, visited set, queue, stack, heap, distances, MST
//     edges, flow map, path, visited edges, colour classes).
//   - Step: one micro-event, a message plus a Snapshot.
//   - Recorder: append-only accumulator of steps and log lines.
//   - Result: the steps and logs of a run plus the named outputs of the
//     algorithm that produced it.
//
// Determinism
//
//	Recorder.Step deep-copies the snapshot it is given, so algorithms may keep
//	mutating their working maps and slices after recording. Replaying Steps in
//	order reproduces the run exactly.
//
// The recorder is purely observational: nothing it returns is ever used by an
// algorithm to decide what to do next.
package trace
