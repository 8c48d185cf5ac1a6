// Package tracker records and broadcasts generation pipeline progress.
//
// The pipeline runs eight named steps in a fixed order (see Steps).
// Before executing a step the generator calls SetCurrentStep on its
// Tracker, so whatever step the tracker last saw is the step that was
// in flight when a run failed.
//
// Two implementations ship:
//
//   - Memory holds the current step in a single field, the minimal
//     contract external observers need.
//   - Broadcast additionally publishes every transition as a StepEvent
//     on an in-process watermill pub/sub, which is how the TUI follows
//     a run live.
//
// Multi composes trackers when both are wanted at once.
package tracker
