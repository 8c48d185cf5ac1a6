package tracker

import (
	"context"
	"sync"
)

// Step names one stage of the generation pipeline. The generator
// reports each step before executing it, so after a failure the
// tracker's current step identifies where the run died.
type Step string

const (
	StepSetup        Step = "setup"
	StepCopyMusic    Step = "copy_music"
	StepDescriptor   Step = "descriptor"
	StepLocalisation Step = "localisation"
	StepInterface    Step = "interface"
	StepMusicScript  Step = "music_script"
	StepAssetFiles   Step = "asset_files"
	StepDone         Step = "done"
)

// Steps lists all pipeline steps in execution order.
var Steps = []Step{
	StepSetup,
	StepCopyMusic,
	StepDescriptor,
	StepLocalisation,
	StepInterface,
	StepMusicScript,
	StepAssetFiles,
	StepDone,
}

// Index returns the position of s in the pipeline, or -1 for an
// unknown step.
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Tracker records which pipeline step is currently executing.
type Tracker interface {
	// SetCurrentStep records s as the executing step. The generator
	// awaits completion before starting the step's work.
	SetCurrentStep(ctx context.Context, s Step) error
}

// Memory is a Tracker holding a single current-step field. It is safe
// for concurrent reads; the pipeline is the only writer.
type Memory struct {
	mu      sync.RWMutex
	current Step
}

// NewMemory creates an empty in-memory tracker.
func NewMemory() *Memory {
	return &Memory{}
}

// SetCurrentStep implements Tracker.
func (m *Memory) SetCurrentStep(ctx context.Context, s Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return nil
}

// CurrentStep returns the last recorded step, or "" before any.
func (m *Memory) CurrentStep() Step {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Multi fans SetCurrentStep out to several trackers in order. The
// first error aborts; the generator treats tracker failures like any
// other step failure.
type Multi []Tracker

// SetCurrentStep implements Tracker.
func (m Multi) SetCurrentStep(ctx context.Context, s Step) error {
	for _, t := range m {
		if err := t.SetCurrentStep(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
