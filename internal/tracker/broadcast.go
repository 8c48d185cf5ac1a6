package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicSteps is the pub/sub topic step updates are published on.
const TopicSteps = "yt2hoi4.generation.steps"

// StepEvent is the payload published for every step transition.
type StepEvent struct {
	// RunID identifies one generation run; all events of a run share
	// it, so observers can tell interleaved runs apart.
	RunID string `json:"run_id"`

	// Mod is the mod name the run is generating.
	Mod string `json:"mod"`

	// Step is the step now executing.
	Step Step `json:"step"`

	// Index is the step's position in the pipeline.
	Index int `json:"index"`

	// Total is the number of pipeline steps.
	Total int `json:"total"`

	// At is when the step started.
	At time.Time `json:"at"`
}

// Broadcast is a Tracker that publishes step transitions on an
// in-process watermill pub/sub, so observers (the TUI, a future
// resume-from-step feature) can follow a run without the generator
// knowing about them.
type Broadcast struct {
	pubSub *gochannel.GoChannel
	runID  string
	mod    string
}

// NewBroadcast creates a Broadcast tracker for one run of the given
// mod. A fresh run ID is minted per tracker.
func NewBroadcast(mod string) *Broadcast {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: int64(len(Steps))},
		watermill.NopLogger{},
	)
	return &Broadcast{
		pubSub: pubSub,
		runID:  uuid.NewString(),
		mod:    mod,
	}
}

// RunID returns the run identifier stamped on every published event.
func (b *Broadcast) RunID() string {
	return b.runID
}

// SetCurrentStep implements Tracker by publishing a StepEvent.
func (b *Broadcast) SetCurrentStep(ctx context.Context, s Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := StepEvent{
		RunID: b.runID,
		Mod:   b.mod,
		Step:  s,
		Index: s.Index(),
		Total: len(Steps),
		At:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal step event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := b.pubSub.Publish(TopicSteps, msg); err != nil {
		return fmt.Errorf("publish step %s: %w", s, err)
	}
	return nil
}

// Subscribe returns a channel of step events for this run. Subscribe
// before the run starts; the gochannel pub/sub does not replay.
func (b *Broadcast) Subscribe(ctx context.Context) (<-chan StepEvent, error) {
	msgs, err := b.pubSub.Subscribe(ctx, TopicSteps)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", TopicSteps, err)
	}

	events := make(chan StepEvent)
	go func() {
		defer close(events)
		for msg := range msgs {
			var event StepEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				msg.Nack()
				continue
			}
			msg.Ack()
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close shuts the underlying pub/sub down, closing subscriber
// channels.
func (b *Broadcast) Close() error {
	return b.pubSub.Close()
}
