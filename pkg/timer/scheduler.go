package timer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Scheduler is an in-process one-shot timer service. When a timer fires it
// publishes a DonePayload on the configured topic; the consumer service
// feeds that back into the dispatcher as a synthetic event. Pending timers
// do not survive a restart, which is accepted for a single-user bot.
type Scheduler struct {
	pubSub     *gochannel.GoChannel
	topic      string
	resolution time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewScheduler(pubSub *gochannel.GoChannel, topic string) *Scheduler {
	return NewSchedulerWithResolution(pubSub, topic, time.Minute)
}

// NewSchedulerWithResolution shortens the length of a scheduled "minute";
// tests use it to fire timers without waiting.
func NewSchedulerWithResolution(pubSub *gochannel.GoChannel, topic string, resolution time.Duration) *Scheduler {
	return &Scheduler{
		pubSub:     pubSub,
		topic:      topic,
		resolution: resolution,
		pending:    make(map[string]*time.Timer),
	}
}

func (s *Scheduler) CreateTimer(_ context.Context, chatID int64, minutes int) (string, error) {
	handle := fmt.Sprintf("pomodoro-%d-%s", chatID, uuid.NewString())

	s.mu.Lock()
	s.pending[handle] = time.AfterFunc(time.Duration(minutes)*s.resolution, func() {
		s.fire(handle, chatID)
	})
	s.mu.Unlock()

	return handle, nil
}

// CancelTimer stops a pending timer. Cancelling an unknown or already fired
// handle is a no-op.
func (s *Scheduler) CancelTimer(_ context.Context, handle string) error {
	if handle == "" {
		return nil
	}

	s.mu.Lock()
	t, ok := s.pending[handle]
	if ok {
		t.Stop()
		delete(s.pending, handle)
	}
	s.mu.Unlock()

	return nil
}

func (s *Scheduler) fire(handle string, chatID int64) {
	s.mu.Lock()
	delete(s.pending, handle)
	s.mu.Unlock()

	data, err := json.Marshal(DonePayload{Action: DoneAction, ChatID: chatID})
	if err != nil {
		log.Printf("[ERROR] Failed to marshal timer payload for chat %d: %v", chatID, err)
		return
	}

	if err := s.pubSub.Publish(s.topic, message.NewMessage(watermill.NewUUID(), data)); err != nil {
		log.Printf("[ERROR] Failed to publish timer-done for chat %d: %v", chatID, err)
	}
}

// PendingCount reports how many timers are currently scheduled.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
