package service

import (
	"context"
	"encoding/json"

	"pomodoro-bot-be/internal/pkg/logger"
	"pomodoro-bot-be/pkg/timer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ITimerConsumerService feeds fired timers back into the dispatcher as
// synthetic timer-done events.
type ITimerConsumerService interface {
	Consume(ctx context.Context) error
}

type timerConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	dispatcher IDispatcherService
	logger     logger.ILogger
}

func NewTimerConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	dispatcher IDispatcherService,
	sysLogger logger.ILogger,
) ITimerConsumerService {
	return &timerConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		dispatcher: dispatcher,
		logger:     sysLogger,
	}
}

func (cs *timerConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *timerConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload timer.DonePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("timer-consumer", "failed to unmarshal timer message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Action != timer.DoneAction {
		cs.logger.Warn("timer-consumer", "unexpected timer message action", map[string]interface{}{"action": payload.Action})
		msg.Ack()
		return
	}

	cs.logger.Info("timer-consumer", "timer fired", map[string]interface{}{"chat_id": payload.ChatID})
	cs.dispatcher.HandleTimerDone(ctx, payload.ChatID)
	msg.Ack()
}
