package service

import (
	"context"
	"encoding/json"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and writes each lifecycle event
// to the structured log.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLog    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLog logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLog:    sysLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLog.Warn("activity", "dropping malformed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.sysLog.Info("activity", payload.Event, map[string]interface{}{
		"user_id":     payload.UserId.String(),
		"subject_id":  payload.SubjectId.String(),
		"journal_id":  payload.JournalId.String(),
		"occurred_at": payload.OccurredAt,
	})
	msg.Ack()
}
