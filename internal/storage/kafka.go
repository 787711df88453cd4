package storage

import (
	"context"
	"encoding/json"

	"freshcart/internal/domain"
	"freshcart/internal/service"

	"github.com/segmentio/kafka-go"
)

type KafkaDraftPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaDraftPublisher(writer *kafka.Writer) *KafkaDraftPublisher {
	return &KafkaDraftPublisher{Writer: writer}
}

func (p *KafkaDraftPublisher) PublishDraft(ctx context.Context, draft *domain.OrderGroupDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(draft.UserID),
		Value: payload,
	})
}

var _ service.DraftPublisher = (*KafkaDraftPublisher)(nil)
