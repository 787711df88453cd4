package service

import (
	"context"
	"encoding/json"
	"log"

	"freshcart/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer clears a user's cart and discount once the external order service confirms
// the order was persisted.
type Consumer struct {
	Reader    *kafka.Reader
	Carts     CartStore
	Discounts DiscountStore
}

func NewConsumer(reader *kafka.Reader, carts CartStore, discounts DiscountStore) *Consumer {
	return &Consumer{
		Reader:    reader,
		Carts:     carts,
		Discounts: discounts,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order-events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_placed" {
			c.ProcessOrderPlaced(ctx, event)
		}
	}
}

func (c *Consumer) ProcessOrderPlaced(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order_placed" || event.UserID == "" {
		return
	}
	log.Printf("Processing order_placed: UserID=%s, OrderID=%d", event.UserID, event.OrderID)

	if err := c.Carts.Delete(ctx, event.UserID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", event.UserID, err)
		return
	}

	if err := c.Discounts.Delete(ctx, event.UserID); err != nil {
		log.Printf("Error clearing discount for user %s: %v", event.UserID, err)
		return
	}

	log.Printf("Cleared cart for user %s after order %d", event.UserID, event.OrderID)
}
