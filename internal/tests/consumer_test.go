package tests

import (
	"context"
	"errors"
	"testing"

	"freshcart/internal/domain"
	"freshcart/internal/mocks"
	"freshcart/internal/service"

	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessOrderPlaced(t *testing.T) {
	tests := []struct {
		name         string
		event        domain.OrderEvent
		prepareMocks func(carts *mocks.CartStore, discounts *mocks.DiscountStore)
	}{
		{
			name:  "success",
			event: domain.OrderEvent{Type: "order_placed", UserID: "u1", OrderID: 42},
			prepareMocks: func(carts *mocks.CartStore, discounts *mocks.DiscountStore) {
				carts.On("Delete", mock.Anything, "u1").Return(nil)
				discounts.On("Delete", mock.Anything, "u1").Return(nil)
			},
		},
		{
			name:  "cart_delete_error_stops_processing",
			event: domain.OrderEvent{Type: "order_placed", UserID: "u1", OrderID: 42},
			prepareMocks: func(carts *mocks.CartStore, discounts *mocks.DiscountStore) {
				carts.On("Delete", mock.Anything, "u1").Return(errors.New("redis down"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartStore(t)
			discounts := mocks.NewDiscountStore(t)
			testCase.prepareMocks(carts, discounts)

			consumer := &service.Consumer{Carts: carts, Discounts: discounts}
			consumer.ProcessOrderPlaced(context.Background(), testCase.event)
			carts.AssertExpectations(t)
			discounts.AssertExpectations(t)
		})
	}
}

func TestConsumer_IgnoresUnknownEvents(t *testing.T) {
	carts := mocks.NewCartStore(t)
	discounts := mocks.NewDiscountStore(t)

	consumer := &service.Consumer{Carts: carts, Discounts: discounts}
	consumer.ProcessOrderPlaced(context.Background(), domain.OrderEvent{Type: "order_cancelled", UserID: "u1"})
	consumer.ProcessOrderPlaced(context.Background(), domain.OrderEvent{Type: "order_placed"})

	carts.AssertNotCalled(t, "Delete")
	discounts.AssertNotCalled(t, "Delete")
}
