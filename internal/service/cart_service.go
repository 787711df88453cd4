package service

import (
	"context"
	"errors"
	"log"
	"time"

	"freshcart/internal/domain"
)

type CartService struct {
	store       CartStore
	discounts   DiscountRevalidator
	generations *Generations
}

func NewCartService(store CartStore, discounts DiscountRevalidator, generations *Generations) *CartService {
	return &CartService{
		store:       store,
		discounts:   discounts,
		generations: generations,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return emptyCart(userID), nil
		}
		return nil, err
	}
	return cart, nil
}

// AddToCart increments the quantity for the product by one, creating the line at
// quantity 1 if absent. It always succeeds for a well-formed product.
func (s *CartService) AddToCart(ctx context.Context, userID string, product domain.Product) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if line, ok := cart.Lines[product.ID]; ok {
		line.Quantity++
	} else {
		cart.Lines[product.ID] = &domain.CartLine{Product: product, Quantity: 1}
	}

	return s.commit(ctx, userID, cart)
}

// UpdateQuantity applies delta to an existing line. A resulting quantity <= 0 removes
// the line entirely; an absent product id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID int64, delta int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	line, ok := cart.Lines[productID]
	if !ok {
		return cart, nil
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(cart.Lines, productID)
	}

	return s.commit(ctx, userID, cart)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}
	if s.discounts != nil {
		if err := s.discounts.Revalidate(ctx, userID, emptyCart(userID)); err != nil {
			log.Printf("discount revalidation after clear failed for user %s: %v", userID, err)
		}
	}
	s.generations.Bump(userID)
	return nil
}

func (s *CartService) commit(ctx context.Context, userID string, cart *domain.Cart) (*domain.Cart, error) {
	cart.Recompute()
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}

	// The frozen discount amount is never reused across cart changes.
	if s.discounts != nil {
		if err := s.discounts.Revalidate(ctx, userID, cart); err != nil {
			log.Printf("discount revalidation failed for user %s: %v", userID, err)
		}
	}

	s.generations.Bump(userID)
	return cart, nil
}

func emptyCart(userID string) *domain.Cart {
	return &domain.Cart{
		UserID:    userID,
		Lines:     make(map[int64]*domain.CartLine),
		UpdatedAt: time.Now(),
	}
}

var _ CartServiceInterface = (*CartService)(nil)
