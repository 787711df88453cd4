package service

import "context"

type WishlistService struct {
	store WishlistStore
}

func NewWishlistService(store WishlistStore) *WishlistService {
	return &WishlistService{store: store}
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]int64, error) {
	return s.store.Load(ctx, userID)
}

func (s *WishlistService) Contains(ctx context.Context, userID string, productID int64) (bool, error) {
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *WishlistService) Add(ctx context.Context, userID string, productID int64) error {
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	return s.store.Save(ctx, userID, append(ids, productID))
}

func (s *WishlistService) Remove(ctx context.Context, userID string, productID int64) error {
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return s.store.Save(ctx, userID, kept)
}

var _ WishlistServiceInterface = (*WishlistService)(nil)
