package storage

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"time"

	"freshcart/internal/domain"
	"freshcart/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	cartStorePrefix     = "cart-store:"
	discountStorePrefix = "discount-store:"
	wishlistStorePrefix = "wishlist-store:"

	cartSchemaVersion = 2
)

// cartDocument is the persisted cart shape. Lines are serialized as an ordered array
// (sorted by product id) rather than a map, so the wire format is deterministic and
// reconstruction into the in-memory map is explicit.
type cartDocument struct {
	SchemaVersion int               `json:"schema_version"`
	UserID        string            `json:"user_id"`
	Lines         []domain.CartLine `json:"lines"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// legacyCartDocument is the pre-versioning nested shape: product snapshots under "item"
// and quantities under "qty", keyed by stringified product id.
type legacyCartDocument struct {
	Items map[string]struct {
		Item domain.Product `json:"item"`
		Qty  int            `json:"qty"`
	} `json:"items"`
}

type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, userID string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, cartStorePrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, service.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	cart, migrated := decodeCart(userID, raw)

	// Persist the migrated shape so the legacy document is read at most once.
	if migrated {
		if err := s.Save(ctx, userID, cart); err != nil {
			log.Printf("could not persist migrated cart for user %s: %v", userID, err)
		}
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	doc := cartDocument{
		SchemaVersion: cartSchemaVersion,
		UserID:        userID,
		UpdatedAt:     cart.UpdatedAt,
	}
	for _, line := range cart.Lines {
		doc.Lines = append(doc.Lines, *line)
	}
	sort.Slice(doc.Lines, func(i, j int) bool {
		return doc.Lines[i].Product.ID < doc.Lines[j].Product.ID
	})

	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartStorePrefix+userID, payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, userID string) error {
	return s.Client.Del(ctx, cartStorePrefix+userID).Err()
}

// decodeCart reconstructs a cart from its persisted bytes, migrating legacy shapes
// forward. A completely unrecognized document degrades to an empty cart.
func decodeCart(userID string, raw []byte) (*domain.Cart, bool) {
	var doc cartDocument
	if err := json.Unmarshal(raw, &doc); err == nil && doc.SchemaVersion == cartSchemaVersion {
		cart := &domain.Cart{
			UserID:    userID,
			Lines:     make(map[int64]*domain.CartLine, len(doc.Lines)),
			UpdatedAt: doc.UpdatedAt,
		}
		for i := range doc.Lines {
			line := doc.Lines[i]
			if line.Quantity <= 0 {
				continue
			}
			cart.Lines[line.Product.ID] = &line
		}
		cart.Recompute()
		return cart, false
	}

	var legacy legacyCartDocument
	if err := json.Unmarshal(raw, &legacy); err == nil && len(legacy.Items) > 0 {
		cart := &domain.Cart{
			UserID: userID,
			Lines:  make(map[int64]*domain.CartLine, len(legacy.Items)),
		}
		for key, entry := range legacy.Items {
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil || entry.Qty <= 0 {
				continue
			}
			product := entry.Item
			product.ID = id
			cart.Lines[id] = &domain.CartLine{Product: product, Quantity: entry.Qty}
		}
		cart.Recompute()
		log.Printf("migrated legacy cart document for user %s (%d lines)", userID, len(cart.Lines))
		return cart, true
	}

	log.Printf("unrecognized cart document for user %s, starting from an empty cart", userID)
	return &domain.Cart{UserID: userID, Lines: make(map[int64]*domain.CartLine)}, true
}

type RedisDiscountStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDiscountStore(client *redis.Client, ttl time.Duration) *RedisDiscountStore {
	return &RedisDiscountStore{Client: client, TTL: ttl}
}

func (s *RedisDiscountStore) Load(ctx context.Context, userID string) (*domain.ActiveDiscount, error) {
	raw, err := s.Client.Get(ctx, discountStorePrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, service.ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}

	var discount domain.ActiveDiscount
	if err := json.Unmarshal(raw, &discount); err != nil {
		return nil, service.ErrDiscountNotFound
	}
	return &discount, nil
}

func (s *RedisDiscountStore) Save(ctx context.Context, userID string, discount *domain.ActiveDiscount) error {
	payload, err := json.Marshal(discount)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, discountStorePrefix+userID, payload, s.TTL).Err()
}

func (s *RedisDiscountStore) Delete(ctx context.Context, userID string) error {
	return s.Client.Del(ctx, discountStorePrefix+userID).Err()
}

type RedisWishlistStore struct {
	Client *redis.Client
}

func NewRedisWishlistStore(client *redis.Client) *RedisWishlistStore {
	return &RedisWishlistStore{Client: client}
}

func (s *RedisWishlistStore) Load(ctx context.Context, userID string) ([]int64, error) {
	members, err := s.Client.SMembers(ctx, wishlistStorePrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *RedisWishlistStore) Save(ctx context.Context, userID string, productIDs []int64) error {
	key := wishlistStorePrefix + userID
	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, key)
	if len(productIDs) > 0 {
		members := make([]interface{}, 0, len(productIDs))
		for _, id := range productIDs {
			members = append(members, strconv.FormatInt(id, 10))
		}
		pipe.SAdd(ctx, key, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

var (
	_ service.CartStore     = (*RedisCartStore)(nil)
	_ service.DiscountStore = (*RedisDiscountStore)(nil)
	_ service.WishlistStore = (*RedisWishlistStore)(nil)
)
