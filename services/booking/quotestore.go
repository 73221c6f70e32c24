package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"courtside/models"
)

// QuoteStore holds priced quotes between "show me the price" and "book it".
// A quote that expires or disappears simply forces a fresh computation; it is
// never a correctness problem because creation re-validates anyway.
type QuoteStore interface {
	Save(ctx context.Context, quote *models.Quote, ttl time.Duration) error
	Get(ctx context.Context, quoteID string) (*models.Quote, error)
	Delete(ctx context.Context, quoteID string) error
}

// ErrQuoteNotFound is returned for unknown or expired quote IDs.
var ErrQuoteNotFound = fmt.Errorf("quote not found or expired")

// RedisQuoteStore backs QuoteStore with a dedicated Redis DB.
type RedisQuoteStore struct {
	client *redis.Client
}

func NewRedisQuoteStore(client *redis.Client) *RedisQuoteStore {
	return &RedisQuoteStore{client: client}
}

func quoteKey(id string) string { return "quote:" + id }

func (s *RedisQuoteStore) Save(ctx context.Context, quote *models.Quote, ttl time.Duration) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	return s.client.Set(ctx, quoteKey(quote.QuoteID), data, ttl).Err()
}

func (s *RedisQuoteStore) Get(ctx context.Context, quoteID string) (*models.Quote, error) {
	data, err := s.client.Get(ctx, quoteKey(quoteID)).Result()
	if err == redis.Nil {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	var quote models.Quote
	if err := json.Unmarshal([]byte(data), &quote); err != nil {
		return nil, fmt.Errorf("failed to parse cached quote: %w", err)
	}
	return &quote, nil
}

func (s *RedisQuoteStore) Delete(ctx context.Context, quoteID string) error {
	return s.client.Del(ctx, quoteKey(quoteID)).Err()
}
