// Package redisstore keeps idempotency keys for order creation in Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// IdempotencyStore stores "pending" while a request holds a key and the
// created order id once it completes. Every entry expires after ttl.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, prefix string, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (*kernel.UUID, error) {
	k := s.key(key)

	// A key that expires between SetNX and Get is simply reserved again.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, k, pendingMarker, s.ttl).Result()
		if err != nil {
			return nil, errs.NewDependencyFailedError("redis", err)
		}
		if ok {
			return nil, nil
		}

		value, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, errs.NewDependencyFailedError("redis", err)
		}

		if value == pendingMarker {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("Idempotency-Key", key,
				errors.New("a request with this key is still in progress"))
		}

		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, fmt.Errorf("corrupt idempotency entry %s: %w", k, err)
		}
		return &id, nil
	}

	return nil, errs.NewDependencyFailedError("redis", errors.New("idempotency key kept expiring"))
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, orderID kernel.UUID) error {
	if err := s.client.Set(ctx, s.key(key), orderID.String(), s.ttl).Err(); err != nil {
		return errs.NewDependencyFailedError("redis", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errs.NewDependencyFailedError("redis", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return fmt.Sprintf("%s:idempotency:%s", s.prefix, key)
}
