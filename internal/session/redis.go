package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dern:session:"

// RedisStore - Redis asosidagi sessiya ombori (bir nechta gateway instansi uchun).
// Sessiyalar TTL siz saqlanadi: yaroqlilik backend /check-auth orqali tekshiriladi.
type RedisStore struct {
	client *redis.Client

	subMu       sync.Mutex
	subscribers map[int]func(id string)
	nextSub     int
}

// NewRedisStore - yangi Redis ombori
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:      client,
		subscribers: make(map[int]func(id string)),
	}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// Get - sessiyani olish
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get xatosi: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sessiya parse xatosi: %w", err)
	}
	return &s, nil
}

// Save - sessiyani saqlash
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("sessiya marshal xatosi: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(s.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set xatosi: %w", err)
	}
	r.notify(s.ID)
	return nil
}

// Delete - sessiyani o'chirish
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del xatosi: %w", err)
	}
	r.notify(id)
	return nil
}

// Subscribe - o'zgarishlarga obuna (faqat shu instans ichida)
func (r *RedisStore) Subscribe(fn func(id string)) func() {
	r.subMu.Lock()
	key := r.nextSub
	r.nextSub++
	r.subscribers[key] = fn
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		delete(r.subscribers, key)
		r.subMu.Unlock()
	}
}

func (r *RedisStore) notify(id string) {
	r.subMu.Lock()
	fns := make([]func(string), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		fns = append(fns, fn)
	}
	r.subMu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}
