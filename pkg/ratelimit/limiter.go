package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter - rate limiting interfeysi (login urinishlarini cheklash uchun)
type Limiter interface {
	Allow(key string) (bool, error)
	Reset(key string) error
}

// RedisLimiter - Redis asosidagi taqsimlangan limiter
type RedisLimiter struct {
	client *redis.Client
	limit  int           // oynada ruxsat etilgan so'rovlar soni
	window time.Duration // vaqt oynasi
}

// NewRedisLimiter - yangi Redis limiter
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow - so'rovga ruxsat berilganmi
func (l *RedisLimiter) Allow(key string) (bool, error) {
	ctx := context.Background()
	redisKey := fmt.Sprintf("dern:ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis incr xatosi: %w", err)
	}

	// Birinchi so'rovda TTL o'rnatiladi
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("redis expire xatosi: %w", err)
		}
	}

	if count > int64(l.limit) {
		ttl, _ := l.client.TTL(ctx, redisKey).Result()
		return false, fmt.Errorf("juda ko'p urinish, %v dan keyin qayta urining", ttl)
	}
	return true, nil
}

// Reset - kalit uchun hisoblagichni tozalash
func (l *RedisLimiter) Reset(key string) error {
	ctx := context.Background()
	return l.client.Del(ctx, fmt.Sprintf("dern:ratelimit:%s", key)).Err()
}

// MemoryLimiter - xotiradagi limiter (bitta instans uchun)
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter - yangi xotira limiter
func NewMemoryLimiter(rps int, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow - so'rovga ruxsat berilganmi
func (l *MemoryLimiter) Allow(key string) (bool, error) {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	if !limiter.Allow() {
		return false, fmt.Errorf("juda ko'p urinish")
	}
	return true, nil
}

// Reset - kalit uchun limiterni tozalash
func (l *MemoryLimiter) Reset(key string) error {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
	return nil
}

// Cleanup - eski limiterlarni tozalash (davriy chaqirish uchun)
func (l *MemoryLimiter) Cleanup() {
	l.mu.Lock()
	l.limiters = make(map[string]*rate.Limiter)
	l.mu.Unlock()
}
