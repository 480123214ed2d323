package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limit allows Burst events per Window, refilled evenly across the window.
type Limit struct {
	Burst  int
	Window time.Duration
}

func (l Limit) every() rate.Limit {
	if l.Burst <= 0 || l.Window <= 0 {
		return rate.Inf
	}
	return rate.Every(l.Window / time.Duration(l.Burst))
}

// DefaultLimits are applied to actions without an explicit entry.
var DefaultLimits = map[string]Limit{
	"send_message":        {Burst: 10, Window: time.Minute},
	"create_conversation": {Burst: 5, Window: time.Hour},
	"search_users":        {Burst: 30, Window: time.Minute},
}

var fallbackLimit = Limit{Burst: 20, Window: time.Minute}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per user and action.
type RateLimiter struct {
	limits  map[string]Limit
	buckets map[string]*bucket
	mutex   sync.Mutex
	now     func() time.Time
}

func NewRateLimiter(limits map[string]Limit) *RateLimiter {
	merged := make(map[string]Limit, len(DefaultLimits)+len(limits))
	for action, l := range DefaultLimits {
		merged[action] = l
	}
	for action, l := range limits {
		merged[action] = l
	}

	return &RateLimiter{
		limits:  merged,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow consumes a token for the user's action. When none is available it
// reports how long until the next one.
func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	now := rl.now()
	b := rl.bucket(userID+":"+action, action, now)

	reservation := b.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, rl.limitFor(action).Window
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (rl *RateLimiter) bucket(key, action string, now time.Time) *bucket {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		l := rl.limitFor(action)
		b = &bucket{limiter: rate.NewLimiter(l.every(), l.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

func (rl *RateLimiter) limitFor(action string) Limit {
	if l, ok := rl.limits[action]; ok {
		return l
	}
	return fallbackLimit
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > maxIdle {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-ctx.Done():
				return
			}
		}
	}()
}
