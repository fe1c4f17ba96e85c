package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 按 key 记录窗口内的请求时间
type slidingWindow struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	hits      map[string][]time.Time
	lastSweep time.Time
}

func newSlidingWindow(max int, window time.Duration) *slidingWindow {
	return &slidingWindow{max: max, window: window, hits: make(map[string][]time.Time)}
}

// allow 记录一次请求，超出窗口上限返回 false
func (s *slidingWindow) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 每个窗口顺带清理一次，无需后台协程
	if now.Sub(s.lastSweep) >= s.window {
		s.sweepLocked(now)
	}

	recent := prune(s.hits[key], now.Add(-s.window))
	if len(recent) >= s.max {
		s.hits[key] = recent
		return false
	}
	s.hits[key] = append(recent, now)
	return true
}

// sweep 清理过期记录
func (s *slidingWindow) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
}

func (s *slidingWindow) sweepLocked(now time.Time) {
	s.lastSweep = now
	cutoff := now.Add(-s.window)
	for key, ts := range s.hits {
		recent := prune(ts, cutoff)
		if len(recent) == 0 {
			delete(s.hits, key)
		} else {
			s.hits[key] = recent
		}
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// LoginRateLimit 登录/注册接口限流中间件
// 每 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(maxAttempts, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "尝试过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}
