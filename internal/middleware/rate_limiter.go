package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a fixed-window counter keyed by client IP. Each middleware
// gets its own instance, so the login limiter and the global limiter keep
// separate windows for the same IP.
type limiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	clients map[string]*windowCount
}

type windowCount struct {
	count   int
	resetAt time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	l := &limiter{
		window:  window,
		limit:   limit,
		clients: make(map[string]*windowCount),
	}
	go l.purgeLoop()
	return l
}

// allow counts one request from ip and reports whether it stays under the
// limit for the current window.
func (l *limiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	wc, ok := l.clients[ip]
	if !ok || now.After(wc.resetAt) {
		wc = &windowCount{resetAt: now.Add(l.window)}
		l.clients[ip] = wc
	}
	wc.count++
	return wc.count <= l.limit, wc.resetAt
}

// purgeLoop drops expired windows so IPs that never return do not
// accumulate in the map.
func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, wc := range l.clients {
			if now.After(wc.resetAt) {
				delete(l.clients, ip)
				purged++
			}
		}
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter entries purged")
		}
	}
}

// RateLimiter caps requests per IP over the given window. Applied globally.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		ok, resetAt := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", resetAt.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.Response{OK: false, Message: "Demasiadas solicitudes. Intente nuevamente en un momento."})
			return
		}
		c.Next()
	}
}

// LoginRateLimiter is a tighter per-minute cap for the login endpoint,
// slowing down credential stuffing.
func LoginRateLimiter(limit int) gin.HandlerFunc {
	l := newLimiter(limit, time.Minute)
	return func(c *gin.Context) {
		ok, _ := l.allow(c.ClientIP())
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.Response{OK: false, Message: "Demasiados intentos de login. Intente en 1 minuto."})
			return
		}
		c.Next()
	}
}
