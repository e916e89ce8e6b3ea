package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per client key and forgets idle clients.
type Limiter struct {
	expiry   time.Duration
	burst    int
	limitRPS float64
	clients  map[string]*clientLimiter
	mu       sync.Mutex
	stop     chan struct{}
	once     sync.Once
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewLimiter(burst int, expiry time.Duration, limitRPS float64) *Limiter {
	lm := &Limiter{
		expiry:   expiry,
		limitRPS: limitRPS,
		burst:    burst,
		clients:  make(map[string]*clientLimiter),
		stop:     make(chan struct{}),
	}
	go lm.sweep(time.Minute)
	return lm
}

func (l *Limiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[id]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.limitRPS), l.burst)}
		l.clients[id] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(time.Now())
		}
	}
}

func (l *Limiter) evictIdle(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, v := range l.clients {
		if now.Sub(v.lastAccess) > l.expiry {
			delete(l.clients, id)
		}
	}
}
