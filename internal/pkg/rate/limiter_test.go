//go:build unit

package rate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	t.Run("burst is spent then refused", func(t *testing.T) {
		l := NewLimiter(2, time.Minute, 1.0/3600)
		defer l.Stop()

		assert.True(t, l.Allow("user-1"))
		assert.True(t, l.Allow("user-1"))
		assert.False(t, l.Allow("user-1"))
	})

	t.Run("clients are independent", func(t *testing.T) {
		l := NewLimiter(1, time.Minute, 1.0/3600)
		defer l.Stop()

		assert.True(t, l.Allow("user-1"))
		assert.False(t, l.Allow("user-1"))
		assert.True(t, l.Allow("user-2"))
	})

	t.Run("idle clients are evicted", func(t *testing.T) {
		l := NewLimiter(1, time.Minute, 1.0/3600)
		defer l.Stop()

		assert.True(t, l.Allow("user-1"))
		l.evictIdle(time.Now().Add(2 * time.Minute))
		assert.True(t, l.Allow("user-1"))
	})
}
