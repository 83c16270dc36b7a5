package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketSet(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	now := time.Now()

	t.Run("reports wait until next token", func(t *testing.T) {
		s := newBucketSet(cfg)
		for range 2 {
			ok, _ := s.take("a", now)
			require.True(t, ok)
		}

		ok, wait := s.take("a", now)
		require.False(t, ok)
		require.InDelta(t, 30*time.Second, wait, float64(time.Second))

		ok, _ = s.take("a", now.Add(31*time.Second))
		require.True(t, ok)
	})

	t.Run("drops idle buckets on sweep", func(t *testing.T) {
		s := newBucketSet(cfg)
		s.take("idle", now)
		s.take("busy", now)

		later := now.Add(90 * time.Second)
		s.take("busy", later)
		s.take("busy", later.Add(45*time.Second))

		require.NotContains(t, s.buckets, "idle")
		require.Contains(t, s.buckets, "busy")
	})
}
