package memcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageCounter(t *testing.T) {
	t.Run("increments per key", func(t *testing.T) {
		counter := NewUsageCounter()

		assert.Equal(t, 1, counter.Increment("premium"))
		assert.Equal(t, 2, counter.Increment("premium"))
		assert.Equal(t, 1, counter.Increment("other"))
		assert.Equal(t, 2, counter.Count("premium"))
	})

	t.Run("reset clears a single key", func(t *testing.T) {
		counter := NewUsageCounter()
		counter.Increment("premium")
		counter.Increment("other")

		counter.Reset("premium")

		assert.Equal(t, 0, counter.Count("premium"))
		assert.Equal(t, 1, counter.Count("other"))
	})

	t.Run("snapshot copies state", func(t *testing.T) {
		counter := NewUsageCounter()
		counter.Increment("premium")

		snap := counter.Snapshot()
		snap["premium"] = 99

		assert.Equal(t, 1, counter.Count("premium"))
	})

	t.Run("concurrent increments", func(t *testing.T) {
		counter := NewUsageCounter()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				counter.Increment("premium")
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter.Count("premium"))
	})
}
