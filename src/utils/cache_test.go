package utils_test

import (
	"testing"
	"time"

	"itradebook/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"EURUSD", "GBPUSD"}, time.Minute)

		value, ok := cache.Get(time.Time{})
		assert.True(t, ok)
		assert.Equal(t, []string{"EURUSD", "GBPUSD"}, value)
	})

	t.Run("expired value is a miss", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, -time.Second)

		_, ok := cache.Get(time.Time{})
		assert.False(t, ok)
	})

	t.Run("refreshAfter newer than cache is a miss", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, time.Minute)

		_, ok := cache.Get(time.Now().Add(time.Second))
		assert.False(t, ok)
	})

	t.Run("clear removes the value", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, time.Minute)
		cache.Clear()

		_, ok := cache.Get(time.Time{})
		assert.False(t, ok)
	})
}
