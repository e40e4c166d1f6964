package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")

	require.NoError(t, err)
	assert.NotNil(t, cache)

	testValue := "test string"
	cache.Set("test-key", testValue, int64(len(testValue)))
	cache.Wait()

	value, found := cache.Get("test-key")
	require.True(t, found, "Expected to find cached value")
	assert.Equal(t, testValue, value)
}

func TestCacheDelete(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	cache.Set("key", "value", 5)
	cache.Wait()
	cache.Delete("key")
	cache.Wait()

	_, found := cache.Get("key")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	testValue := "test string"
	cache.Set("key1", testValue, int64(len(testValue)))
	cache.Set("key2", testValue, int64(len(testValue)))
	cache.Wait()

	cache.Get("key1") // Hit
	cache.Get("key2") // Hit
	cache.Get("key3") // Miss

	stats := cache.Stats()

	expectedKeys := []string{
		"cache_type", "hits", "misses", "sets", "total_requests",
		"hit_rate", "cost_added", "cost_evicted", "sets_dropped",
		"sets_rejected", "memory_used", "memory_used_kb", "current_items",
	}
	for _, key := range expectedKeys {
		assert.Contains(t, stats, key, "Expected key %s in stats", key)
	}

	assert.Equal(t, "Test Cache", stats["cache_type"])

	hitRate := stats["hit_rate"].(float64)
	assert.GreaterOrEqual(t, hitRate, 0.0)
	assert.LessOrEqual(t, hitRate, 100.0)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Empty Cache")
	require.NoError(t, err)

	stats := cache.Stats()

	assert.Equal(t, "Empty Cache", stats["cache_type"])
	assert.Equal(t, uint64(0), stats["hits"])
	assert.Equal(t, uint64(0), stats["misses"])
	assert.Equal(t, uint64(0), stats["sets"])
	assert.Equal(t, uint64(0), stats["total_requests"])
	assert.Equal(t, 0.0, stats["hit_rate"])
}

func TestStorageRoundTrip(t *testing.T) {
	s, err := NewStorage("Test Storage")
	require.NoError(t, err)
	defer s.Close()

	val := []byte("session data")
	require.NoError(t, s.Set("sid", val, time.Minute))

	// mutating the caller's buffer must not leak into the stored copy
	val[0] = 'X'

	got, err := s.Get("sid")
	require.NoError(t, err)
	assert.Equal(t, []byte("session data"), got)

	require.NoError(t, s.Delete("sid"))
	got, err = s.Get("sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorageIgnoresEmptyKeys(t *testing.T) {
	s, err := NewStorage("Test Storage")
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.Set("", []byte("x"), 0))
	assert.NoError(t, s.Set("k", nil, 0))

	got, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.Get("k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorageReset(t *testing.T) {
	s, err := NewStorage("Test Storage")
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Set(fmt.Sprintf("key%d", i), []byte("v"), 0))
	}
	require.NoError(t, s.Reset())

	got, err := s.Get("key3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func BenchmarkStorageSet(b *testing.B) {
	s, err := NewStorage("Benchmark Storage")
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	val := []byte("benchmark value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Set(fmt.Sprintf("key%d", i%100), val, time.Minute); err != nil {
			b.Fatal(err)
		}
	}
}
