package cache

import (
	"errors"
	"time"
)

var ErrRejected = errors.New("cache rejected write")

// Storage adapts a byte cache to fiber.Storage so fiber middleware (sessions,
// the rate limiter) can keep their data in ristretto.
type Storage struct {
	c *Cache[[]byte]
}

// NewStorage creates a Storage backed by a fresh cache.
func NewStorage(cacheType string) (*Storage, error) {
	c, err := New[[]byte](func(v []byte) int64 {
		return int64(len(v))
	}, cacheType)
	if err != nil {
		return nil, err
	}
	return &Storage{c: c}, nil
}

// Get returns nil without error for a missing key.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	v, ok := s.c.Get(key)
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Set stores val until exp elapses; exp of zero keeps it until eviction.
// The write is visible to Get as soon as Set returns.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	// fiber may reuse the buffer behind val
	buf := make([]byte, len(val))
	copy(buf, val)
	if !s.c.SetWithTTL(key, buf, int64(len(buf)), exp) {
		return ErrRejected
	}
	s.c.Wait()
	return nil
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	s.c.Delete(key)
	return nil
}

func (s *Storage) Reset() error {
	s.c.Clear()
	return nil
}

func (s *Storage) Close() error {
	s.c.Close()
	return nil
}

// Stats returns the statistics of the underlying cache.
func (s *Storage) Stats() map[string]interface{} {
	return s.c.Stats()
}
