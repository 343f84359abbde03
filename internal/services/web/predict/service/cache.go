package service

import (
	"inspectgrade/internal/platform/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

// scoreCache maps schema|fingerprint to a score; a nil cache never hits
type scoreCache struct {
	c *lru.Cache[string, float64]
}

func newScoreCache(size int) *scoreCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, float64](size)
	if err != nil {
		return nil
	}
	return &scoreCache{c: c}
}

func (s *scoreCache) get(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.c.Get(key)
	metrics.RecordCache(ok)
	return v, ok
}

func (s *scoreCache) add(key string, score float64) {
	if s == nil {
		return
	}
	s.c.Add(key, score)
}

func (s *scoreCache) len() int {
	if s == nil {
		return 0
	}
	return s.c.Len()
}
