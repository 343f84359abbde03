package service

import "inspectgrade/internal/platform/config"

// Options tune the predict service
type Options struct {
	// CacheSize bounds the score cache, 0 disables it
	CacheSize int
	// FallbackScore is graded in place of a failed raw prediction when HasFallback is set
	FallbackScore float64
	HasFallback   bool
}

// FromConfig reads CACHE_SIZE and FALLBACK_SCORE from cfg
// callers usually pass config.New().Prefix("PREDICT_")
func FromConfig(cfg config.Conf) Options {
	o := Options{CacheSize: cfg.MayInt("CACHE_SIZE", 256)}
	if o.CacheSize < 0 {
		o.CacheSize = 0
	}
	o.FallbackScore, o.HasFallback = cfg.LookupFloat64("FALLBACK_SCORE")
	return o
}
