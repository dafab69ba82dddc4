package middleware

import (
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type PerformanceConfig struct {
	SlowThreshold time.Duration
	EnableLogging bool
	SkipPaths     []string
}

func DefaultPerformanceConfig() PerformanceConfig {
	return PerformanceConfig{
		SlowThreshold: 500 * time.Millisecond,
		EnableLogging: true,
		SkipPaths:     []string{"/health", "/metrics", "/favicon.ico"},
	}
}

// Performance logs requests slower than the threshold. Rollup endpoints
// fan out several queries, so slow requests usually mean a missing
// index rather than load.
func Performance(config ...PerformanceConfig) gin.HandlerFunc {
	cfg := DefaultPerformanceConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *gin.Context) {
		for _, path := range cfg.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if cfg.EnableLogging && latency > cfg.SlowThreshold {
			log.Printf("[SLOW REQUEST] %s %s - Status: %d, Latency: %v",
				method, path, status, latency)
		}

		if gin.Mode() == gin.DebugMode {
			c.Header("X-Response-Time", latency.String())
		}
	}
}

// RateLimit is a per-IP sliding window limiter kept in memory.
func RateLimit(rpm int) gin.HandlerFunc {
	var requests sync.Map

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		var timestamps []time.Time
		if value, exists := requests.Load(ip); exists {
			timestamps = value.([]time.Time)
		}

		var validTimestamps []time.Time
		cutoff := now.Add(-time.Minute)

		for _, timestamp := range timestamps {
			if timestamp.After(cutoff) {
				validTimestamps = append(validTimestamps, timestamp)
			}
		}

		if len(validTimestamps) >= rpm {
			c.AbortWithStatusJSON(429, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			return
		}

		validTimestamps = append(validTimestamps, now)
		requests.Store(ip, validTimestamps)

		c.Next()
	}
}
