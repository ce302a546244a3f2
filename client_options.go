package studyfind

import (
	"time"

	"go.uber.org/zap"
)

type clientConfig struct {
	addrs              []string
	password           string
	logger             *zap.Logger
	subjectCacheTTL    time.Duration
	commentConcurrency int
}

// Option configures the Client.
type Option func(*clientConfig)

// WithRedis sets the Redis addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithPassword sets the database password.
func WithPassword(password string) Option {
	return func(c *clientConfig) { c.password = password }
}

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithSubjectCacheTTL enables the in-process subject cache.
func WithSubjectCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) { c.subjectCacheTTL = ttl }
}

// WithCommentConcurrency bounds parallel per-material comment fetches.
func WithCommentConcurrency(n int) Option {
	return func(c *clientConfig) { c.commentConcurrency = n }
}
