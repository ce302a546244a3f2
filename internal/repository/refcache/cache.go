// Package refcache caches slow-moving reference data (subjects) in process
// with a bounded TTL. Staleness within the TTL is acceptable for search.
package refcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domsub "github.com/studyfind/studyfind/internal/domain/subject"
)

// SubjectReader is the inner reader being decorated.
type SubjectReader interface {
	List(ctx context.Context, programmeID string, semester int) ([]domsub.Subject, error)
}

type entry struct {
	subjects  []domsub.Subject
	fetchedAt time.Time
}

// CachedSubjectReader decorates a SubjectReader with a TTL cache keyed by the
// (programme, semester) predicate pair.
type CachedSubjectReader struct {
	inner      SubjectReader
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
	now        func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner SubjectReader,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSubjectReader {
	return &CachedSubjectReader{
		inner:      inner,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
		now:        time.Now,
		entries:    make(map[string]entry),
	}
}

// List returns cached subjects when fresh, refetching expired entries.
// A stale entry is never served: expiry always goes back to the inner reader.
func (c *CachedSubjectReader) List(ctx context.Context, programmeID string, semester int) ([]domsub.Subject, error) {
	key := cacheKey(programmeID, semester)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.incCache("hit")
		return e.subjects, nil
	}
	c.incCache("miss")

	subjects, err := c.inner.List(ctx, programmeID, semester)
	if err != nil {
		return nil, fmt.Errorf("refresh subjects: %w", err)
	}

	c.mu.Lock()
	c.entries[key] = entry{subjects: subjects, fetchedAt: c.now()}
	c.mu.Unlock()

	c.logger.Debug("Refreshed subject cache",
		zap.String("programme_id", programmeID),
		zap.Int("semester", semester),
		zap.Int("count", len(subjects)),
	)
	return subjects, nil
}

func (c *CachedSubjectReader) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(programmeID string, semester int) string {
	return fmt.Sprintf("%s|%d", programmeID, semester)
}
