// Package studyfind is the embedded SDK entry point: it connects to the
// portal's Redis store and exposes the search service without the HTTP layer.
package studyfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studyfind/studyfind/internal/db"
	dbRedis "github.com/studyfind/studyfind/internal/db/redis"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/search/result"
	commentrepo "github.com/studyfind/studyfind/internal/repository/comment"
	materialrepo "github.com/studyfind/studyfind/internal/repository/material"
	"github.com/studyfind/studyfind/internal/repository/refcache"
	subjectrepo "github.com/studyfind/studyfind/internal/repository/subject"
	searchuc "github.com/studyfind/studyfind/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the studyfind SDK entry point.
type Client struct {
	store     db.Store
	searchSvc *searchuc.Service
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("studyfind: database address required (use WithRedis)")
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("studyfind: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("studyfind: database not ready: %w", err)
	}

	return wireClient(ctx, store, cfg)
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig) (*Client, error) {
	materials := materialrepo.New(store)
	comments := commentrepo.New(store)
	subjects := subjectrepo.New(store)

	if err := materials.EnsureIndex(ctx, store); err != nil {
		store.Close()
		return nil, fmt.Errorf("studyfind: ensure material index: %w", err)
	}
	if err := comments.EnsureIndex(ctx, store); err != nil {
		store.Close()
		return nil, fmt.Errorf("studyfind: ensure comment index: %w", err)
	}
	if err := subjects.EnsureIndex(ctx, store); err != nil {
		store.Close()
		return nil, fmt.Errorf("studyfind: ensure subject index: %w", err)
	}

	var subjectReader searchuc.SubjectReader = subjects
	if cfg.subjectCacheTTL > 0 {
		subjectReader = refcache.New(subjects, cfg.subjectCacheTTL, nil, cfg.logger)
	}

	searchSvc := searchuc.New(materials, comments, subjectReader, cfg.logger)
	if cfg.commentConcurrency > 0 {
		searchSvc = searchSvc.WithCommentConcurrency(cfg.commentConcurrency)
	}

	return &Client{store: store, searchSvc: searchSvc}, nil
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

// Search runs the combined cross-entity search.
func (c *Client) Search(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.Combined {
	return c.searchSvc.SearchAll(ctx, term, f, opts)
}

// SearchMaterials searches approved materials only.
func (c *Client) SearchMaterials(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.MaterialPage {
	return c.searchSvc.SearchMaterials(ctx, term, f, opts)
}

// SearchComments searches comments on approved materials only.
func (c *Client) SearchComments(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.CommentPage {
	return c.searchSvc.SearchComments(ctx, term, f, opts)
}

// SearchSubjects searches the subject catalogue.
func (c *Client) SearchSubjects(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.SubjectPage {
	return c.searchSvc.SearchSubjects(ctx, term, f, opts)
}

// Suggestions returns up to limit query completions for a partial term.
func (c *Client) Suggestions(ctx context.Context, term string, limit int) []string {
	return c.searchSvc.Suggestions(ctx, term, limit)
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("studyfind: ping: %w", err)
	}
	return nil
}
