package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecocollect/waste-service/internal/metrics"
	"github.com/ecocollect/waste-service/internal/repository"
)

type RequestLister interface {
	GetAllActive(ctx context.Context) ([]*repository.PickupRequest, error)
}

// RequestCache keeps non-terminal pickup requests in memory so the hot
// get-by-id path on revise/cancel skips the database. Entries are stored
// and returned by value copy.
type RequestCache struct {
	mu     sync.RWMutex
	cache  map[uuid.UUID]*repository.PickupRequest
	repo   RequestLister
	logger *zap.Logger
}

func NewRequestCache(repo RequestLister, logger *zap.Logger) *RequestCache {
	return &RequestCache{
		cache:  make(map[uuid.UUID]*repository.PickupRequest),
		repo:   repo,
		logger: logger,
	}
}

// LoadInitialData warms the cache with every pending/scheduled request.
func (c *RequestCache) LoadInitialData(ctx context.Context) error {
	requests, err := c.repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, req := range requests {
		reqCopy := *req
		c.cache[req.ID] = &reqCopy
	}
	metrics.ActiveRequestCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("active-request cache warmed", zap.Int("items", len(c.cache)))
	return nil
}

func (c *RequestCache) Get(id uuid.UUID) (*repository.PickupRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	req, found := c.cache[id]
	if !found {
		return nil, false
	}
	reqCopy := *req
	return &reqCopy, true
}

func (c *RequestCache) Set(req *repository.PickupRequest) {
	if !isActiveStatus(req.Status) {
		c.Delete(req.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	reqCopy := *req
	c.cache[req.ID] = &reqCopy
	metrics.ActiveRequestCacheItems.Set(float64(len(c.cache)))
}

func (c *RequestCache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ActiveRequestCacheItems.Set(float64(len(c.cache)))
	}
}

func isActiveStatus(status string) bool {
	return status == "pending" || status == "scheduled"
}
