package service

import (
	"time"

	"heyrube-be/internal/dto"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const graphCacheTTL = 5 * time.Minute

// GraphCache keeps one assembled graph per user. Every mutation that can
// change a node or an edge must drop the owner's copy; the TTL only covers
// writes that bypass the services.
type GraphCache struct {
	store *gocache.Cache
}

func NewGraphCache() *GraphCache {
	return &GraphCache{
		store: gocache.New(graphCacheTTL, 2*graphCacheTTL),
	}
}

func (c *GraphCache) Get(userId uuid.UUID) (*dto.GraphResponse, bool) {
	cached, ok := c.store.Get(userId.String())
	if !ok {
		return nil, false
	}
	return cached.(*dto.GraphResponse), true
}

func (c *GraphCache) Set(userId uuid.UUID, graph *dto.GraphResponse) {
	c.store.Set(userId.String(), graph, gocache.DefaultExpiration)
}

func (c *GraphCache) Invalidate(userId uuid.UUID) {
	c.store.Delete(userId.String())
}
