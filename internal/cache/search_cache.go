package cache

import (
	"encoding/json"
	"time"

	"alcyxob/exercise-catalog/internal/domain"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// SearchCache memoizes search results per catalog version and filter.
// Entries of an old catalog version are never read again and age out.
type SearchCache struct {
	cache *freecache.Cache
	ttl   int // seconds
}

// NewSearchCache returns nil when sizeMB is not positive; a nil cache is a no-op.
func NewSearchCache(sizeMB int, ttl time.Duration) *SearchCache {
	if sizeMB <= 0 {
		return nil
	}
	return &SearchCache{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   int(ttl.Seconds()),
	}
}

func key(version string, filter domain.SearchFilter) []byte {
	return []byte(version + "::" + filter.CacheKey())
}

// Get returns the cached result, if any.
func (c *SearchCache) Get(version string, filter domain.SearchFilter) ([]domain.Exercise, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.cache.Get(key(version, filter))
	if err != nil {
		return nil, false
	}

	var exercises []domain.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		log.Errorf("failed to unmarshal cached search result: %s", err)
		return nil, false
	}
	return exercises, true
}

// Set stores a search result.
func (c *SearchCache) Set(version string, filter domain.SearchFilter, exercises []domain.Exercise) {
	if c == nil {
		return
	}
	data, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal search result for cache: %s", err)
		return
	}
	if err := c.cache.Set(key(version, filter), data, c.ttl); err != nil {
		log.Debugf("search result not cached: %s", err)
	}
}

// Clear drops every entry.
func (c *SearchCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
}
