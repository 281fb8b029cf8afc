package resolver

import (
	"sync"

	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/cespare/xxhash/v2"
)

// scaffoldCache memoizes batch resolutions per snapshot generation. It lives
// on the Snapshot, so a refresh drops every stale entry for free. Only
// override-free resolutions are cached; forced versions and dev mode always
// recompute. Entries are cloned on the way in and out so a caller appending
// to a returned scaffold never mutates the cached one.
type scaffoldCache struct {
	mu sync.RWMutex
	m  map[uint64]*domain.Scaffold
}

func newScaffoldCache() *scaffoldCache {
	return &scaffoldCache{m: make(map[uint64]*domain.Scaffold)}
}

func (c *scaffoldCache) get(key uint64) (*domain.Scaffold, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.m[key]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

func (c *scaffoldCache) put(key uint64, s *domain.Scaffold) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = s.Clone()
}

// scaffoldKey hashes the ordered reference list. Order matters: the same
// bundles in a different order are a different scaffold.
func scaffoldKey(refs []string) uint64 {
	digest := xxhash.New()
	for _, ref := range refs {
		_, _ = digest.WriteString(ref)
		_, _ = digest.Write([]byte{0})
	}
	return digest.Sum64()
}
