package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-digest/digest"
)

var MemoryDigestCacheSize = 100

// MemoryDigestCache wraps a [digest.Hasher] with an in memory LRU
// cache keyed by payload content. It is useful for callers that
// repeatedly hash the same small payloads (identifiers, header values
// and the like). It is itself a [digest.Hasher].
type MemoryDigestCache struct {
	hasher digest.Hasher
	data   *lru.Cache[string, digest.Digest]
}

func (m *MemoryDigestCache) Sum(b []byte) (digest.Digest, error) {
	if d, ok := m.data.Get(string(b)); ok {
		return d, nil
	}
	d, err := m.hasher.Sum(b)
	if err != nil {
		return nil, err
	}
	m.data.Add(string(b), d)
	return d, nil
}

var _ digest.Hasher = (*MemoryDigestCache)(nil)

// NewMemoryDigestCache creates a new in memory LRU cache memoizing
// digests produced by hasher. The size parameter controls the maximum
// number of digests that can be cached. Pass a value less than 1 to use
// the default cache size [MemoryDigestCacheSize].
func NewMemoryDigestCache(hasher digest.Hasher, size int) (*MemoryDigestCache, error) {
	if size <= 0 {
		size = MemoryDigestCacheSize
	}
	cache, err := lru.New[string, digest.Digest](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &MemoryDigestCache{hasher: hasher, data: cache}, nil
}
