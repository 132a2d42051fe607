package denylist

import "github.com/haukened/bindgate/internal/gen/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and target FP rate (p).
// It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from Bloom filters.
// Keys are owning class names; a definite negative means no overlay rule can
// match any member of that class.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
	Clear()
}

// BloomFactory builds BloomFilter instances sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// DecisionCache caches decisions by "Class::Member" key with basic metrics.
type DecisionCache interface {
	Get(key string) (domain.Decision, bool)
	Put(key string, d domain.Decision)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// StoreStats captures high-level counts and metadata for the persistent store.
type StoreStats struct {
	PairCount   uint64
	ClassCount  uint64
	Version     uint64
	UpdatedUnix int64 // seconds since epoch
}

// Store abstracts the persistent overlay index.
// - GetFirstMatch: class-wide rule first, then the exact pair
// - RebuildAll: atomic snapshot replacement with version metadata
// - Stats: counts and metadata; Close: release resources
type Store interface {
	GetFirstMatch(class, member string) (domain.DenyRule, bool, error)
	RebuildAll(rules []domain.DenyRule, version uint64, updatedUnix int64) error
	Stats() StoreStats
	Close() error
}

// RepoStats exposes repository-level counters and underlying store stats.
type RepoStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Store     StoreStats
}

// Repository is the composition layer that wires cache → bloom → store.
// Decide returns a value-type Decision for the (class, member) pair.
// UpdateAll rebuilds the store, refreshes Bloom, and clears the cache.
type Repository interface {
	Decide(class, member string) domain.Decision
	UpdateAll(rules []domain.DenyRule, version uint64, updatedUnix int64) error
	RepoStats() RepoStats
	Close() error
}
