package denylist

import (
	"sync"

	"github.com/haukened/bindgate/internal/gen/domain"
)

// repository implements the Repository interface by composing a Store,
// a Bloom filter (via factory), and a DecisionCache. It applies a
// cache → bloom → store pipeline on reads and performs atomic snapshot
// updates on writes.
type repository struct {
	mu      sync.RWMutex
	store   Store
	cache   DecisionCache
	bloom   BloomFilter
	factory BloomFactory
	fpRate  float64
}

// NewRepository constructs a Repository.
// fpRate is the target false-positive rate for the Bloom filter when rebuilding.
func NewRepository(store Store, cache DecisionCache, factory BloomFactory, fpRate float64) Repository {
	return &repository{store: store, cache: cache, factory: factory, fpRate: fpRate}
}

// Decide returns the overlay decision for the (class, member) pair.
// Policy: on internal errors, prefer Admit (fail-open).
func (r *repository) Decide(class, member string) domain.Decision {
	// 1) checkBloom: early-admit if definitively negative for the class
	if !r.checkBloom(class) {
		return domain.AdmittedDecision()
	}
	key := domain.MemberKey(class, member)
	// 2) checkCache
	if d, ok := r.checkCache(key); ok {
		return d
	}
	// 3) checkStore
	dec := r.checkStore(class, member)
	// 4) updateCache
	r.updateCache(key, dec)
	return dec
}

// UpdateAll performs an atomic snapshot update across store, bloom, and cache.
func (r *repository) UpdateAll(rules []domain.DenyRule, version uint64, updatedUnix int64) error {
	// 1) Rebuild the persistent store first.
	if err := r.store.RebuildAll(rules, version, updatedUnix); err != nil {
		return err
	}

	// 2) Build a fresh Bloom filter keyed on owning class names.
	bf := r.factory.New(uint64(len(rules)), r.fpRate)
	for _, ru := range rules {
		bf.Add([]byte(ru.Class))
	}

	// 3) Swap bloom and purge decision cache under lock.
	r.mu.Lock()
	r.bloom = bf
	r.cache.Purge()
	r.mu.Unlock()
	return nil
}

// RepoStats returns cache counters plus underlying store stats.
func (r *repository) RepoStats() RepoStats {
	hits, misses, evictions := r.cache.Stats()
	return RepoStats{
		Hits:      hits,
		Misses:    misses,
		Evictions: evictions,
		Store:     r.store.Stats(),
	}
}

// Close releases the underlying store.
func (r *repository) Close() error { return r.store.Close() }

// checkBloom returns true if we should consult the store (maybe-positive),
// or false if we can early-admit (definitely negative). If no bloom is
// loaded, returns true to allow authoritative checking.
func (r *repository) checkBloom(class string) bool {
	r.mu.RLock()
	bf := r.bloom
	r.mu.RUnlock()
	if bf == nil {
		return true
	}
	return bf.MightContain([]byte(class))
}

// checkCache returns a cached decision when present.
func (r *repository) checkCache(key string) (domain.Decision, bool) {
	r.mu.RLock()
	d, ok := r.cache.Get(key)
	r.mu.RUnlock()
	return d, ok
}

// checkStore consults the authoritative store and materializes a decision.
// On any error or miss, returns Admit.
func (r *repository) checkStore(class, member string) domain.Decision {
	rule, ok, err := r.store.GetFirstMatch(class, member)
	if err == nil && ok {
		return domain.ExcludedDecision(rule.Reason, rule.Key(), rule.Source)
	}
	return domain.AdmittedDecision()
}

// updateCache writes the final decision.
func (r *repository) updateCache(key string, dec domain.Decision) {
	r.mu.Lock()
	r.cache.Put(key, dec)
	r.mu.Unlock()
}
