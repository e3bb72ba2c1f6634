package bloom

import "sync"

// SyncBloomFilter serializes inserts against concurrent lookups.
type SyncBloomFilter struct {
	mu     sync.RWMutex
	filter *BloomFilter
}

func NewSyncBloomFilter(filter *BloomFilter) *SyncBloomFilter {
	return &SyncBloomFilter{filter: filter}
}

func (s *SyncBloomFilter) Insert(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Insert(key)
}

func (s *SyncBloomFilter) Lookup(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.Lookup(key)
}

func (s *SyncBloomFilter) BitsSet() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.BitsSet()
}
