package world

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// ChunkStore caches generated chunks by chunk coordinates.
type ChunkStore interface {
	Get(cx, cy int) (*Chunk, bool)
	Put(c *Chunk)
	Len() int
}

// ChunkKey formats chunk coordinates as "x;y".
func ChunkKey(cx, cy int) string {
	return fmt.Sprintf("%d;%d", cx, cy)
}

// MapStore keeps every chunk ever generated. Memory grows with the explored
// area; nothing is evicted.
type MapStore struct {
	chunks map[string]*Chunk
}

// NewMapStore creates an empty unbounded store.
func NewMapStore() *MapStore {
	return &MapStore{chunks: make(map[string]*Chunk)}
}

// Get implements ChunkStore.
func (s *MapStore) Get(cx, cy int) (*Chunk, bool) {
	c, ok := s.chunks[ChunkKey(cx, cy)]
	return c, ok
}

// Put implements ChunkStore.
func (s *MapStore) Put(c *Chunk) {
	s.chunks[ChunkKey(c.X, c.Y)] = c
}

// Len returns the number of stored chunks.
func (s *MapStore) Len() int {
	return len(s.chunks)
}

// BoundedStore holds at most maxChunks chunks and lets ristretto pick what
// to evict. Evicted chunks are regenerated on demand.
type BoundedStore struct {
	cache *ristretto.Cache[string, *Chunk]
}

// NewBoundedStore creates a store capped at maxChunks entries.
func NewBoundedStore(maxChunks int) (*BoundedStore, error) {
	if maxChunks <= 0 {
		return nil, fmt.Errorf("bounded chunk store needs a positive size, got %d", maxChunks)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, *Chunk]{
		NumCounters:        int64(maxChunks) * 10,
		MaxCost:            int64(maxChunks),
		BufferItems:        64,
		IgnoreInternalCost: true,
		Metrics:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk cache: %w", err)
	}
	return &BoundedStore{cache: cache}, nil
}

// Get implements ChunkStore.
func (s *BoundedStore) Get(cx, cy int) (*Chunk, bool) {
	return s.cache.Get(ChunkKey(cx, cy))
}

// Put implements ChunkStore.
func (s *BoundedStore) Put(c *Chunk) {
	// Set may reject the item under admission pressure; that only means the
	// chunk will be regenerated next time.
	s.cache.Set(ChunkKey(c.X, c.Y), c, 1)
	s.cache.Wait()
}

// Len returns the number of chunks ristretto currently accounts for.
func (s *BoundedStore) Len() int {
	return int(s.cache.Metrics.KeysAdded() - s.cache.Metrics.KeysEvicted())
}

// Close releases the cache's background goroutines.
func (s *BoundedStore) Close() {
	s.cache.Close()
}
