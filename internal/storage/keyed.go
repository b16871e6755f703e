// Package storage provides the in-memory keyed stores. All state lives in
// process memory; a restart resets every store to empty.
package storage

import (
	"hash/fnv"
	"sync"
)

const numShards = 32

// keyedStore is a map keyed by username, split across fixed shards so that
// operations on different usernames rarely contend. Every read-modify-write
// sequence for a key runs under that key's shard lock, which is what makes
// the per-user atomic operations of the concrete stores safe.
type keyedStore[V any] struct {
	shards [numShards]keyedShard[V]
}

type keyedShard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func newKeyedStore[V any]() *keyedStore[V] {
	s := &keyedStore[V]{}
	for i := range s.shards {
		s.shards[i].entries = make(map[string]V)
	}
	return s
}

func (s *keyedStore[V]) shardFor(key string) *keyedShard[V] {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.shards[h.Sum32()%numShards]
}

// get returns the value for key, if present
func (s *keyedStore[V]) get(key string) (V, bool) {
	shard := s.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	v, ok := shard.entries[key]
	return v, ok
}

// update runs fn on the current value for key under the shard lock. fn
// receives the stored value (or the zero value) and whether the key was
// present; it returns the value to store and whether to keep the entry.
// Returning keep=false deletes the key.
func (s *keyedStore[V]) update(key string, fn func(v V, ok bool) (V, bool)) {
	shard := s.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	v, ok := shard.entries[key]
	next, keep := fn(v, ok)
	if keep {
		shard.entries[key] = next
	} else {
		delete(shard.entries, key)
	}
}

// size returns the total number of entries across all shards
func (s *keyedStore[V]) size() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].entries)
		s.shards[i].mu.RUnlock()
	}
	return n
}
