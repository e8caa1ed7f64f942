package inmemdb

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// DB keeps every open board in memory. Boards not accessed for the configured TTL are evicted.
type DB struct {
	boards *cache.Cache
}

func Open(ttl time.Duration) *DB {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	cleanup := ttl / 2
	if ttl == cache.NoExpiration {
		cleanup = 0
	}
	return &DB{boards: cache.New(ttl, cleanup)}
}

// Len returns the number of open boards, expired ones included until the next cleanup.
func (db *DB) Len() int {
	return db.boards.ItemCount()
}

// Flush drops every board.
func (db *DB) Flush() {
	db.boards.Flush()
}

// getOrAdd returns the value stored under key, storing newFn() first if there is none.
// Every access resets the key expiration.
func (db *DB) getOrAdd(key string, newFn func() interface{}) interface{} {
	for {
		if v, ok := db.boards.Get(key); ok && db.touch(key, v) {
			return v
		}
		// Add fails if another request stored the board first; loop to pick theirs.
		v := newFn()
		if err := db.boards.Add(key, v, cache.DefaultExpiration); err == nil {
			return v
		}
	}
}

// touch resets the key expiration. It reports false, storing nothing, if the key was dropped after it was read.
func (db *DB) touch(key string, v interface{}) bool {
	return db.boards.Replace(key, v, cache.DefaultExpiration) == nil
}
