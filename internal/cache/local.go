package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

var _ Cache = (*Local)(nil)

// Local is an in-process cache with a fixed memory budget.
type Local struct {
	cache *freecache.Cache
}

func NewLocal(cacheSizeMegabytes int) *Local {
	megabyte := 1024 * 1024
	return &Local{
		cache: freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	value, err := l.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores the value. A ttl below one second means no expiry. Entries
// larger than 1/1024 of the cache size are rejected with ErrEntryTooLarge.
func (l *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := l.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			return fmt.Errorf("%w: %d bytes", ErrEntryTooLarge, len(value))
		}
		return err
	}
	return nil
}

func (l *Local) EntryCount() int64 {
	return l.cache.EntryCount()
}

func (l *Local) Clear() {
	l.cache.Clear()
}
