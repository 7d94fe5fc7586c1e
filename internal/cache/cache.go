package cache

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	ErrNotFound      = errors.New("cache: key not found")
	ErrEntryTooLarge = errors.New("cache: entry too large")
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

var _ Cache = (*Layered)(nil)

// Layered reads through the caches in order and back-fills the faster layers
// on a hit in a slower one. Writes go to all layers.
type Layered struct {
	layers []Cache
	// ttl used when back-filling
	fillTTL time.Duration
}

func NewLayered(fillTTL time.Duration, layers ...Cache) *Layered {
	return &Layered{
		layers:  layers,
		fillTTL: fillTTL,
	}
}

func (l *Layered) Get(ctx context.Context, key string) ([]byte, error) {
	for i, layer := range l.layers {
		value, err := layer.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Warnf("cache layer %d get [%s]: %s", i, key, err)
			}
			continue
		}

		for j := 0; j < i; j++ {
			if err := l.layers[j].Set(ctx, key, value, l.fillTTL); err != nil && !errors.Is(err, ErrEntryTooLarge) {
				log.Warnf("cache layer %d back-fill [%s]: %s", j, key, err)
			}
		}
		return value, nil
	}
	return nil, ErrNotFound
}

// Set writes to every layer. A layer too small for the entry is skipped,
// the slower layers still serve it.
func (l *Layered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var err error
	for i, layer := range l.layers {
		layerErr := layer.Set(ctx, key, value, ttl)
		if errors.Is(layerErr, ErrEntryTooLarge) {
			log.Debugf("cache layer %d skipped [%s]: %s", i, key, layerErr)
			continue
		}
		err = multierr.Append(err, layerErr)
	}
	return err
}
