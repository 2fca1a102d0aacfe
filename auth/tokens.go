package auth

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// TokenStore remembers the tokens handed out by the login endpoint so
	// later requests can skip the full credential check.
	TokenStore interface {
		Save(ctx context.Context, token string) error
		Lookup(ctx context.Context, token string) (bool, error)
	}

	memStore struct {
		cache *bigcache.BigCache
	}
)

// InMemoryTokenStore keeps tokens in process memory, entries silently
// expire after ttl. A lost token just forces a fresh login.
func InMemoryTokenStore(ttl time.Duration) TokenStore {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	return &memStore{cache: cache}
}

func (m *memStore) Save(ctx context.Context, token string) error {
	return m.cache.Set(token, []byte{1})
}

func (m *memStore) Lookup(ctx context.Context, token string) (bool, error) {
	buf, err := m.cache.Get(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return len(buf) > 0 && buf[0] == 1, nil
}
