// pkg/memcache/lookup_cache.go
package mem

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LookupCache remembers encyclopedia lookups so repeated place names in
// different sessions do not hit the remote API again.
type LookupCache interface {
	Set(title string, exists bool, url string)

	// Get returns the cached result for title. ok is false when the title
	// was never cached or the entry expired.
	Get(title string) (exists bool, url string, ok bool)
}

type lookupEntry struct {
	exists bool
	url    string
}

type lookupCache struct {
	data *cache.Cache
}

func NewLookupCache(ttl time.Duration) LookupCache {
	return &lookupCache{
		data: cache.New(ttl, 2*ttl),
	}
}

func (l *lookupCache) Set(title string, exists bool, url string) {
	l.data.SetDefault(title, lookupEntry{exists: exists, url: url})
}

func (l *lookupCache) Get(title string) (bool, string, bool) {
	v, found := l.data.Get(title)
	if !found {
		return false, "", false
	}
	e := v.(lookupEntry)
	return e.exists, e.url, true
}
