package lexiconlib

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached memoizes another Lexicon. Review text repeats the same handful of
// adjectives, so most lookups never reach the dict files.
type Cached struct {
	next  Lexicon
	cache *cache.Cache
}

// NewCached wraps next. A ttl <= 0 keeps entries for the whole run.
func NewCached(next Lexicon, ttl time.Duration) *Cached {
	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	return &Cached{
		next:  next,
		cache: cache.New(expiration, 10*time.Minute),
	}
}

// Antonyms returns the memoized candidates, asking the wrapped lexicon on a miss.
// Errors are not cached.
func (c *Cached) Antonyms(word string, pos POS) ([]string, error) {
	key := pos.String() + ":" + normalize(word)
	if v, found := c.cache.Get(key); found {
		return v.([]string), nil
	}

	antonyms, err := c.next.Antonyms(word, pos)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, antonyms)

	return antonyms, nil
}

// Len returns the number of memoized words
func (c *Cached) Len() int {
	return c.cache.ItemCount()
}
