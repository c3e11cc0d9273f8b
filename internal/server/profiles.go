package server

import (
	"time"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/parsing"
	"github.com/jonathan/mockmate/internal/types"
	"github.com/maypok86/otter"
)

// profileTTL bounds how long an extracted profile is reused for identical uploads
const profileTTL = time.Hour

// profileCache memoises extraction by the SHA-256 of the uploaded bytes.
// Cached profiles are shared between sessions and must not be mutated.
type profileCache struct {
	cache otter.Cache[string, *types.ResumeProfile]
}

func newProfileCache(capacity int) (*profileCache, error) {
	cache, err := otter.MustBuilder[string, *types.ResumeProfile](capacity).
		WithTTL(profileTTL).
		Build()
	if err != nil {
		return nil, err
	}
	return &profileCache{cache: cache}, nil
}

// extract returns the profile for doc, reusing a cached one when the same
// bytes were parsed before. The bool reports a cache hit.
func (c *profileCache) extract(doc *ingestion.Document) (*types.ResumeProfile, bool) {
	key := doc.Metadata.Hash
	if profile, ok := c.cache.Get(key); ok {
		return profile, true
	}

	profile := parsing.ParseResume(doc.Text, doc.Links)
	c.cache.Set(key, profile)
	return profile, false
}

func (c *profileCache) Len() int {
	return c.cache.Size()
}

func (c *profileCache) Close() {
	c.cache.Close()
}
