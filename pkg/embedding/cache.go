package embedding

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider memoizes embeddings by exact input text. Interactive
// sessions tend to repeat questions; the remote embedding call is by far the
// slowest part of the vector branch.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
}

func NewCachedProvider(inner Provider) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (p *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, found := p.cache.Get(text); found {
		return cached.([]float32), nil
	}

	vector, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	p.cache.Set(text, vector, gocache.DefaultExpiration)
	return vector, nil
}
