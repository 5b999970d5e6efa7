package kvstore

import (
	"context"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultCacheSize = 1024 * 1024 // 1 MB, freecache minimum is 512 KB
	cacheExpire      = 60 * 60     // seconds
)

// CachedStore is a read-through, write-through freecache layer in front of another Store.
type CachedStore struct {
	store Store
	cache *freecache.Cache
}

func NewCachedStore(store Store, cacheSize int) *CachedStore {
	return &CachedStore{
		store: store,
		cache: freecache.NewCache(cacheSize),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.cached.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if cached, err := s.cache.Get([]byte(key)); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return string(cached), true, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	value, found, err := s.store.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}

	if err := s.cache.Set([]byte(key), []byte(value), cacheExpire); err != nil {
		log.Warnf("kv cache set [%s]: %s", key, err)
	}
	return value, true, nil
}

// Set writes the backing store first; the cache is only updated on success.
func (s *CachedStore) Set(ctx context.Context, key, value string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.cached.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if err := s.store.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	if err := s.cache.Set([]byte(key), []byte(value), cacheExpire); err != nil {
		log.Warnf("kv cache set [%s]: %s", key, err)
	}
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.cached.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	s.cache.Del([]byte(key))
	return s.store.Delete(ctx, key)
}

// HitRate exposes the freecache hit rate, for the metrics textfile.
func (s *CachedStore) HitRate() float64 {
	return s.cache.HitRate()
}
