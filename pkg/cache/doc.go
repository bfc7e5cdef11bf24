// Package cache provides a generic TTL cache with in-memory and Redis
// backends. It backs the message-bundle store: bundles are loaded once per
// locale and kept for the process lifetime, so the cache is read-mostly.
//
// Both backends implement the [Cache] interface, so a single-process site can
// use [NewMemory] while a multi-instance deployment shares loaded bundles
// through [NewRedis].
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: entry never expires
//
// # In-Memory
//
//	c := cache.NewMemory[*messages.Bundle](
//	    cache.WithDefaultTTL(-1), // bundles change only on redeploy
//	)
//	defer c.Close()
//
// # Redis
//
//	c := cache.NewRedis[*messages.Bundle](client, nil,
//	    cache.WithPrefix("bundles"),
//	)
//
// Values are serialized with JSON unless a custom [Marshaler] is provided.
//
// # Stampede Prevention
//
// [GetOrSet] collapses concurrent loads of the same key into one call via
// singleflight; racing populations are last-writer-wins, which is safe when
// the loader is idempotent:
//
//	b, err := cache.GetOrSet(ctx, c, "de", func(ctx context.Context) (*messages.Bundle, time.Duration, error) {
//	    return source.Load(ctx, "de")
//	})
package cache
