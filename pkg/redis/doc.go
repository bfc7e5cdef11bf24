// Package redis opens go-redis clients from connection URLs with pooling
// defaults and startup retries.
//
// In this module it backs the shared bundle cache for multi-instance
// deployments:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	bundles := cache.NewRedis[*messages.Bundle](client, nil, cache.WithPrefix("bundles"))
package redis
