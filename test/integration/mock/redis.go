package mock

import (
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process Redis shared by every scenario; dismissals live here.
type Redis struct {
	server *miniredis.Miniredis
	Client *redis.Client
}

var (
	redisOnce   sync.Once
	sharedRedis *Redis
)

// NewRedis returns the shared in-memory Redis, starting it on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		sharedRedis = &Redis{
			server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return sharedRedis
}

// Reset drops every key so dismissals do not leak between scenarios.
func (r *Redis) Reset() {
	r.server.FlushAll()
}

// DismissedKeys lists the per-period dismissal sets currently stored.
func (r *Redis) DismissedKeys() []string {
	var keys []string
	for _, key := range r.server.Keys() {
		if strings.HasPrefix(key, "signals:dismissed:") {
			keys = append(keys, key)
		}
	}
	return keys
}
