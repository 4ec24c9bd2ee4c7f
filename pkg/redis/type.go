package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultConnectTimeout is the timeout for the initial connection ping.
	DefaultConnectTimeout = 5 * time.Second
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type redisImpl struct {
	client *goredis.Client
}
