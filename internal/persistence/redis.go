package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/config"
)

const connectTimeout = 3 * time.Second

// GETDEL, which the flash store relies on, arrived in Redis 6.2.
var minServerVersion = [2]int{6, 2}

// Redis wraps the go-redis client together with the key namespace every
// storefront key lives under.
type Redis struct {
	Client *redis.Client
	Prefix string
}

// NewRedis connects to Redis using the provided configuration. An unreachable
// or too old server is logged, not fatal: flash messages degrade, pages keep working.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	r := &Redis{Client: client, Prefix: normalizePrefix(cfg.KeyPrefix)}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	fields := []zap.Field{zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB), zap.String("prefix", r.Prefix)}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis", append(fields, zap.Error(err))...)
		return r
	}

	info, err := client.Info(ctx, "server").Result()
	if err != nil {
		logger.Warn("unable to read redis server info", append(fields, zap.Error(err))...)
	} else if version := ServerVersion(info); !SupportsGetDel(version) {
		logger.Warn("redis server predates GETDEL; flash messages will fail", append(fields, zap.String("version", version))...)
	} else {
		fields = append(fields, zap.String("version", version))
	}

	logger.Info("connected to redis", fields...)
	return r
}

// Key joins parts under the configured prefix.
func (r *Redis) Key(parts ...string) string {
	return r.Prefix + strings.Join(parts, ":")
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// ServerVersion extracts redis_version from an INFO server reply.
func ServerVersion(info string) string {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "redis_version:"); ok {
			return v
		}
	}
	return ""
}

// SupportsGetDel reports whether version is at least 6.2. Unknown versions
// are assumed compatible.
func SupportsGetDel(version string) bool {
	if version == "" {
		return true
	}
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return true
	}
	major, err1 := strconv.Atoi(parts[0])
	minor, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return true
	}
	if major != minServerVersion[0] {
		return major > minServerVersion[0]
	}
	return minor >= minServerVersion[1]
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "storefront:"
	}
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return prefix
}
