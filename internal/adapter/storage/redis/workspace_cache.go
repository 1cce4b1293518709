package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// WorkspaceCache implements ports.WorkspaceCache using Redis. It fronts the
// profiles lookup with a TTL-bounded creator-email -> workspace mapping;
// the same creator tends to deliver many webhooks in a row.
type WorkspaceCache struct {
	client *goredis.Client
	prefix string
}

// NewWorkspaceCache creates a new Redis-backed workspace cache.
func NewWorkspaceCache(client *goredis.Client) *WorkspaceCache {
	return &WorkspaceCache{
		client: client,
		prefix: "workspace:",
	}
}

// Get retrieves a cached workspace ID by creator email.
// Returns nil, nil on a cache miss.
func (c *WorkspaceCache) Get(ctx context.Context, email string) (*uuid.UUID, error) {
	val, err := c.client.Get(ctx, c.key(email)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis workspace get: %w", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return nil, fmt.Errorf("redis workspace get: corrupt value %q: %w", val, err)
	}
	return &id, nil
}

// Set stores a resolved workspace ID with TTL.
func (c *WorkspaceCache) Set(ctx context.Context, email string, workspaceID uuid.UUID, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(email), workspaceID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis workspace set: %w", err)
	}
	return nil
}

func (c *WorkspaceCache) key(email string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(email))
}
