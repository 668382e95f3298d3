package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRepo stores revoked refresh-token identifiers in Redis. Each
// entry carries a TTL equal to the remaining lifetime of the token it
// refers to, so the set prunes itself at the token's own expiry horizon.
type RevocationRepo struct {
	client redis.UniversalClient
	prefix string
}

func NewRevocationRepo(client redis.UniversalClient) *RevocationRepo {
	return &RevocationRepo{client: client, prefix: "revoked"}
}

func (r *RevocationRepo) key(jti string) string {
	return fmt.Sprintf("%s:%s", r.prefix, jti)
}

// Revoke marks the token identifier as revoked. Re-revoking an already
// revoked identifier just refreshes the entry; it is not an error.
func (r *RevocationRepo) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(jti), time.Now().UTC().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("set revocation entry: %w", err)
	}
	return nil
}

func (r *RevocationRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation entry: %w", err)
	}
	return n > 0, nil
}
