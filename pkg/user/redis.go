package user

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix is prepended to user ids to form Redis keys.
const DefaultKeyPrefix = "user:"

// RedisDirectory reads users from Redis hashes with the fields
// "name", "locale" and "timezone". It never writes.
type RedisDirectory struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisDirectory returns a directory reading keys "<prefix><id>".
// An empty prefix means DefaultKeyPrefix.
func NewRedisDirectory(client redis.UniversalClient, prefix string) *RedisDirectory {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisDirectory{client: client, prefix: prefix}
}

// Lookup implements Directory.
func (d *RedisDirectory) Lookup(ctx context.Context, id string) (*User, error) {
	id = NormalizeID(id)
	if id == "" {
		return nil, nil
	}

	fields, err := d.client.HGetAll(ctx, d.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Join(ErrLookup, err)
	}

	return userFromHash(id, fields), nil
}

// userFromHash maps hash fields to a user. A missing key comes back from
// HGETALL as an empty map.
func userFromHash(id string, fields map[string]string) *User {
	if len(fields) == 0 {
		return nil
	}
	return &User{
		ID:       id,
		Name:     fields["name"],
		Locale:   fields["locale"],
		Timezone: fields["timezone"],
	}
}
