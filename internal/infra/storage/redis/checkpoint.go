package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/starwatch/internal/chainstream"

	"github.com/redis/go-redis/v9"
)

// checkpointKey is "starwatch:chainstream:checkpoint".
var checkpointKey = fmt.Sprintf("%s:chainstream:checkpoint", keyPrefix)

// SaveCheckpoint stores the height of the last block handed to a handler.
// The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, height uint64) error {
	return c.conn.Set(ctx, checkpointKey, strconv.FormatUint(height, 10), 0).Err()
}

// LoadLatestCheckpoint returns the stored height, or
// chainstream.ErrNoCheckpointFound before the first save.
func (c *client) LoadLatestCheckpoint(ctx context.Context) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainstream.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q: %w", val, err)
	}

	return height, nil
}

var _ chainstream.CheckpointStorage = new(client)
