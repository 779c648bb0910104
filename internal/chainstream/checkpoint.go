package chainstream

import (
	"context"
	"errors"

	"github.com/gabapcia/starwatch/internal/pkg/logger"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint before any block
// was checkpointed.
var ErrNoCheckpointFound = errors.New("no checkpoint found")

// CheckpointStorage persists the height of the last block handed to a
// handler, so the scan command can resume after a dead subscription.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the stored height.
	SaveCheckpoint(ctx context.Context, height uint64) error

	// LoadLatestCheckpoint returns the stored height or ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context) (uint64, error)
}

// checkpoint records block.Height. A failure is logged and never prevents
// the block from being handled.
func (s *service) checkpoint(ctx context.Context, block Block) {
	if err := s.checkpointStorage.SaveCheckpoint(ctx, block.Height); err != nil {
		logger.Error(ctx, "failed to save checkpoint",
			"block.height", block.Height,
			"error", err,
		)
	}
}

type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
