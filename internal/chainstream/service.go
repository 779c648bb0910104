// Package chainstream consumes the node's block and event subscriptions and
// turns block notifications into fully materialized transactions.
//
// Each subscription is a strictly sequential consumer: the handler for one
// item returns before the next item is pulled, so a slow handler throttles
// the stream instead of dropping items. A subscription that ends or fails is
// not reconnected; the error is returned to the supervisor.
package chainstream

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gabapcia/starwatch/internal/pkg/logger"
)

const defaultBackfillPageSize = 20

// BlockHandler processes one block notification.
type BlockHandler func(ctx context.Context, block Block) error

// EventHandler processes one event notification.
type EventHandler func(ctx context.Context, event Event) error

type Service interface {
	// SubscribeBlocks feeds every new block to handler until the stream
	// ends (ErrSubscriptionClosed), fails (ErrSubscriptionFailed) or ctx is
	// cancelled (nil). Handler errors are logged and do not stop the loop.
	SubscribeBlocks(ctx context.Context, handler BlockHandler) error

	// SubscribeEvents is SubscribeBlocks for ledger events.
	SubscribeEvents(ctx context.Context, handler EventHandler) error

	// ResolveFullTransactions flattens blocks into their transactions,
	// fetching hash-only bodies one transaction at a time. Unknown hashes
	// are dropped and failed fetches are logged and skipped. The only error
	// is ctx's, returned with the transactions resolved so far.
	ResolveFullTransactions(ctx context.Context, blocks ...Block) ([]Transaction, error)

	// Backfill replays count blocks starting at from through handler. The
	// checkpoint only moves forward: blocks at or below the stored height
	// are handled without being saved.
	Backfill(ctx context.Context, from, count uint64, handler BlockHandler) error

	// LatestCheckpoint returns the highest checkpointed block height, or
	// ErrNoCheckpointFound.
	LatestCheckpoint(ctx context.Context) (uint64, error)
}

type service struct {
	chain             Chain
	checkpointStorage CheckpointStorage
	backfillPageSize  uint64
}

var _ Service = (*service)(nil)

// consume drains sub until it ends, handing each item to handle in order.
func consume[T any](ctx context.Context, sub Subscription[T], handle func(context.Context, T)) error {
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-sub.Err():
			if !ok || err == nil {
				return ErrSubscriptionClosed
			}
			return fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
		case item, ok := <-sub.Items():
			if !ok {
				return ErrSubscriptionClosed
			}
			handle(ctx, item)
		}
	}
}

func (s *service) handleBlock(ctx context.Context, block Block, handler BlockHandler, save bool) {
	ctx = logger.Derive(ctx, "block.height", block.Height, "block.hash", block.Hash)

	if save {
		s.checkpoint(ctx, block)
	}
	if err := handler(ctx, block); err != nil {
		logger.Error(ctx, "block handler failed", "error", err)
	}
}

func (s *service) SubscribeBlocks(ctx context.Context, handler BlockHandler) error {
	sub, err := s.chain.SubscribeBlocks(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
	}

	logger.Info(ctx, "subscribed to new blocks")
	return consume(ctx, sub, func(ctx context.Context, block Block) {
		s.handleBlock(ctx, block, handler, true)
	})
}

func (s *service) SubscribeEvents(ctx context.Context, handler EventHandler) error {
	sub, err := s.chain.SubscribeEvents(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
	}

	logger.Info(ctx, "subscribed to events")
	return consume(ctx, sub, func(ctx context.Context, event Event) {
		if err := handler(ctx, event); err != nil {
			logger.Error(ctx, "event handler failed",
				"event.type_tag", event.TypeTag,
				"event.txn_hash", event.TxnHash,
				"error", err,
			)
		}
	})
}

func (s *service) ResolveFullTransactions(ctx context.Context, blocks ...Block) ([]Transaction, error) {
	var txns []Transaction
	for _, block := range blocks {
		if !block.HashOnly() {
			txns = append(txns, block.Transactions...)
			continue
		}

		for _, hash := range block.TxnHashes {
			if err := ctx.Err(); err != nil {
				return txns, err
			}

			txn, err := s.chain.Transaction(ctx, hash)
			if err != nil {
				logger.Error(ctx, "failed to fetch transaction",
					"block.height", block.Height,
					"txn.hash", hash,
					"error", err,
				)
				continue
			}

			if txn == nil {
				continue
			}

			if txn.BlockHeight == 0 {
				txn.BlockHeight = block.Height
			}
			txns = append(txns, *txn)
		}
	}

	return txns, nil
}

// checkpointFloor returns the stored height Backfill must stay above when
// saving checkpoints. ok is false when nothing is stored. If the storage
// cannot be read the floor is the maximum height, so nothing is saved.
func (s *service) checkpointFloor(ctx context.Context) (floor uint64, ok bool) {
	height, err := s.checkpointStorage.LoadLatestCheckpoint(ctx)
	switch {
	case err == nil:
		return height, true
	case errors.Is(err, ErrNoCheckpointFound):
		return 0, false
	default:
		logger.Warn(ctx, "failed to load checkpoint, backfill will not save checkpoints", "error", err)
		return math.MaxUint64, true
	}
}

func (s *service) Backfill(ctx context.Context, from, count uint64, handler BlockHandler) error {
	floor, hasFloor := s.checkpointFloor(ctx)

	for offset := uint64(0); offset < count; offset += s.backfillPageSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := from + offset
		blocks, err := s.chain.BlockRange(ctx, start, min(s.backfillPageSize, count-offset))
		if err != nil {
			return fmt.Errorf("failed to fetch blocks from height %d: %w", start, err)
		}

		// The range is past the chain head.
		if len(blocks) == 0 {
			return nil
		}

		for _, block := range blocks {
			advance := !hasFloor || block.Height > floor
			s.handleBlock(ctx, block, handler, advance)
			if advance {
				floor, hasFloor = block.Height, true
			}
		}
	}

	return nil
}

func (s *service) LatestCheckpoint(ctx context.Context) (uint64, error) {
	height, err := s.checkpointStorage.LoadLatestCheckpoint(ctx)
	if err != nil && !errors.Is(err, ErrNoCheckpointFound) {
		return 0, fmt.Errorf("failed to load checkpoint: %w", err)
	}

	return height, err
}

type config struct {
	checkpointStorage CheckpointStorage
	backfillPageSize  uint64
}

type Option func(*config)

func New(chain Chain, opts ...Option) *service {
	cfg := config{
		checkpointStorage: nopCheckpoint{},
		backfillPageSize:  defaultBackfillPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:             chain,
		checkpointStorage: cfg.checkpointStorage,
		backfillPageSize:  cfg.backfillPageSize,
	}
}

func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithBackfillPageSize sets how many blocks Backfill requests at once.
// Zero is ignored.
func WithBackfillPageSize(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.backfillPageSize = n
		}
	}
}
