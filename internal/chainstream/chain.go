package chainstream

import (
	"context"
	"errors"
)

var (
	// ErrSubscriptionClosed is returned when the node ends a stream.
	ErrSubscriptionClosed = errors.New("subscription closed")

	// ErrSubscriptionFailed wraps the error reported by a live subscription.
	ErrSubscriptionFailed = errors.New("subscription failed")
)

// Subscription is a live stream of T pushed by the node. Items is closed
// when the stream ends; Err delivers at most one error.
type Subscription[T any] interface {
	Items() <-chan T
	Err() <-chan error
	Unsubscribe()
}

// Chain is the node interface the watchers consume. Items of a single
// subscription arrive in chain order.
type Chain interface {
	// CurrentHeight returns the height of the chain head.
	CurrentHeight(ctx context.Context) (uint64, error)

	// BlockRange returns up to count blocks starting at start, in height
	// order. Blocks past the head are omitted.
	BlockRange(ctx context.Context, start, count uint64) ([]Block, error)

	// Transaction returns the full record for hash, or nil when the node
	// does not know it.
	Transaction(ctx context.Context, hash string) (*Transaction, error)

	SubscribeBlocks(ctx context.Context) (Subscription[Block], error)
	SubscribeEvents(ctx context.Context) (Subscription[Event], error)
}
