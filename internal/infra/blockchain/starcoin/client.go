// Package starcoin implements chainstream.Chain for Starcoin nodes over
// JSON-RPC. Plain calls work on any transport; the block and event streams
// need a websocket endpoint.
package starcoin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/starwatch/internal/transfer"
)

const (
	subscriptionNamespace = "starcoin"

	// notificationBuffer bounds how many raw notifications wait for the
	// consumer before the node connection applies back pressure.
	notificationBuffer = 64
)

type client struct {
	conn jsonrpc.Client
}

var _ chainstream.Chain = (*client)(nil)

type getTransactionOption struct {
	Decode bool `json:"decode"`
}

type getBlockOption struct {
	Decode bool `json:"decode"`
	Raw    bool `json:"raw"`
}

type eventFilter struct {
	TypeTags []string `json:"type_tags,omitempty"`
}

func (c *client) CurrentHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "chain.info")
	if err != nil {
		return 0, err
	}

	var info chainInfoView
	if err := json.Unmarshal(data, &info); err != nil {
		return 0, fmt.Errorf("failed to decode chain info: %w", err)
	}

	if info.Head == nil {
		return 0, ErrMissingHead
	}

	return uint64(info.Head.Number), nil
}

func (c *client) block(ctx context.Context, height uint64) (*chainstream.Block, error) {
	data, err := c.conn.Fetch(ctx, "chain.get_block_by_number", height, getBlockOption{Decode: true})
	if err != nil {
		return nil, err
	}

	if isNull(data) {
		return nil, nil
	}

	var view blockView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("failed to decode block %d: %w", height, err)
	}

	block, err := view.toBlock()
	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (c *client) BlockRange(ctx context.Context, start, count uint64) ([]chainstream.Block, error) {
	blocks := make([]chainstream.Block, 0, count)
	for height := start; height < start+count; height++ {
		block, err := c.block(ctx, height)
		if err != nil {
			return blocks, err
		}

		// past the head
		if block == nil {
			break
		}

		blocks = append(blocks, *block)
	}

	return blocks, nil
}

func (c *client) Transaction(ctx context.Context, hash string) (*chainstream.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "chain.get_transaction", hash, getTransactionOption{Decode: true})
	if err != nil {
		return nil, err
	}

	if isNull(data) {
		return nil, nil
	}

	var view transactionView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("failed to decode transaction %s: %w", hash, err)
	}

	// block metadata and genesis transactions carry no user payload
	if view.UserTransaction == nil {
		return nil, nil
	}

	txn := view.UserTransaction.toTransaction(uint64(view.BlockNumber))
	return &txn, nil
}

func (c *client) SubscribeBlocks(ctx context.Context) (chainstream.Subscription[chainstream.Block], error) {
	raw := make(chan json.RawMessage, notificationBuffer)
	sub, err := c.conn.Subscribe(ctx, subscriptionNamespace, raw, "newHeads")
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to new blocks: %w", err)
	}

	return newSubscription(ctx, sub, raw, decodeBlock), nil
}

func (c *client) SubscribeEvents(ctx context.Context) (chainstream.Subscription[chainstream.Event], error) {
	raw := make(chan json.RawMessage, notificationBuffer)
	filter := eventFilter{TypeTags: []string{transfer.WithdrawEventTypeTag}}
	sub, err := c.conn.Subscribe(ctx, subscriptionNamespace, raw, "events", filter, false)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to events: %w", err)
	}

	return newSubscription(ctx, sub, raw, decodeEvent), nil
}

// NewClient builds a Chain over conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
