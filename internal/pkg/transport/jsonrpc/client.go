// Package jsonrpc is a JSON-RPC 2.0 client over HTTP or websocket, built on
// go-ethereum's rpc package. Besides plain calls it exposes the node's
// pub/sub API (`<namespace>_subscribe`), which requires a websocket endpoint.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// ErrProviderReturnedError indicates that the remote server answered with a
// JSON-RPC error object.
var ErrProviderReturnedError = errors.New("provider error")

// Subscription is a live server-side subscription. Err delivers at most one
// value and is closed after Unsubscribe.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}

// Client abstracts the node connection so collaborators can be tested
// against mocks.
type Client interface {
	// Fetch calls method and returns the raw result. A JSON null result is
	// returned as-is and is not an error.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// Subscribe opens `<namespace>_subscribe` with params and forwards every
	// notification payload to ch until the subscription ends.
	Subscribe(ctx context.Context, namespace string, ch chan<- json.RawMessage, params ...any) (Subscription, error)

	// Close tears the connection down, ending every open subscription.
	Close()
}

type client struct {
	rpc *rpc.Client
}

var _ Client = (*client)(nil)

// wrapErr converts a server error object into ErrProviderReturnedError while
// leaving transport and decoding errors untouched.
func wrapErr(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: [%d] - %w", ErrProviderReturnedError, rpcErr.ErrorCode(), err)
	}

	return err
}

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.rpc.CallContext(ctx, &result, method, params...); err != nil {
		return nil, wrapErr(err)
	}

	return result, nil
}

func (c *client) Subscribe(ctx context.Context, namespace string, ch chan<- json.RawMessage, params ...any) (Subscription, error) {
	sub, err := c.rpc.Subscribe(ctx, namespace, ch, params...)
	if err != nil {
		return nil, wrapErr(err)
	}

	return sub, nil
}

func (c *client) Close() {
	c.rpc.Close()
}

// Dial connects to endpoint. ws:// and wss:// endpoints support Subscribe;
// http:// endpoints only support Fetch.
func Dial(ctx context.Context, endpoint string) (*client, error) {
	c, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return NewClient(c), nil
}

// NewClient wraps an already connected rpc.Client.
func NewClient(c *rpc.Client) *client {
	return &client{
		rpc: c,
	}
}
