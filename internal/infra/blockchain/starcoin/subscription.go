package starcoin

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/starwatch/internal/pkg/x/chflow"
)

// subscription decodes the raw notifications of a node subscription into
// typed items. Notifications that fail to decode are logged and dropped.
type subscription[T any] struct {
	sub    jsonrpc.Subscription
	items  chan T
	errs   chan error
	cancel context.CancelFunc
	closer sync.Once
}

var _ chainstream.Subscription[chainstream.Block] = (*subscription[chainstream.Block])(nil)

func (s *subscription[T]) Items() <-chan T {
	return s.items
}

func (s *subscription[T]) Err() <-chan error {
	return s.errs
}

func (s *subscription[T]) Unsubscribe() {
	s.closer.Do(func() {
		s.cancel()
		s.sub.Unsubscribe()
	})
}

func (s *subscription[T]) run(ctx context.Context, raw <-chan json.RawMessage, decode func(json.RawMessage) (T, error)) {
	errs := s.sub.Err()
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			// failures are reported on Err only
			if ok && err != nil {
				s.errs <- err
				return
			}
			close(s.items)
			return
		case data := <-raw:
			item, err := decode(data)
			if err != nil {
				logger.Warn(ctx, "dropping undecodable notification", "error", err, "notification", string(data))
				continue
			}

			if !chflow.Send(ctx, s.items, item) {
				return
			}
		}
	}
}

func newSubscription[T any](ctx context.Context, sub jsonrpc.Subscription, raw <-chan json.RawMessage, decode func(json.RawMessage) (T, error)) *subscription[T] {
	// the stream outlives the subscribe call and ends with Unsubscribe
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s := &subscription[T]{
		sub:    sub,
		items:  make(chan T),
		errs:   make(chan error, 1),
		cancel: cancel,
	}

	go s.run(ctx, raw, decode)
	return s
}
