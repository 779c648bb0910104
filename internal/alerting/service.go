// Package alerting turns decoded transfers above a threshold into exactly
// one notification per transaction.
package alerting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/dispatch"
	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/telemetry"
	"github.com/gabapcia/starwatch/internal/pkg/types"
	"github.com/gabapcia/starwatch/internal/transfer"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultExplorerURL = "https://stcscan.io/main"
	defaultClaimTTL    = 10 * time.Minute
)

// TransactionResolver materializes the transactions of a block.
type TransactionResolver interface {
	ResolveFullTransactions(ctx context.Context, blocks ...chainstream.Block) ([]chainstream.Transaction, error)
}

type Service interface {
	// HandleBlock alerts every supported transfer in block whose amount
	// exceeds the threshold. It has the chainstream.BlockHandler shape.
	HandleBlock(ctx context.Context, block chainstream.Block) error

	// HandleEvent alerts a withdraw event whose amount exceeds the
	// threshold. It has the chainstream.EventHandler shape.
	HandleEvent(ctx context.Context, event chainstream.Event) error
}

type service struct {
	resolver    TransactionResolver
	notifier    dispatch.Notifier
	minAmount   *uint256.Int
	ledger      AlertLedger
	claimTTL    time.Duration
	journal     Journal
	explorerURL string
	now         func() time.Time
	metrics     *metrics
}

var _ Service = (*service)(nil)

func (s *service) exceeds(amount *uint256.Int) bool {
	return amount != nil && amount.Gt(s.minAmount)
}

func (s *service) HandleBlock(ctx context.Context, block chainstream.Block) error {
	if len(block.Transactions) == 0 && len(block.TxnHashes) == 0 {
		return nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "alerting.HandleBlock", trace.WithAttributes(
		attribute.String("block.height", strconv.FormatUint(block.Height, 10)),
	))
	defer span.End()

	txns, err := s.resolver.ResolveFullTransactions(ctx, block)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve failed")
		return fmt.Errorf("failed to resolve transactions: %w", err)
	}

	var (
		alerted = types.NewSet[string]()
		errs    []error
	)
	for _, txn := range txns {
		if txn.Payload == nil {
			logger.Debug(ctx, "transaction payload not decoded", "txn.hash", txn.Hash)
			continue
		}

		decoded := transfer.Decode(*txn.Payload)
		if !decoded.Supported() || !s.exceeds(decoded.Amount) || alerted.Has(txn.Hash) {
			continue
		}

		height := txn.BlockHeight
		if height == 0 {
			height = block.Height
		}

		c := Candidate{
			TxnHash:     txn.Hash,
			BlockHeight: height,
			Amount:      decoded.Amount,
			Operation:   decoded.Operation,
			Source:      SourceBlock,
		}
		if err := s.alert(ctx, c); err != nil {
			errs = append(errs, err)
			continue
		}

		alerted.Add(txn.Hash)
	}

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "alert failed")
		return err
	}

	return nil
}

func (s *service) HandleEvent(ctx context.Context, event chainstream.Event) error {
	decoded := transfer.DecodeWithdrawEvent(event.TypeTag, event.Data)
	if !decoded.Supported() || !s.exceeds(decoded.Amount) {
		return nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "alerting.HandleEvent", trace.WithAttributes(
		attribute.String("event.type_tag", event.TypeTag),
	))
	defer span.End()

	err := s.alert(ctx, Candidate{
		TxnHash:     event.TxnHash,
		BlockHeight: event.BlockHeight,
		Amount:      decoded.Amount,
		Operation:   decoded.Operation,
		Source:      SourceEvent,
		EventType:   event.TypeTag,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "alert failed")
	}

	return err
}

// alert claims c in the ledger, dispatches it and records it. Claims that
// are already taken skip the alert silently.
func (s *service) alert(ctx context.Context, c Candidate) error {
	ctx = logger.Derive(ctx, "txn.hash", c.TxnHash, "alert.source", c.Source)
	s.metrics.recordCandidate(ctx, c.Source)

	claimed := true
	switch err := s.ledger.ClaimAlert(ctx, c.TxnHash, s.claimTTL); {
	case errors.Is(err, ErrAlreadyAlerted), errors.Is(err, ErrAlertInProgress):
		logger.Debug(ctx, "alert skipped", "reason", err)
		return nil
	case err != nil:
		claimed = false
		logger.Warn(ctx, "alert ledger unavailable, alerting anyway", "error", err)
	}

	msg := formatAlert(s.explorerURL, c)
	if err := s.notifier.Notify(ctx, msg); err != nil {
		if claimed {
			if err := s.ledger.ReleaseAlert(ctx, c.TxnHash); err != nil {
				logger.Warn(ctx, "failed to release alert claim", "error", err)
			}
		}
		return fmt.Errorf("failed to alert transaction %s: %w", c.TxnHash, err)
	}

	s.metrics.recordSent(ctx, c.Source)
	logger.Info(ctx, "alert delivered", "block.height", c.BlockHeight, "amount", transfer.FormatUnits(c.Amount))

	if claimed {
		if err := s.ledger.MarkAlertSent(ctx, c.TxnHash); err != nil {
			logger.Error(ctx, "failed to record delivered alert", "error", err)
		}
	}

	alert := Alert{
		ID:            uuid.NewString(),
		TxnHash:       c.TxnHash,
		BlockHeight:   c.BlockHeight,
		Amount:        c.Amount.Dec(),
		AmountDisplay: transfer.FormatUnits(c.Amount),
		Operation:     c.Operation.String(),
		Source:        c.Source,
		EventType:     c.EventType,
		Message:       msg,
		SentAt:        s.now().UTC(),
	}
	if err := s.journal.Publish(ctx, alert); err != nil {
		logger.Error(ctx, "failed to publish alert to journal", "error", err)
	}

	return nil
}

type config struct {
	ledger      AlertLedger
	claimTTL    time.Duration
	journal     Journal
	explorerURL string
	now         func() time.Time
}

type Option func(*config)

// New builds an alerting service that alerts amounts strictly greater than
// minAmount (in base units).
func New(resolver TransactionResolver, notifier dispatch.Notifier, minAmount *uint256.Int, opts ...Option) (*service, error) {
	cfg := config{
		claimTTL:    defaultClaimTTL,
		journal:     nopJournal{},
		explorerURL: DefaultExplorerURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ledger == nil {
		cfg.ledger = newMemoryLedger(cfg.now)
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	return &service{
		resolver:    resolver,
		notifier:    notifier,
		minAmount:   minAmount,
		ledger:      cfg.ledger,
		claimTTL:    cfg.claimTTL,
		journal:     cfg.journal,
		explorerURL: cfg.explorerURL,
		now:         cfg.now,
		metrics:     m,
	}, nil
}

// WithLedger persists alerted transactions so replays and restarts do not
// alert twice. Without it claims are kept in process memory.
func WithLedger(ledger AlertLedger, claimTTL time.Duration) Option {
	return func(c *config) {
		c.ledger = ledger
		if claimTTL > 0 {
			c.claimTTL = claimTTL
		}
	}
}

func WithJournal(journal Journal) Option {
	return func(c *config) {
		c.journal = journal
	}
}

func WithExplorerURL(url string) Option {
	return func(c *config) {
		c.explorerURL = url
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
