package alerting

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrAlreadyAlerted is returned by ClaimAlert when the transaction was
	// already alerted.
	ErrAlreadyAlerted = errors.New("transaction already alerted")

	// ErrAlertInProgress is returned by ClaimAlert while another claim on
	// the transaction is live.
	ErrAlertInProgress = errors.New("transaction alert in progress")
)

// AlertLedger remembers which transactions were alerted across restarts
// and replays.
type AlertLedger interface {
	// ClaimAlert reserves txnHash for ttl. It fails with ErrAlreadyAlerted
	// or ErrAlertInProgress when the alert must be skipped.
	ClaimAlert(ctx context.Context, txnHash string, ttl time.Duration) error

	// MarkAlertSent turns a claim into a permanent record.
	MarkAlertSent(ctx context.Context, txnHash string) error

	// ReleaseAlert drops a claim whose alert could not be delivered.
	ReleaseAlert(ctx context.Context, txnHash string) error
}

// Journal receives every delivered alert.
type Journal interface {
	Publish(ctx context.Context, alert Alert) error
}

// MemoryRetention is how long the in-process ledger remembers a delivered
// alert.
const MemoryRetention = 24 * time.Hour

type memoryEntry struct {
	sent      bool
	expiresAt time.Time
}

// memoryLedger is the AlertLedger used without a shared store. It keeps the
// block and event paths of one process from alerting the same transaction
// twice. Delivered alerts are forgotten after MemoryRetention.
type memoryLedger struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ AlertLedger = (*memoryLedger)(nil)

func newMemoryLedger(now func() time.Time) *memoryLedger {
	return &memoryLedger{
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

// prune drops expired entries. Callers hold l.mu.
func (l *memoryLedger) prune(now time.Time) {
	for hash, e := range l.entries {
		if !now.Before(e.expiresAt) {
			delete(l.entries, hash)
		}
	}
}

func (l *memoryLedger) ClaimAlert(_ context.Context, txnHash string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if e, ok := l.entries[txnHash]; ok {
		if e.sent {
			return ErrAlreadyAlerted
		}
		return ErrAlertInProgress
	}

	l.entries[txnHash] = memoryEntry{expiresAt: now.Add(ttl)}
	return nil
}

func (l *memoryLedger) MarkAlertSent(_ context.Context, txnHash string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[txnHash] = memoryEntry{sent: true, expiresAt: l.now().Add(MemoryRetention)}
	return nil
}

func (l *memoryLedger) ReleaseAlert(_ context.Context, txnHash string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[txnHash]; ok && !e.sent {
		delete(l.entries, txnHash)
	}
	return nil
}

type nopJournal struct{}

func (nopJournal) Publish(context.Context, Alert) error { return nil }
