package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/starwatch/internal/transfer"

	"github.com/holiman/uint256"
)

// Source tells which subscription produced a candidate.
type Source string

const (
	SourceBlock Source = "block"
	SourceEvent Source = "event"
)

// Candidate is a decoded transfer that may deserve an alert.
type Candidate struct {
	TxnHash     string
	BlockHeight uint64
	Amount      *uint256.Int
	Operation   transfer.Operation
	Source      Source
	EventType   string
}

// Alert is a delivered alert as published to the journal.
type Alert struct {
	ID            string    `json:"id"`
	TxnHash       string    `json:"txn_hash"`
	BlockHeight   uint64    `json:"block_height"`
	Amount        string    `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Operation     string    `json:"operation"`
	Source        Source    `json:"source"`
	EventType     string    `json:"event_type,omitempty"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sent_at"`
}

func formatAlert(explorerURL string, c Candidate) string {
	var b strings.Builder

	if c.Source == SourceEvent {
		b.WriteString("🚨 Large withdrawal alert\n\n")
	} else {
		b.WriteString("🚨 Large transfer alert\n\n")
	}

	fmt.Fprintf(&b, "Block: %s/blocks/height/%d\n", explorerURL, c.BlockHeight)
	fmt.Fprintf(&b, "Transaction: %s/transactions/detail/%s\n", explorerURL, c.TxnHash)
	if c.EventType != "" {
		fmt.Fprintf(&b, "Event: %s\n", c.EventType)
	}
	fmt.Fprintf(&b, "Amount: %s STC", transfer.FormatUnits(c.Amount))

	return b.String()
}
