package chainstream

import (
	"time"

	"github.com/gabapcia/starwatch/internal/transfer"
)

// Transaction is a user transaction as returned by the node. Payload is nil
// when the node could not decode the script call; RawPayload then holds the
// BCS bytes as hex.
type Transaction struct {
	Hash        string
	BlockHeight uint64
	Sender      string
	Payload     *transfer.Invocation
	RawPayload  string
}

// Block is a block notification. Its body holds either the transaction
// hashes (TxnHashes) or the full transactions (Transactions).
type Block struct {
	Height       uint64
	Hash         string
	Timestamp    time.Time
	TxnHashes    []string
	Transactions []Transaction
}

// HashOnly reports whether the body must be resolved with one
// Chain.Transaction call per hash.
func (b Block) HashOnly() bool {
	return len(b.Transactions) == 0 && len(b.TxnHashes) > 0
}

// Event is a ledger event emitted by a transaction.
type Event struct {
	BlockHeight uint64
	BlockHash   string
	TxnHash     string
	TypeTag     string
	Data        string
}
