package digest

import (
	"time"

	"github.com/gabapcia/starwatch/internal/pkg/types"
	"github.com/gabapcia/starwatch/internal/transfer"

	"github.com/holiman/uint256"
)

// Record is a transfer document from the search index. Amount is the raw
// little-endian u128 as hex.
type Record struct {
	TxnHash   string
	Amount    string
	Timestamp time.Time
}

// Entry is a record that made it into the summary.
type Entry struct {
	TxnHash   string
	Amount    *uint256.Int
	Timestamp time.Time
}

// Summary is the deduplicated outcome of one digest pass.
type Summary struct {
	Entries     []Entry
	Total       *uint256.Int
	Duplicates  int
	Undecodable int
}

// Count returns the number of distinct large transfers.
func (s Summary) Count() int {
	return len(s.Entries)
}

// Summarize deduplicates records by transaction hash and keeps those whose
// decoded amount is at least minAmount. The first record seen for a hash
// decides its fate; later records with the same hash are only counted as
// duplicates. Records with an undecodable amount are counted and dropped.
func Summarize(records []Record, minAmount *uint256.Int) Summary {
	summary := Summary{
		Total: new(uint256.Int),
	}

	seen := types.NewSet[string]()
	for _, record := range records {
		if !seen.AddIfAbsent(record.TxnHash) {
			summary.Duplicates++
			continue
		}

		amount, err := transfer.DecodeHexAmount(record.Amount)
		if err != nil {
			summary.Undecodable++
			continue
		}

		if minAmount != nil && amount.Lt(minAmount) {
			continue
		}

		summary.Entries = append(summary.Entries, Entry{
			TxnHash:   record.TxnHash,
			Amount:    amount,
			Timestamp: record.Timestamp,
		})
		summary.Total.Add(summary.Total, amount)
	}

	return summary
}
