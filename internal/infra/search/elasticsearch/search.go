package elasticsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gabapcia/starwatch/internal/digest"

	"github.com/holiman/uint256"
)

type (
	rangeQuery map[string]map[string]any

	searchRequest struct {
		Query struct {
			Bool struct {
				Filter []map[string]rangeQuery `json:"filter"`
			} `json:"bool"`
		} `json:"query"`
		Size int                 `json:"size"`
		Sort []map[string]string `json:"sort"`
	}

	transferDocument struct {
		TxnHash   string `json:"txn_hash"`
		Amount    string `json:"amount"`
		Timestamp int64  `json:"timestamp"`
	}

	searchResponse struct {
		Hits struct {
			Hits []struct {
				Source transferDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
)

func newTransferSearch(from, to time.Time, minAmount *uint256.Int, size int) searchRequest {
	var req searchRequest
	req.Query.Bool.Filter = []map[string]rangeQuery{
		{"range": {"timestamp": {"gte": from.UnixMilli(), "lte": to.UnixMilli()}}},
		{"range": {"amount_value": {"gt": json.Number(minAmount.Dec())}}},
	}
	req.Size = size
	req.Sort = []map[string]string{{"timestamp": "desc"}}
	return req
}

// SearchLargeTransfers returns the newest transfer documents in [from, to]
// whose amount is greater than minAmount, up to the configured page size.
func (c *client) SearchLargeTransfers(ctx context.Context, from, to time.Time, minAmount *uint256.Int) ([]digest.Record, error) {
	var res searchResponse
	if err := c.do(ctx, http.MethodPost, c.transferIndex, "_search", newTransferSearch(from, to, minAmount, c.pageSize), &res); err != nil {
		return nil, err
	}

	records := make([]digest.Record, len(res.Hits.Hits))
	for i, hit := range res.Hits.Hits {
		records[i] = digest.Record{
			TxnHash:   hit.Source.TxnHash,
			Amount:    hit.Source.Amount,
			Timestamp: time.UnixMilli(hit.Source.Timestamp).UTC(),
		}
	}

	return records, nil
}
