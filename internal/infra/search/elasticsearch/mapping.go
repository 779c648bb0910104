package elasticsearch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gabapcia/starwatch/internal/pkg/types"
)

type (
	indexTip struct {
		BlockHash   string       `json:"block_hash"`
		BlockNumber types.Uint64 `json:"block_number"`
	}

	indexMapping struct {
		Mappings struct {
			Meta struct {
				Tip *indexTip `json:"tip"`
			} `json:"_meta"`
		} `json:"mappings"`
	}
)

// CachedHeight returns the block number of the indexing tip recorded in the
// blocks index mapping.
func (c *client) CachedHeight(ctx context.Context) (uint64, error) {
	var res map[string]indexMapping
	if err := c.do(ctx, http.MethodGet, c.blocksIndex, "_mapping", nil, &res); err != nil {
		return 0, err
	}

	mapping, ok := res[c.blocksIndex]
	if !ok && len(res) == 1 {
		// the configured name is an alias; the response is keyed by the
		// concrete index
		for _, m := range res {
			mapping, ok = m, true
		}
	}

	if !ok || mapping.Mappings.Meta.Tip == nil {
		return 0, fmt.Errorf("%w in %s", ErrTipNotFound, c.blocksIndex)
	}

	return uint64(mapping.Mappings.Meta.Tip.BlockNumber), nil
}
