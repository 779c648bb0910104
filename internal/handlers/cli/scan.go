package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/starwatch/internal/alerting"
	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const defaultScanCount = 100

// ErrNothingToScan is returned when --from is omitted and no checkpoint
// exists to resume from.
var ErrNothingToScan = errors.New("no checkpoint found, --from is required")

// scanFrom resolves the first height to scan: the explicit flag, or the
// block after the last checkpoint.
func scanFrom(ctx context.Context, c *cli.Command, cs chainstream.Service) (uint64, error) {
	if c.IsSet("from") {
		return c.Uint64("from"), nil
	}

	height, err := cs.LatestCheckpoint(ctx)
	if errors.Is(err, chainstream.ErrNoCheckpointFound) {
		return 0, ErrNothingToScan
	}
	if err != nil {
		return 0, err
	}

	return height + 1, nil
}

// scanBlocksCommand returns a CLI command that runs the transfer alert over
// a range of past blocks. Alerts already recorded in the ledger are not
// sent twice.
//
// Usage example:
//
//	starwatch scan --from 21000000 --count 500
func scanBlocksCommand(cs chainstream.Service, a alerting.Service) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Description: "Checks a range of past blocks for large transfers and alerts on the ones found.",
		Usage:       "Backfills alerts. Starts after the last checkpoint unless --from is given.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "from",
				Usage: "First block height to scan",
			},
			&cli.Uint64Flag{
				Name:  "count",
				Usage: "Number of blocks to scan",
				Value: defaultScanCount,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			from, err := scanFrom(ctx, c, cs)
			if err != nil {
				return err
			}

			count := c.Uint64("count")
			if count == 0 {
				return nil
			}

			logger.Info(ctx, "scanning blocks", "from", from, "count", count)

			if err := cs.Backfill(ctx, from, count, a.HandleBlock); err != nil {
				return fmt.Errorf("scan from height %d: %w", from, err)
			}

			return nil
		},
	}
}
