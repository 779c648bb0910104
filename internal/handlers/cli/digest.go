package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/digest"

	"github.com/urfave/cli/v3"
)

const dateLayout = "2006-01-02"

// ErrDigestDisabled is returned by the digest command when no digest
// service is configured.
var ErrDigestDisabled = errors.New("daily digest is disabled")

// runDigestCommand returns a CLI command that builds and sends the large
// transfer summary for one UTC day.
//
// Usage example:
//
//	starwatch digest --date 2024-07-27
func runDigestCommand(d digest.Service) *cli.Command {
	return &cli.Command{
		Name:        "digest",
		Description: "Summarizes the large transfers of one day and sends the summary to the chat.",
		Usage:       "Sends the daily digest. Defaults to the current UTC day.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "Day to summarize, formatted as YYYY-MM-DD",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if d == nil {
				return ErrDigestDisabled
			}

			day := time.Now().UTC()
			if raw := c.String("date"); raw != "" {
				parsed, err := time.Parse(dateLayout, raw)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", raw, err)
				}
				day = parsed
			}

			return d.Run(ctx, day)
		},
	}
}
