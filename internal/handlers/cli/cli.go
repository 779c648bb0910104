package cli

import (
	"context"
	"os"

	"github.com/gabapcia/starwatch/internal/alerting"
	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/digest"
	"github.com/gabapcia/starwatch/internal/monitor"

	"github.com/urfave/cli/v3"
)

// Services groups what the commands drive. Digest may be nil when the
// daily summary is disabled.
type Services struct {
	Monitor     monitor.Service
	Chainstream chainstream.Service
	Alerting    alerting.Service
	Digest      digest.Service
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "starwatch",
		Description:           "Watches the Starcoin chain for large transfers and keeps an eye on the search index.",
		Usage:                 "starwatch [command] [flags]",
		Commands: []*cli.Command{
			startMonitorCommand(svc.Monitor, os.Stdin),
			runDigestCommand(svc.Digest),
			scanBlocksCommand(svc.Chainstream, svc.Alerting),
		},
	}
}

// Run initializes and executes the starwatch CLI application.
//
// Commands:
//
//   - `start`: runs every configured watcher until interrupted.
//   - `digest`: sends the large transfer summary for a single day.
//   - `scan`: re-checks a range of past blocks for large transfers.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}
