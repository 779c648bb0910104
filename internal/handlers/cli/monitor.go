package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gabapcia/starwatch/internal/monitor"
	"github.com/gabapcia/starwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const quitCommand = "q"

// watchQuit closes the returned channel once a line reading "q" arrives on r.
func watchQuit(r io.Reader) <-chan struct{} {
	quit := make(chan struct{})
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == quitCommand {
				close(quit)
				return
			}
		}
	}()

	return quit
}

// startMonitorCommand returns a CLI command that starts every configured
// watcher: block and event alerts, the index watch and the daily digest.
//
// Usage example:
//
//	starwatch start
//
// The process runs until it receives SIGINT or SIGTERM, a "q" line on stdin,
// or until one of the watchers fails.
func startMonitorCommand(m monitor.Service, stdin io.Reader) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the block, event and index watchers together with the daily digest.",
		Usage:       "Runs the monitor. Type q and Enter, or press Ctrl+C, to stop.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sig)

			if err := m.Start(ctx); err != nil {
				return err
			}
			defer m.Close()

			logger.Info(ctx, "monitor started, type q and press Enter to quit")

			select {
			case <-sig:
				logger.Info(ctx, "termination signal received")
			case <-watchQuit(stdin):
				logger.Info(ctx, "quit requested")
			case <-ctx.Done():
			case err, ok := <-m.Err():
				if ok && err != nil {
					return fmt.Errorf("monitor stopped: %w", err)
				}
			}

			return nil
		},
	}
}
