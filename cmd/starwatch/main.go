package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabapcia/starwatch/internal/alerting"
	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/config"
	"github.com/gabapcia/starwatch/internal/digest"
	"github.com/gabapcia/starwatch/internal/dispatch"
	"github.com/gabapcia/starwatch/internal/handlers/cli"
	"github.com/gabapcia/starwatch/internal/indexwatch"
	"github.com/gabapcia/starwatch/internal/infra/blockchain/starcoin"
	"github.com/gabapcia/starwatch/internal/infra/messaging/amqp"
	"github.com/gabapcia/starwatch/internal/infra/messaging/kafka"
	"github.com/gabapcia/starwatch/internal/infra/notification/telegram"
	"github.com/gabapcia/starwatch/internal/infra/search/elasticsearch"
	"github.com/gabapcia/starwatch/internal/infra/storage/redis"
	"github.com/gabapcia/starwatch/internal/monitor"
	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/telemetry"
	"github.com/gabapcia/starwatch/internal/pkg/transport/jsonrpc"
)

const shutdownTimeout = 10 * time.Second

// closers runs deferred cleanups in reverse order of registration.
type closers []func()

func (c *closers) add(fn func()) {
	*c = append(*c, fn)
}

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func closeLogged(ctx context.Context, name string, cl io.Closer) func() {
	return func() {
		if err := cl.Close(); err != nil {
			logger.Warn(ctx, "failed to close resource", "resource", name, "error", err)
		}
	}
}

func newJournal(cfg config.Journal) (alerting.Journal, io.Closer, error) {
	switch cfg.Backend {
	case config.JournalKafka:
		j, err := kafka.NewJournal(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return j, j, nil
	case config.JournalAMQP:
		j, err := amqp.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		return j, j, nil
	}

	return nil, nil, nil
}

func newNotifier(cfg config.Telegram) (dispatch.Notifier, error) {
	opts := []telegram.Option{telegram.WithAPIURL(cfg.APIURL)}
	if cfg.Proxy != "" {
		proxy, err := telegram.ParseProxy(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, telegram.WithProxy(proxy))
	}

	return dispatch.New(telegram.NewClient(cfg.BotToken, opts...), cfg.ChatID)
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var cleanup closers
	defer cleanup.run()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to init telemetry: %w", err)
		}
		cleanup.add(func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		})
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	cleanup.add(func() { _ = logger.Sync() })

	conn, err := jsonrpc.Dial(ctx, cfg.Starcoin.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Starcoin.RPCURL, err)
	}
	cleanup.add(conn.Close)

	chain := starcoin.NewClient(conn)

	var (
		chainOpts   []chainstream.Option
		alertOpts   = []alerting.Option{alerting.WithExplorerURL(cfg.Alert.ExplorerURL)}
		monitorOpts []monitor.Option
	)

	if cfg.Redis.Addr != "" {
		store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		cleanup.add(closeLogged(ctx, "redis", store))

		chainOpts = append(chainOpts, chainstream.WithCheckpointStorage(store))
		alertOpts = append(alertOpts, alerting.WithLedger(store, cfg.Alert.LedgerTTL))
	}

	journal, journalCloser, err := newJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("failed to open the %s journal: %w", cfg.Journal.Backend, err)
	}
	if journal != nil {
		cleanup.add(closeLogged(ctx, "journal", journalCloser))
		alertOpts = append(alertOpts, alerting.WithJournal(journal))
	}

	notifier, err := newNotifier(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("failed to build the notifier: %w", err)
	}

	cs := chainstream.New(chain, chainOpts...)

	alerts, err := alerting.New(cs, notifier, cfg.Alert.MinTransferAmount.Int, alertOpts...)
	if err != nil {
		return err
	}

	if cfg.Alert.EventsEnabled {
		monitorOpts = append(monitorOpts, monitor.WithEventAlerts())
	}

	search := elasticsearch.NewClient(elasticsearch.Config{
		URL:           cfg.Elasticsearch.URL,
		Username:      cfg.Elasticsearch.Username,
		Password:      cfg.Elasticsearch.Password,
		BlocksIndex:   cfg.Elasticsearch.BlocksIndex,
		TransferIndex: cfg.Elasticsearch.TransferIndex,
		PageSize:      cfg.Elasticsearch.PageSize,
	})

	if cfg.Index.Enabled {
		watch, err := indexwatch.New(chain, search, notifier, indexwatch.Config{
			MaxBlockDifference: cfg.Index.MaxBlockDifference,
			MaxNotifyInterval:  cfg.Index.MaxNotifyIntervalSeconds,
		}, indexwatch.WithPollInterval(cfg.Index.PollInterval))
		if err != nil {
			return err
		}
		monitorOpts = append(monitorOpts, monitor.WithIndexWatch(watch))
	}

	services := cli.Services{
		Chainstream: cs,
		Alerting:    alerts,
	}

	if cfg.Digest.Enabled {
		summary := digest.New(search, notifier, cfg.Alert.MinTransferAmount.Int)
		services.Digest = summary
		monitorOpts = append(monitorOpts, monitor.WithDigest(
			digest.NewScheduler(summary, digest.WithSchedule(cfg.Digest.Schedule)),
		))
	}

	services.Monitor = monitor.New(cs, alerts, monitorOpts...)

	return cli.Run(ctx, services)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
