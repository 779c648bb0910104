// Package config loads the service configuration from the environment,
// optionally seeded by a .env file, and validates it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/gabapcia/starwatch/internal/pkg/validator"

	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Journal backends accepted by JOURNAL_BACKEND.
const (
	JournalNone  = ""
	JournalKafka = "kafka"
	JournalAMQP  = "amqp"
)

// Amount is an unsigned 128-bit quantity in base units, read from a
// decimal string.
type Amount struct {
	*uint256.Int
}

// Decode implements envconfig.Decoder.
func (a *Amount) Decode(value string) error {
	v, err := uint256.FromDecimal(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", value, err)
	}

	if v.BitLen() > 128 {
		return fmt.Errorf("invalid amount %q: exceeds 128 bits", value)
	}

	a.Int = v
	return nil
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"starwatch" validate:"required"`
}

type Starcoin struct {
	RPCURL string `envconfig:"RPC_URL" default:"ws://main.seed.starcoin.org:9870" validate:"required,url"`
}

type Telegram struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true" validate:"required"`
	ChatID   string `envconfig:"CHAT_ID" required:"true" validate:"required"`
	Proxy    string `envconfig:"PROXY"`
	APIURL   string `envconfig:"API_URL" default:"https://api.telegram.org" validate:"required,url"`
}

type Alert struct {
	MinTransferAmount Amount        `envconfig:"MIN_TRANSFER_AMOUNT" default:"1000000000"`
	LedgerTTL         time.Duration `envconfig:"LEDGER_TTL" default:"10m" validate:"gt=0"`
	EventsEnabled     bool          `envconfig:"EVENTS_ENABLED" default:"true"`
	ExplorerURL       string        `envconfig:"EXPLORER_URL" default:"https://stcscan.io/main" validate:"required,url"`
}

type Index struct {
	Enabled                  bool          `envconfig:"ENABLED" default:"true"`
	MaxBlockDifference       uint64        `envconfig:"MAX_BLOCK_DIFFERENCE" default:"100"`
	MaxNotifyIntervalSeconds uint64        `envconfig:"MAX_NOTIFY_INTERVAL_SECONDS" default:"3600"`
	PollInterval             time.Duration `envconfig:"POLL_INTERVAL" default:"50s" validate:"gt=0"`
}

type Elasticsearch struct {
	URL           string `envconfig:"URL" validate:"omitempty,url"`
	Username      string `envconfig:"USERNAME"`
	Password      string `envconfig:"PASSWORD"`
	BlocksIndex   string `envconfig:"BLOCKS_INDEX" default:"main.0727.blocks"`
	TransferIndex string `envconfig:"TRANSFER_INDEX" default:"main.0727.transfer"`
	PageSize      int    `envconfig:"PAGE_SIZE" default:"100" validate:"gt=0,lte=10000"`
}

type Digest struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	Schedule string `envconfig:"SCHEDULE" default:"59 23 * * *" validate:"cron"`
}

type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

type Journal struct {
	Backend      string `envconfig:"BACKEND" validate:"omitempty,oneof=kafka amqp"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"starwatch.alerts"`
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"starwatch"`
}

type Config struct {
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Telemetry     Telemetry     `envconfig:"OTEL"`
	Starcoin      Starcoin      `envconfig:"STARCOIN"`
	Telegram      Telegram      `envconfig:"TELEGRAM"`
	Alert         Alert         `envconfig:"ALERT"`
	Index         Index         `envconfig:"INDEX"`
	Elasticsearch Elasticsearch `envconfig:"ES"`
	Digest        Digest        `envconfig:"DIGEST"`
	Redis         Redis         `envconfig:"REDIS"`
	Journal       Journal       `envconfig:"JOURNAL"`
}

var (
	ErrSearchIndexRequired = errors.New("ES_URL is required by the index watch and the daily digest")
	ErrJournalIncomplete   = errors.New("journal backend is missing its connection settings")
)

func (c Config) validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if (c.Index.Enabled || c.Digest.Enabled) && c.Elasticsearch.URL == "" {
		return ErrSearchIndexRequired
	}

	switch c.Journal.Backend {
	case JournalKafka:
		if strings.Trim(c.Journal.KafkaBrokers, ", ") == "" || c.Journal.KafkaTopic == "" {
			return fmt.Errorf("%w: JOURNAL_KAFKA_BROKERS and JOURNAL_KAFKA_TOPIC", ErrJournalIncomplete)
		}
	case JournalAMQP:
		if c.Journal.AMQPURL == "" || c.Journal.AMQPExchange == "" {
			return fmt.Errorf("%w: JOURNAL_AMQP_URL and JOURNAL_AMQP_EXCHANGE", ErrJournalIncomplete)
		}
	}

	return nil
}

// Load reads envFiles (missing files are skipped), then the environment,
// and validates the result. Variables already set win over file values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
