// Package kafka publishes delivered alerts to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gabapcia/starwatch/internal/alerting"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers = errors.New("no kafka brokers")
	ErrNoTopic   = errors.New("kafka topic is empty")
)

type journal struct {
	topic    string
	producer sarama.SyncProducer
}

var _ alerting.Journal = (*journal)(nil)

// Publish sends alert keyed by transaction hash and waits for the broker
// acknowledgement. The producer cannot be interrupted, so ctx is only
// checked before sending.
func (j *journal) Publish(ctx context.Context, alert alerting.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err = j.producer.SendMessage(&sarama.ProducerMessage{
		Topic: j.topic,
		Key:   sarama.StringEncoder(alert.TxnHash),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("source"), Value: []byte(alert.Source)},
			{Key: []byte("operation"), Value: []byte(alert.Operation)},
		},
	})
	return err
}

func (j *journal) Close() error {
	return j.producer.Close()
}

// splitBrokers parses a comma separated broker list, dropping blanks.
func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewConfig returns the producer settings used by the journal: acks from
// all in-sync replicas and an idempotent producer.
func NewConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "starwatch"
	cfg.Version = sarama.V2_1_0_0

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 10
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	return cfg
}

// NewJournal connects a synchronous producer to a comma separated list of
// brokers, such as "kafka-1:9092, kafka-2:9092".
func NewJournal(brokerList, topic string) (*journal, error) {
	brokers := splitBrokers(brokerList)
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, err
	}

	return NewJournalWithProducer(producer, topic)
}

// NewJournalWithProducer wraps an existing producer.
func NewJournalWithProducer(producer sarama.SyncProducer, topic string) (*journal, error) {
	if topic == "" {
		return nil, ErrNoTopic
	}

	return &journal{
		topic:    topic,
		producer: producer,
	}, nil
}
