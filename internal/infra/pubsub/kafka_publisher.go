package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaPublisher implements EventPublisher with a franz-go producer.
// Records are keyed by user ID so one user's events land on one partition.
type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// KafkaOptions configures the kafka publisher.
type KafkaOptions struct {
	Brokers           []string
	ClientID          string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
}

// NewKafkaPublisher connects to the brokers and makes sure the topic exists.
func NewKafkaPublisher(ctx context.Context, opts KafkaOptions, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(opts.Brokers...),
		kgo.ClientID(opts.ClientID),
		kgo.DefaultProduceTopic(opts.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	if err := ensureTopic(ctx, kadm.NewClient(client), opts); err != nil {
		client.Close()

		return nil, err
	}

	logger.Info("Kafka publisher initialized",
		slog.String("topic", opts.Topic),
		slog.Int("brokers", len(opts.Brokers)),
	)

	return &kafkaPublisher{
		client: client,
		topic:  opts.Topic,
		logger: logger,
	}, nil
}

func ensureTopic(ctx context.Context, adm *kadm.Client, opts KafkaOptions) error {
	partitions := opts.Partitions
	if partitions <= 0 {
		partitions = 1
	}
	replication := opts.ReplicationFactor
	if replication <= 0 {
		replication = 1
	}

	resp, err := adm.CreateTopics(ctx, partitions, replication, nil, opts.Topic)
	if err != nil {
		return errors.Wrapf(err, "failed to create topic %s", opts.Topic)
	}
	for _, detail := range resp {
		if detail.Err != nil && !strings.Contains(detail.Err.Error(), "already exists") {
			return errors.Wrapf(detail.Err, "failed to create topic %s", detail.Topic)
		}
	}

	return nil
}

// newRecord builds the kafka record for an event.
func newRecord(topic string, event *service.LoyaltyEvent) (*kgo.Record, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	headers := make([]kgo.RecordHeader, 0, len(attributes))
	for _, key := range []string{"event_id", "event_type", "user_id", "request_id"} {
		if value, ok := attributes[key]; ok {
			headers = append(headers, kgo.RecordHeader{Key: key, Value: []byte(value)})
		}
	}

	return &kgo.Record{
		Topic:   topic,
		Key:     []byte(event.UserID),
		Value:   data,
		Headers: headers,
	}, nil
}

// PublishLoyaltyEvent produces the record and waits for the broker acknowledgement.
func (p *kafkaPublisher) PublishLoyaltyEvent(ctx context.Context, event *service.LoyaltyEvent) error {
	record, err := newRecord(p.topic, event)
	if err != nil {
		return err
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrapf(err, "failed to produce %s event", event.Type)
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_id", event.EventID),
		slog.Int("partition", int(record.Partition)),
		slog.Int64("offset", record.Offset),
	)

	return nil
}

// Close flushes buffered records and closes the client.
func (p *kafkaPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeFlushTimeout)
	defer cancel()

	err := p.client.Flush(ctx)
	p.client.Close()

	return errors.WithStack(err)
}
