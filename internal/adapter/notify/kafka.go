// Package notify delivers user-facing events over Kafka.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Event is the message envelope published per notification. Actions are
// hints for the consuming bot/UI layer (buttons to render).
type Event struct {
	RecipientID int64     `json:"recipient_id"`
	Message     string    `json:"message"`
	Actions     []string  `json:"actions,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}

// KafkaNotifier implements ports.Notifier with a sarama sync producer.
// Keyed by recipient id so one user's notifications stay ordered.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	log      zerolog.Logger
}

// NewKafkaNotifier connects a sync producer to the brokers.
func NewKafkaNotifier(brokers []string, topic string, log zerolog.Logger) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers required")
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewKafkaNotifierWith(producer, topic, log), nil
}

// NewKafkaNotifierWith wraps an existing producer; used by tests.
func NewKafkaNotifierWith(producer sarama.SyncProducer, topic string, log zerolog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		log:      log.With().Str("component", "kafka_notifier").Logger(),
	}
}

// Notify publishes one notification event.
func (n *KafkaNotifier) Notify(ctx context.Context, recipientID int64, message string, actions ...string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	payload, err := json.Marshal(Event{
		RecipientID: recipientID,
		Message:     message,
		Actions:     actions,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(recipientID, 10)),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		n.log.Error().Err(err).Int64("recipient_id", recipientID).Msg("notification publish failed")
		return fmt.Errorf("kafka publish: %w", err)
	}

	n.log.Debug().
		Int64("recipient_id", recipientID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("notification published")
	return nil
}

// Close shuts the underlying producer down.
func (n *KafkaNotifier) Close() error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Close()
}
