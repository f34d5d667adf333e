package kafka

import (
	"encoding/json"
	"log/slog"
	"time"

	"ootd-commerce/internal/pkg/config"
	"ootd-commerce/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// Producer publishes JSON events through a synchronous sarama producer.
type Producer struct {
	producer sarama.SyncProducer
	logger   *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) (*Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = cfg.ClientID
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 5
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Compression = sarama.CompressionSnappy
	saramaCfg.Producer.Idempotent = true
	saramaCfg.Net.MaxOpenRequests = 1 // required by the idempotent producer

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}

	return NewProducerWith(producer, logger), nil
}

// NewProducerWith wraps an existing sarama producer.
func NewProducerWith(producer sarama.SyncProducer, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{
		producer: producer,
		logger:   logger.With("component", "kafka-producer"),
	}
}

func (p *Producer) PublishEvent(topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to send message to kafka", "topic", topic, "key", key, "error", err)
		return errs.Wrap(err, "failed to send message")
	}

	p.logger.Debug("message sent to kafka", "topic", topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return errs.Wrap(err, "failed to close kafka producer")
	}
	return nil
}
