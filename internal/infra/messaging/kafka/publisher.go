package kafka

import (
	"encoding/json"
	"time"

	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/usecase/shared"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "ootd.events"

// ErrPublisherNotInitialized is returned when no producer is configured.
var ErrPublisherNotInitialized = errs.New("kafka outbox publisher is not initialized")

type envelope struct {
	ID          string          `json:"id"`
	AggregateID string          `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}

// OutboxPublisher sends outbox jobs to a single topic keyed by aggregate id,
// so every event of one order or listing lands on the same partition.
type OutboxPublisher struct {
	producer *Producer
	topic    string
}

func NewOutboxPublisher(producer *Producer, topic string) *OutboxPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &OutboxPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *OutboxPublisher) Publish(job shared.OutboxJob) error {
	if p == nil || p.producer == nil {
		return ErrPublisherNotInitialized
	}

	key := job.AggregateID.String()
	return p.producer.PublishEvent(p.topic, key, envelope{
		ID:          job.ID.String(),
		AggregateID: key,
		EventType:   job.Kind,
		Payload:     json.RawMessage(job.Payload),
		PublishedAt: time.Now().UTC(),
	})
}
