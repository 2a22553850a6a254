package facades

//go:generate mockgen -source=points_events.go -destination=mock_points_events.go -package=facades

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PointsEventPublisher publishes points balance changes to Kafka.
// Publishing is best effort: failures are logged and never returned to the caller.
type PointsEventPublisher struct {
	writer KafkaWriter
}

// NewPointsEventPublisher creates a publisher. A nil interface value disables publishing;
// a typed nil such as (*kafka.Writer)(nil) is not detected and must not be passed.
func NewPointsEventPublisher(writer KafkaWriter) *PointsEventPublisher {
	return &PointsEventPublisher{writer: writer}
}

// Publish sends the event keyed by user id so events of one user stay ordered.
func (p *PointsEventPublisher) Publish(ctx context.Context, event models.PointsEvent) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal points event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish points event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Points event published", "event_id", event.EventID, "operation", event.Operation, "points", event.Points)
}

// kafkaBatchTimeout bounds how long a synchronous write waits for more messages
// to fill a batch. The library default of one second would stall every publish.
const kafkaBatchTimeout = 10 * time.Millisecond

// NewKafkaWriter returns a writer for the given brokers and topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

// EventPublisher is anything that accepts points events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.PointsEvent)
}

// FanoutPublisher forwards each event to every publisher in order.
type FanoutPublisher []EventPublisher

// Publish implements EventPublisher.
func (f FanoutPublisher) Publish(ctx context.Context, event models.PointsEvent) {
	for _, p := range f {
		p.Publish(ctx, event)
	}
}
