package handler

import (
	"encoding/json"

	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type invalidator interface {
	Invalidate()
}

// Consumer drops the local listing cache whenever another instance
// commits a booking mutation.
type Consumer struct {
	cache  invalidator
	source string
	log    *zap.Logger
	ready  chan bool
}

func NewConsumer(cache invalidator, source string, log *zap.Logger) *Consumer {
	return &Consumer{
		cache:  cache,
		source: source,
		log:    log.Named("consumer"),
		ready:  make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(message *sarama.ConsumerMessage) {
	var event kafka.EventBooking
	if err := json.Unmarshal(message.Value, &event); err != nil {
		consumer.log.Error("bad booking event", zap.Error(err), zap.Int64("offset", message.Offset))
		return
	}
	if event.Source == consumer.source {
		return
	}
	consumer.cache.Invalidate()
	consumer.log.Debug("cache invalidated",
		zap.String("type", string(event.EventType)),
		zap.String("source", event.Source),
		zap.Int64s("ids", event.BookingIDs))
}
