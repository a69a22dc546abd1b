// Package events publishes committed booking mutations to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Astemirdum/lab-booking/pkg/circuit_breaker"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, event kafka.EventBooking) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewPublisher sends events through producer. A broken broker trips the
// breaker and later events fail fast with circuit_breaker.ErrOpenCB.
func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, time.Second*10, 0.5, 2),
		log:      log.Named("publisher"),
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event kafka.EventBooking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(partitionKey(event)),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s (breaker %s)", event.EventType, p.cb.State())
	}
	p.log.Debug("published", zap.String("type", string(event.EventType)), zap.Int64s("ids", event.BookingIDs))
	return nil
}

// partitionKey keeps the events of one room ordered.
func partitionKey(event kafka.EventBooking) string {
	return strconv.FormatInt(event.RoomID, 10)
}

type noop struct{}

// Noop drops every event, used when Kafka is disabled.
func Noop() Publisher {
	return noop{}
}

func (noop) Publish(context.Context, kafka.EventBooking) error {
	return nil
}
